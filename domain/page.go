/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package domain

// Page holds one slice of a result set along with the total number of rows
// matching the query regardless of the slice boundaries.
type Page[T any] struct {
	Content       []*T
	TotalElements int
	Pageable      *Pageable
}

// NewPage wraps the given content, pageable, and total count into a Page.
func NewPage[T any](content []*T, pageable *Pageable, total int) *Page[T] {
	if content == nil {
		content = make([]*T, 0)
	}
	return &Page[T]{Content: content, TotalElements: total, Pageable: pageable}
}

// NumberOfElements returns the number of rows on this page.
func (p *Page[T]) NumberOfElements() int { return len(p.Content) }

// HasContent reports whether the page holds any rows.
func (p *Page[T]) HasContent() bool { return len(p.Content) > 0 }

// TotalPages returns the number of pages needed to cover TotalElements with
// the originating page size.
func (p *Page[T]) TotalPages() int {
	if p.Pageable == nil || p.TotalElements == 0 {
		return 0
	}
	size := p.Pageable.PageSize()
	return (p.TotalElements + size - 1) / size
}

// HasNext reports whether a page follows this one.
func (p *Page[T]) HasNext() bool {
	if p.Pageable == nil {
		return false
	}
	return p.Pageable.PageNumber()+1 < p.TotalPages()
}

// HasPrevious reports whether a page precedes this one.
func (p *Page[T]) HasPrevious() bool {
	return p.Pageable != nil && p.Pageable.HasPrevious()
}

// IsFirst reports whether this is the first page.
func (p *Page[T]) IsFirst() bool { return !p.HasPrevious() }

// IsLast reports whether this is the last page.
func (p *Page[T]) IsLast() bool { return !p.HasNext() }
