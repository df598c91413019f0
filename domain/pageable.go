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

const defaultPageSize = 10

// Pageable describes one requested slice of a result set: a zero-based page
// number and a page size. The zero value requests the first page with the
// default size.
type Pageable struct {
	page int
	size int
}

// Of creates a Pageable for the given zero-based page number and page size.
func Of(page, size int) *Pageable {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultPageSize
	}
	return &Pageable{page: page, size: size}
}

// OfSize creates a Pageable for the first page with the given size.
func OfSize(size int) *Pageable { return Of(0, size) }

// PageNumber returns the zero-based page number.
func (p *Pageable) PageNumber() int {
	if p.page < 0 {
		return 0
	}
	return p.page
}

// PageSize returns the number of rows requested per page.
func (p *Pageable) PageSize() int {
	if p.size < 1 {
		return defaultPageSize
	}
	return p.size
}

// Offset returns the zero-based row offset of the requested page.
func (p *Pageable) Offset() int { return p.PageNumber() * p.PageSize() }

// Next returns the Pageable for the following page.
func (p *Pageable) Next() *Pageable { return Of(p.PageNumber()+1, p.PageSize()) }

// Previous returns the Pageable for the preceding page, or the first page
// when the receiver already is the first page.
func (p *Pageable) Previous() *Pageable {
	if p.PageNumber() == 0 {
		return p.First()
	}
	return Of(p.PageNumber()-1, p.PageSize())
}

// First returns the Pageable for the first page with the receiver's size.
func (p *Pageable) First() *Pageable { return Of(0, p.PageSize()) }

// HasPrevious reports whether a page precedes the receiver.
func (p *Pageable) HasPrevious() bool { return p.PageNumber() > 0 }
