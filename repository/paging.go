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

package repository

import (
	"context"

	"github.com/tomoncle/springdata-bun/domain"

	"github.com/uptrace/bun"
)

// NewPagingRepository returns a repository for T that supports pagination in
// addition to the CRUD operations. Same construction rules as
// NewCrudRepository.
func NewPagingRepository[T any, ID comparable](db bun.IDB) (PagingRepository[T, ID], error) {
	return newBaseRepository[T, ID](db)
}

// NewRepository returns the full repository surface for T: CRUD, pagination,
// entity metadata, and the raw Bun query builders.
func NewRepository[T any, ID comparable](db bun.IDB) (Repository[T, ID], error) {
	return newBaseRepository[T, ID](db)
}

// FindPage counts all entities, then fetches the slice selected by pageable
// with the ordering applied. The two executions are independent; under
// concurrent writers the total may disagree with the content.
func (r *baseRepository[T, ID]) FindPage(ctx context.Context, pageable *domain.Pageable, sort *domain.Sort) (*domain.Page[T], error) {
	if pageable == nil {
		return nil, errNilArgument("pageable")
	}
	total, err := r.executeCount(ctx, r.db.NewSelect().Model((*T)(nil)))
	if err != nil {
		return nil, err
	}
	var entities []*T
	if total > 0 {
		query, err := r.withOrdering(r.db.NewSelect().
			Model(&entities).
			Offset(pageable.Offset()).
			Limit(pageable.PageSize()), sort)
		if err != nil {
			return nil, err
		}
		if err := query.Scan(ctx); err != nil {
			return nil, err
		}
	}
	return domain.NewPage(entities, pageable, total), nil
}
