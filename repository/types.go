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
	"github.com/uptrace/bun/schema"
)

// CrudRepository defines generic CRUD operations for one entity type T with
// identifier type ID. Every operation validates its arguments before any
// statement executes and delegates execution to the bound session.
type CrudRepository[T any, ID comparable] interface {
	// Clear deletes all entities managed by the repository.
	Clear(ctx context.Context) error

	// Count returns the number of entities available.
	Count(ctx context.Context) (int, error)

	// Delete deletes a given entity. The entity must not be nil.
	Delete(ctx context.Context, entity *T) error

	// DeleteAll deletes the given entities in a single transaction.
	// Neither the slice nor any of its elements may be nil.
	DeleteAll(ctx context.Context, entities []*T) error

	// DeleteAllByID deletes all entities with the given ids in one statement.
	// Ids that are not found are silently ignored.
	DeleteAllByID(ctx context.Context, ids []ID) error

	// DeleteByID deletes the entity with the given id. If the entity is not
	// found it is silently ignored.
	DeleteByID(ctx context.Context, id ID) error

	// ExistsByID reports whether an entity with the given id exists.
	ExistsByID(ctx context.Context, id ID) (bool, error)

	// FindAll returns all entities, ordered per sort when given.
	FindAll(ctx context.Context, sort *domain.Sort) ([]*T, error)

	// FindAllByID returns the entities with the given ids. Ids that are not
	// found produce no entry; the result size is at most len(ids).
	FindAllByID(ctx context.Context, ids []ID, sort *domain.Sort) ([]*T, error)

	// FindByID retrieves an entity by its id, or nil if none is found.
	FindByID(ctx context.Context, id ID) (*T, error)

	// Save persists the given entity (insert or update) and returns the
	// refreshed instance. Use the returned instance for further operations,
	// the save may have changed the persisted state completely.
	Save(ctx context.Context, entity *T) (*T, error)

	// SaveAll persists all given entities in a single transaction and returns
	// the refreshed instances in input order, same length as the input.
	SaveAll(ctx context.Context, entities []*T) ([]*T, error)
}

// PagingRepository extends CrudRepository with offset/limit pagination
// composed with counting and ordering.
type PagingRepository[T any, ID comparable] interface {
	CrudRepository[T, ID]

	// FindPage returns one page of entities meeting the paging restriction,
	// together with the total number of entities ignoring the paging.
	FindPage(ctx context.Context, pageable *domain.Pageable, sort *domain.Sort) (*domain.Page[T], error)
}

// Repository combines CRUD and pagination and exposes the entity metadata
// plus the raw Bun query builders for advanced use cases.
type Repository[T any, ID comparable] interface {
	PagingRepository[T, ID]

	EntityInformation() *EntityInformation[T, ID]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
