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

// Package springdata provides Spring Data style generic repositories on top
// of Bun: CRUD, sorting, and pagination for one entity type without
// per-entity boilerplate. The root package is a thin facade over the
// repository package bound to the global database connection.
package springdata

import (
	"context"
	"errors"
	"sync"

	"github.com/tomoncle/springdata-bun/database"
	"github.com/tomoncle/springdata-bun/domain"
	"github.com/tomoncle/springdata-bun/repository"

	"github.com/uptrace/bun"
)

// Service is the entity-scoped facade over the generic repository, bound
// lazily to the global database connection.
type Service[T any, ID comparable] interface {
	// Get returns a single entity by its identifier, or nil if none found.
	Get(ctx context.Context, id ID) (*T, error)

	// All returns all entities, optionally ordered.
	All(ctx context.Context, sort *domain.Sort) ([]*T, error)

	// AllByID returns the entities with the given identifiers.
	AllByID(ctx context.Context, ids []ID, sort *domain.Sort) ([]*T, error)

	// Page returns a paginated list of entities.
	Page(ctx context.Context, pageable *domain.Pageable, sort *domain.Sort) (*domain.Page[T], error)

	// Count returns the number of entities.
	Count(ctx context.Context) (int, error)

	// Exists reports whether an entity with the given identifier exists.
	Exists(ctx context.Context, id ID) (bool, error)

	// Save persists an entity and returns the refreshed instance.
	Save(ctx context.Context, model *T) (*T, error)

	// SaveAll persists all entities in one transaction.
	SaveAll(ctx context.Context, models []*T) ([]*T, error)

	// Delete removes the given entity.
	Delete(ctx context.Context, model *T) error

	// DeleteByID removes the entity with the given identifier.
	DeleteByID(ctx context.Context, id ID) error

	// Clear removes all entities.
	Clear(ctx context.Context) error

	// SelectBuilder returns a Bun select query builder for the entity.
	SelectBuilder() *bun.SelectQuery

	// InsertBuilder returns a Bun insert query builder for the entity.
	InsertBuilder() *bun.InsertQuery

	// UpdateBuilder returns a Bun update query builder for the entity.
	UpdateBuilder() *bun.UpdateQuery

	// DeleteBuilder returns a Bun delete query builder for the entity.
	DeleteBuilder() *bun.DeleteQuery
}

type baseServiceImpl[T any, ID comparable] struct {
	repo repository.Repository[T, ID]
	err  error
	once sync.Once
}

// NewService returns a Service implementation using the generic repository
// backed by the global database connection. The repository is constructed on
// first use; a mapping configuration problem surfaces as the error of that
// first call.
func NewService[T any, ID comparable]() Service[T, ID] {
	return &baseServiceImpl[T, ID]{}
}

func (s *baseServiceImpl[T, ID]) baseRepo() (repository.Repository[T, ID], error) {
	s.once.Do(func() {
		db := database.GetDB()
		if db == nil {
			s.err = errors.New("database not initialized, call database.InitDB first")
			return
		}
		s.repo, s.err = repository.NewRepository[T, ID](db)
	})
	return s.repo, s.err
}

func (s *baseServiceImpl[T, ID]) Get(ctx context.Context, id ID) (*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, id)
}

func (s *baseServiceImpl[T, ID]) All(ctx context.Context, sort *domain.Sort) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.FindAll(ctx, sort)
}

func (s *baseServiceImpl[T, ID]) AllByID(ctx context.Context, ids []ID, sort *domain.Sort) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.FindAllByID(ctx, ids, sort)
}

func (s *baseServiceImpl[T, ID]) Page(ctx context.Context, pageable *domain.Pageable, sort *domain.Sort) (*domain.Page[T], error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.FindPage(ctx, pageable, sort)
}

func (s *baseServiceImpl[T, ID]) Count(ctx context.Context) (int, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return 0, err
	}
	return repo.Count(ctx)
}

func (s *baseServiceImpl[T, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return false, err
	}
	return repo.ExistsByID(ctx, id)
}

func (s *baseServiceImpl[T, ID]) Save(ctx context.Context, model *T) (*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.Save(ctx, model)
}

func (s *baseServiceImpl[T, ID]) SaveAll(ctx context.Context, models []*T) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.SaveAll(ctx, models)
}

func (s *baseServiceImpl[T, ID]) Delete(ctx context.Context, model *T) error {
	repo, err := s.baseRepo()
	if err != nil {
		return err
	}
	return repo.Delete(ctx, model)
}

func (s *baseServiceImpl[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	repo, err := s.baseRepo()
	if err != nil {
		return err
	}
	return repo.DeleteByID(ctx, id)
}

func (s *baseServiceImpl[T, ID]) Clear(ctx context.Context) error {
	repo, err := s.baseRepo()
	if err != nil {
		return err
	}
	return repo.Clear(ctx)
}

func (s *baseServiceImpl[T, ID]) SelectBuilder() *bun.SelectQuery {
	repo, err := s.baseRepo()
	if err != nil {
		return database.GetDB().NewSelect()
	}
	return repo.NewSelect()
}

func (s *baseServiceImpl[T, ID]) InsertBuilder() *bun.InsertQuery {
	repo, err := s.baseRepo()
	if err != nil {
		return database.GetDB().NewInsert()
	}
	return repo.NewInsert()
}

func (s *baseServiceImpl[T, ID]) UpdateBuilder() *bun.UpdateQuery {
	repo, err := s.baseRepo()
	if err != nil {
		return database.GetDB().NewUpdate()
	}
	return repo.NewUpdate()
}

func (s *baseServiceImpl[T, ID]) DeleteBuilder() *bun.DeleteQuery {
	repo, err := s.baseRepo()
	if err != nil {
		return database.GetDB().NewDelete()
	}
	return repo.NewDelete()
}
