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
	"database/sql"
	"errors"
	"reflect"

	"github.com/tomoncle/springdata-bun/domain"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type baseRepository[T any, ID comparable] struct {
	db   bun.IDB
	info *EntityInformation[T, ID]
	pk   *schema.Field
}

// NewCrudRepository returns a generic CRUD repository for T bound to the
// provided session. The mapped type must declare exactly one primary key
// attribute, otherwise a ConfigurationError is returned.
func NewCrudRepository[T any, ID comparable](db bun.IDB) (CrudRepository[T, ID], error) {
	return newBaseRepository[T, ID](db)
}

func newBaseRepository[T any, ID comparable](db bun.IDB) (*baseRepository[T, ID], error) {
	info, err := NewEntityInformation[T, ID](db.Dialect())
	if err != nil {
		return nil, err
	}
	if len(info.IDAttributes()) != 1 {
		return nil, &ConfigurationError{
			Model:  info.TypeName(),
			Reason: "Object Relational Mapper must have one and only one primary key",
		}
	}
	return &baseRepository[T, ID]{db: db, info: info, pk: info.IDAttributes()[0]}, nil
}

// EntityInformation returns the identity metadata of the bound entity type.
func (r *baseRepository[T, ID]) EntityInformation() *EntityInformation[T, ID] { return r.info }

func (r *baseRepository[T, ID]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepository[T, ID]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepository[T, ID]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepository[T, ID]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepository[T, ID]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepository[T, ID]) pkIdent() bun.Ident { return bun.Ident(r.pk.Name) }

func (r *baseRepository[T, ID]) Clear(ctx context.Context) error {
	_, err := r.db.NewDelete().Model((*T)(nil)).Where("1 = 1").Exec(ctx)
	return err
}

func (r *baseRepository[T, ID]) Count(ctx context.Context) (int, error) {
	return r.executeCount(ctx, r.db.NewSelect().Model((*T)(nil)))
}

func (r *baseRepository[T, ID]) Delete(ctx context.Context, entity *T) error {
	if entity == nil {
		return errNilArgument("entity")
	}
	return r.deleteOne(ctx, r.db, entity)
}

func (r *baseRepository[T, ID]) DeleteAll(ctx context.Context, entities []*T) error {
	if err := validateEntities(entities); err != nil {
		return err
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, entity := range entities {
			if err := r.deleteOne(ctx, tx, entity); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *baseRepository[T, ID]) DeleteAllByID(ctx context.Context, ids []ID) error {
	if err := validateIDs(ids); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.NewDelete().
		Model((*T)(nil)).
		Where("? IN (?)", r.pkIdent(), bun.In(ids)).
		Exec(ctx)
	return err
}

func (r *baseRepository[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	if isNilID(id) {
		return errNilArgument("id")
	}
	_, err := r.db.NewDelete().
		Model((*T)(nil)).
		Where("? = ?", r.pkIdent(), id).
		Exec(ctx)
	return err
}

func (r *baseRepository[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	if isNilID(id) {
		return false, errNilArgument("id")
	}
	count, err := r.executeCount(ctx, r.db.NewSelect().
		Model((*T)(nil)).
		Where("? = ?", r.pkIdent(), id))
	return count > 0, err
}

func (r *baseRepository[T, ID]) FindAll(ctx context.Context, sort *domain.Sort) ([]*T, error) {
	var entities []*T
	query, err := r.withOrdering(r.db.NewSelect().Model(&entities), sort)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepository[T, ID]) FindAllByID(ctx context.Context, ids []ID, sort *domain.Sort) ([]*T, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return make([]*T, 0), nil
	}
	var entities []*T
	query, err := r.withOrdering(r.db.NewSelect().
		Model(&entities).
		Where("? IN (?)", r.pkIdent(), bun.In(ids)), sort)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	if isNilID(id) {
		return nil, errNilArgument("id")
	}
	var entity T
	err := r.db.NewSelect().
		Model(&entity).
		Where("? = ?", r.pkIdent(), id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepository[T, ID]) Save(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, errNilArgument("entity")
	}
	if err := r.saveOne(ctx, r.db, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepository[T, ID]) SaveAll(ctx context.Context, entities []*T) ([]*T, error) {
	if err := validateEntities(entities); err != nil {
		return nil, err
	}
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, entity := range entities {
			if err := r.saveOne(ctx, tx, entity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepository[T, ID]) deleteOne(ctx context.Context, db bun.IDB, entity *T) error {
	_, err := db.NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

// saveOne persists one entity: insert when the instance is new, otherwise
// update by primary key, falling back to insert when no row matched. The
// instance is refreshed from storage afterwards.
func (r *baseRepository[T, ID]) saveOne(ctx context.Context, db bun.IDB, entity *T) error {
	insert := r.info.IsNew(entity)
	if !insert {
		res, err := db.NewUpdate().Model(entity).WherePK().Exec(ctx)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			insert = true
		}
	}
	if insert {
		if _, err := db.NewInsert().Model(entity).Exec(ctx); err != nil {
			return err
		}
	}
	return r.refresh(ctx, db, entity)
}

func (r *baseRepository[T, ID]) refresh(ctx context.Context, db bun.IDB, entity *T) error {
	return db.NewSelect().Model(entity).WherePK().Scan(ctx)
}

// executeCount rewrites the given select to project a count of the primary
// key instead of entity rows and returns the scalar result.
func (r *baseRepository[T, ID]) executeCount(ctx context.Context, query *bun.SelectQuery) (int, error) {
	var count int
	err := query.ColumnExpr("count(?)", r.pkIdent()).Scan(ctx, &count)
	return count, err
}

// withOrdering appends one ORDER BY term per sort order, in declared order,
// so the first order is the primary sort key. Every property is resolved
// through the mapped attribute set; unknown properties yield an
// AttributeResolutionError.
func (r *baseRepository[T, ID]) withOrdering(query *bun.SelectQuery, sort *domain.Sort) (*bun.SelectQuery, error) {
	if sort == nil {
		return query, nil
	}
	for _, order := range sort.Orders() {
		field, ok := r.info.Attribute(order.Property)
		if !ok {
			return nil, &AttributeResolutionError{Model: r.info.TypeName(), Property: order.Property}
		}
		direction := "ASC"
		if order.IsDescending() {
			direction = "DESC"
		}
		query = query.OrderExpr("? ?", bun.Ident(field.Name), bun.Safe(direction))
	}
	return query, nil
}

func validateEntities[T any](entities []*T) error {
	if entities == nil {
		return errNilArgument("entities")
	}
	for _, entity := range entities {
		if entity == nil {
			return errNilArgument("entities element")
		}
	}
	return nil
}

func validateIDs[ID comparable](ids []ID) error {
	if ids == nil {
		return errNilArgument("ids")
	}
	for _, id := range ids {
		if isNilID(id) {
			return errNilArgument("ids element")
		}
	}
	return nil
}

// isNilID reports whether id is nil for nilable ID kinds. Value kinds such
// as int or string can never be nil; their zero values are legal ids.
func isNilID(id any) bool {
	if id == nil {
		return true
	}
	switch v := reflect.ValueOf(id); v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
