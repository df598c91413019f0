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
	"fmt"
	"reflect"

	"github.com/uptrace/bun/schema"
)

// EntityInformation holds the identity metadata of one mapped entity type:
// its attribute names, its primary key attribute(s), and predicates for
// whether an instance has been persisted yet. It is computed once from the
// dialect's table registry and is read-only afterwards.
type EntityInformation[T any, ID comparable] struct {
	table *schema.Table
	pks   []*schema.Field
}

// NewEntityInformation derives the identity metadata for T from the given
// dialect. It fails with a ConfigurationError when T has no mapped attributes.
func NewEntityInformation[T any, ID comparable](dialect schema.Dialect) (*EntityInformation[T, ID], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	table := dialect.Tables().Get(typ)
	if table == nil || len(table.Fields) == 0 {
		return nil, &ConfigurationError{
			Model:  typ.String(),
			Reason: "type has no mapped attributes",
		}
	}
	return &EntityInformation[T, ID]{table: table, pks: table.PKs}, nil
}

// TableName returns the SQL table name of the mapped type.
func (ei *EntityInformation[T, ID]) TableName() string { return ei.table.Name }

// TypeName returns the Go type name of the mapped type.
func (ei *EntityInformation[T, ID]) TypeName() string { return ei.table.TypeName }

// AttributeNames returns the column names of all mapped attributes in
// declaration order.
func (ei *EntityInformation[T, ID]) AttributeNames() []string {
	names := make([]string, len(ei.table.Fields))
	for i, f := range ei.table.Fields {
		names[i] = f.Name
	}
	return names
}

// IDAttributeNames returns the column names of the primary key attribute(s)
// in declaration order.
func (ei *EntityInformation[T, ID]) IDAttributeNames() []string {
	names := make([]string, len(ei.pks))
	for i, f := range ei.pks {
		names[i] = f.Name
	}
	return names
}

// IDAttributes returns the field accessors of the primary key attribute(s).
func (ei *EntityInformation[T, ID]) IDAttributes() []*schema.Field {
	pks := make([]*schema.Field, len(ei.pks))
	copy(pks, ei.pks)
	return pks
}

// HasCompositeID reports whether the mapped type declares more than one
// primary key attribute.
func (ei *EntityInformation[T, ID]) HasCompositeID() bool { return len(ei.pks) > 1 }

// Attribute resolves a mapped attribute by its column name.
func (ei *EntityInformation[T, ID]) Attribute(name string) (*schema.Field, bool) {
	f, ok := ei.table.FieldMap[name]
	return f, ok
}

// ID reads the primary key value from the given instance. Callers holding a
// composite key type must not use it; the single key assumption is enforced
// at the repository layer.
func (ei *EntityInformation[T, ID]) ID(entity *T) (ID, error) {
	var id ID
	if entity == nil {
		return id, errNilArgument("entity")
	}
	if len(ei.pks) == 0 {
		return id, &ConfigurationError{Model: ei.TypeName(), Reason: "type has no primary key attribute"}
	}
	value := ei.pks[0].Value(reflect.ValueOf(entity).Elem())
	if v, ok := value.Interface().(ID); ok {
		return v, nil
	}
	idType := reflect.TypeOf(id)
	if idType != nil && value.Type().ConvertibleTo(idType) {
		return value.Convert(idType).Interface().(ID), nil
	}
	return id, fmt.Errorf("primary key %s.%s is %s, not %T",
		ei.TypeName(), ei.pks[0].Name, value.Type(), id)
}

// IsNew reports whether the instance has not been persisted yet: true iff
// the primary key attribute still holds its zero or nil value.
func (ei *EntityInformation[T, ID]) IsNew(entity *T) bool {
	if entity == nil || len(ei.pks) == 0 {
		return true
	}
	strct := reflect.ValueOf(entity).Elem()
	for _, pk := range ei.pks {
		if !pk.HasZeroValue(strct) {
			return false
		}
	}
	return true
}
