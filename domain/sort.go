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

// Direction is the sort direction of an Order.
type Direction int

const (
	ASC Direction = iota
	DESC
)

var _ BaseEnum = ASC

// IsValid reports whether the direction is one of the declared values.
func (d Direction) IsValid() bool {
	return d == ASC || d == DESC
}

// Number returns the numeric value of the direction.
func (d Direction) Number() int {
	if !d.IsValid() {
		return IllegalValue
	}
	return int(d)
}

func (d Direction) String() string {
	switch d {
	case ASC:
		return "ASC"
	case DESC:
		return "DESC"
	default:
		return IllegalName
	}
}

// Name returns the enum name of the direction.
func (d Direction) Name() string { return d.String() }

// Desc returns a human readable description of the direction.
func (d Direction) Desc() string {
	switch d {
	case ASC:
		return "ascending"
	case DESC:
		return "descending"
	default:
		return IllegalDesc
	}
}

// Order pairs a property name with a sort direction.
type Order struct {
	Property  string
	Direction Direction
}

// IsAscending reports whether the order sorts ascending.
func (o Order) IsAscending() bool { return o.Direction == ASC }

// IsDescending reports whether the order sorts descending.
func (o Order) IsDescending() bool { return o.Direction == DESC }

// Sort is an ordered list of Order clauses. The first order is the primary
// sort key, following orders break ties in declared order.
type Sort struct {
	orders []Order
}

// By creates a Sort for the given properties, all with the same direction.
func By(direction Direction, properties ...string) *Sort {
	orders := make([]Order, 0, len(properties))
	for _, p := range properties {
		orders = append(orders, Order{Property: p, Direction: direction})
	}
	return &Sort{orders: orders}
}

// Asc creates an ascending Sort for the given properties.
func Asc(properties ...string) *Sort { return By(ASC, properties...) }

// Desc creates a descending Sort for the given properties.
func Desc(properties ...string) *Sort { return By(DESC, properties...) }

// Unsorted returns a Sort with no orders.
func Unsorted() *Sort { return &Sort{} }

// And returns a new Sort combining the receiver's orders with other's orders.
func (s *Sort) And(other *Sort) *Sort {
	if other == nil {
		return s
	}
	orders := make([]Order, 0, len(s.orders)+len(other.orders))
	orders = append(orders, s.orders...)
	orders = append(orders, other.orders...)
	return &Sort{orders: orders}
}

// Orders returns the order clauses in declaration order.
func (s *Sort) Orders() []Order {
	orders := make([]Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// IsSorted reports whether the Sort carries at least one order.
func (s *Sort) IsSorted() bool { return len(s.orders) > 0 }
