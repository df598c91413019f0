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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionValues(t *testing.T) {
	assert.True(t, ASC.IsValid())
	assert.True(t, DESC.IsValid())
	assert.Equal(t, "ASC", ASC.String())
	assert.Equal(t, "DESC", DESC.String())
	assert.Equal(t, "ascending", ASC.Desc())
	assert.Equal(t, "descending", DESC.Desc())

	illegal := Direction(42)
	assert.False(t, illegal.IsValid())
	assert.Equal(t, IllegalName, illegal.String())
	assert.Equal(t, IllegalValue, illegal.Number())
}

func TestSortBy(t *testing.T) {
	sort := By(DESC, "id", "name")
	orders := sort.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, Order{Property: "id", Direction: DESC}, orders[0])
	assert.Equal(t, Order{Property: "name", Direction: DESC}, orders[1])
	assert.True(t, sort.IsSorted())
}

func TestSortAscDesc(t *testing.T) {
	assert.True(t, Asc("id").Orders()[0].IsAscending())
	assert.True(t, Desc("id").Orders()[0].IsDescending())
}

func TestSortAnd(t *testing.T) {
	sort := Asc("name").And(Desc("id"))
	orders := sort.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, "name", orders[0].Property)
	assert.Equal(t, "id", orders[1].Property)
	assert.Equal(t, DESC, orders[1].Direction)
}

func TestSortAndNil(t *testing.T) {
	sort := Asc("id")
	assert.Same(t, sort, sort.And(nil))
}

func TestUnsorted(t *testing.T) {
	assert.False(t, Unsorted().IsSorted())
	assert.Empty(t, Unsorted().Orders())
}

func TestSortOrdersIsACopy(t *testing.T) {
	sort := Asc("id")
	orders := sort.Orders()
	orders[0].Property = "mutated"
	assert.Equal(t, "id", sort.Orders()[0].Property)
}
