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
	"testing"

	"github.com/tomoncle/springdata-bun/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDummyPagingRepository(t *testing.T) (PagingRepository[dummy, int64], func()) {
	t.Helper()
	db := newTestDB(t)
	repo, err := NewPagingRepository[dummy, int64](db)
	require.NoError(t, err)
	return repo, func() { seedDummies(t, db) }
}

func TestFindPageReturnsAllWithinSize(t *testing.T) {
	repo, seed := newDummyPagingRepository(t)
	seed()

	page, err := repo.FindPage(context.Background(), domain.OfSize(10), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, []int64{1, 2, 3}, dummyIDs(page.Content))
	assert.Equal(t, 1, page.TotalPages())
	assert.True(t, page.IsFirst())
	assert.True(t, page.IsLast())
}

func TestFindPageFirstSlice(t *testing.T) {
	repo, seed := newDummyPagingRepository(t)
	seed()

	page, err := repo.FindPage(context.Background(), domain.Of(0, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.NumberOfElements())
	assert.Equal(t, []int64{1, 2}, dummyIDs(page.Content))
	assert.Equal(t, 2, page.TotalPages())
	assert.True(t, page.HasNext())
}

func TestFindPageSecondSlice(t *testing.T) {
	repo, seed := newDummyPagingRepository(t)
	seed()

	page, err := repo.FindPage(context.Background(), domain.Of(1, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, []int64{3}, dummyIDs(page.Content))
	assert.True(t, page.IsLast())
	assert.True(t, page.HasPrevious())
}

func TestFindPageSorted(t *testing.T) {
	repo, seed := newDummyPagingRepository(t)
	seed()

	page, err := repo.FindPage(context.Background(), domain.Of(0, 2), domain.Desc("id"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, dummyIDs(page.Content))
}

func TestFindPageEmptyRepository(t *testing.T) {
	repo, _ := newDummyPagingRepository(t)

	page, err := repo.FindPage(context.Background(), domain.OfSize(10), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalElements)
	assert.False(t, page.HasContent())
}

func TestFindPageNilPageable(t *testing.T) {
	repo, _ := newDummyPagingRepository(t)

	_, err := repo.FindPage(context.Background(), nil, nil)
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestFindPageUnknownSortProperty(t *testing.T) {
	repo, seed := newDummyPagingRepository(t)
	seed()

	_, err := repo.FindPage(context.Background(), domain.OfSize(10), domain.Asc("missing"))
	var attrErr *AttributeResolutionError
	require.ErrorAs(t, err, &attrErr)
}
