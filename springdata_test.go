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

package springdata_test

import (
	"context"
	"testing"
	"time"

	springdata "github.com/tomoncle/springdata-bun"
	"github.com/tomoncle/springdata-bun/database"
	"github.com/tomoncle/springdata-bun/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type systemConfig struct {
	bun.BaseModel `bun:"table:system_config,alias:sc"`

	ID          int64             `bun:"id,pk" json:"id"`
	ConfigKey   string            `bun:"config_key,notnull,unique" json:"config_key"`
	ConfigValue string            `bun:"config_value" json:"config_value"`
	Settings    domain.JsonObject `bun:"settings,type:text" json:"settings"`
	CreatedAt   time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

func init() {
	database.RegisterModel((*systemConfig)(nil), 1)
}

func initTestDatabase(t *testing.T) {
	t.Helper()
	conn := database.DefaultConnectionConfig()
	conn.Type = "sqlite"
	conn.DSN = ":memory:"
	conn.MaxOpenConns = 1
	conn.MaxIdleConns = 1
	_, err := database.InitDB(&database.Config{
		Connection: *conn,
		Schema:     database.SchemaConfig{CreateTablesOnStartup: true},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseDB() })
}

func TestServiceLifecycle(t *testing.T) {
	initTestDatabase(t)
	svc := springdata.NewService[systemConfig, int64]()
	ctx := context.Background()

	saved, err := svc.Save(ctx, &systemConfig{
		ID:          1,
		ConfigKey:   "app.name",
		ConfigValue: "springdata-bun",
		Settings:    domain.JsonObject{"enabled": true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	_, err = svc.SaveAll(ctx, []*systemConfig{
		{ID: 2, ConfigKey: "app.mode", ConfigValue: "test"},
		{ID: 3, ConfigKey: "app.debug", ConfigValue: "false"},
	})
	require.NoError(t, err)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	found, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "app.name", found.ConfigKey)
	assert.Equal(t, true, found.Settings["enabled"])

	exists, err := svc.Exists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := svc.All(ctx, domain.Desc("id"))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)

	page, err := svc.Page(ctx, domain.Of(0, 2), domain.Asc("id"))
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.NumberOfElements())

	require.NoError(t, svc.DeleteByID(ctx, 3))
	require.NoError(t, svc.Delete(ctx, found))
	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.Clear(ctx))
	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestServiceQueryBuilders(t *testing.T) {
	initTestDatabase(t)
	svc := springdata.NewService[systemConfig, int64]()
	ctx := context.Background()

	_, err := svc.InsertBuilder().
		Model(&systemConfig{ID: 1, ConfigKey: "app.name", ConfigValue: "x"}).
		Exec(ctx)
	require.NoError(t, err)

	var rows []*systemConfig
	err = svc.SelectBuilder().
		Model(&rows).
		Where("config_key = ?", "app.name").
		Scan(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "x", rows[0].ConfigValue)
}
