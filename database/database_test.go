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

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type auditEntry struct {
	bun.BaseModel `bun:"table:audit_entry"`

	ID      int64  `bun:"id,pk,autoincrement"`
	Subject string `bun:"subject,notnull"`
}

func init() {
	RegisterModel((*auditEntry)(nil), 1)
}

func sqliteMemoryConfig() *Config {
	conn := DefaultConnectionConfig()
	conn.Type = "sqlite"
	conn.DSN = ":memory:"
	conn.MaxOpenConns = 1
	conn.MaxIdleConns = 1
	return &Config{
		Connection: *conn,
		Schema:     SchemaConfig{CreateTablesOnStartup: true},
	}
}

func TestInitDBWithSQLite(t *testing.T) {
	db, err := InitDB(sqliteMemoryConfig())
	require.NoError(t, err)
	defer func() { require.NoError(t, CloseDB()) }()

	assert.Same(t, db, GetDB())
	require.NoError(t, Ping(context.Background()))

	// registered tables were bootstrapped
	ctx := context.Background()
	_, err = db.NewInsert().Model(&auditEntry{Subject: "created"}).Exec(ctx)
	require.NoError(t, err)
	count, err := db.NewSelect().Model((*auditEntry)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NotZero(t, Stats().OpenConnections)
}

func TestInitDBRejectsNilConfig(t *testing.T) {
	_, err := InitDB(nil)
	assert.Error(t, err)
}

func TestOpenRejectsUnsupportedType(t *testing.T) {
	cfg := DefaultConnectionConfig()
	cfg.Type = "oracle"
	_, err := Open(cfg)
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestGetDBWithoutInit(t *testing.T) {
	require.NoError(t, CloseDB())
	assert.Nil(t, GetDB())
	assert.Error(t, Ping(context.Background()))
}

func TestModelRegistryOrdersByPriority(t *testing.T) {
	registry := &modelRegistry{}
	registry.register(&modelAdapter{instance: "second", priority: 2})
	registry.register(&modelAdapter{instance: "first", priority: 1})

	models := registry.all()
	require.Len(t, models, 2)
	assert.Equal(t, "first", models[0].Instance())
	assert.Equal(t, "second", models[1].Instance())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.yaml")
	content := []byte(`
connection:
  type: sqlite
  dbname: app
  enable_query_log: true
  slow_query_time: 5s
schema:
  create_tables_on_startup: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Connection.Type)
	assert.Equal(t, "app", cfg.Connection.DBName)
	assert.True(t, cfg.Connection.EnableQueryLog)
	assert.Equal(t, 5*time.Second, cfg.Connection.SlowQueryTime)
	assert.True(t, cfg.Schema.CreateTablesOnStartup)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultConnectionConfig().MaxOpenConns, cfg.Connection.MaxOpenConns)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClassifyMySQLErrors(t *testing.T) {
	kind, ok := Classify(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	assert.True(t, ok)
	assert.Equal(t, DuplicateKeyErr, kind)

	kind, ok = Classify(&mysql.MySQLError{Number: 9999, Message: "whatever"})
	assert.True(t, ok)
	assert.Equal(t, UnknownErr, kind)
}

func TestClassifyTextualErrors(t *testing.T) {
	tests := []struct {
		err  error
		kind SQLError
	}{
		{errors.New(`ERROR: duplicate key value violates unique constraint "pk" (SQLSTATE 23505)`), DuplicateKeyErr},
		{errors.New("UNIQUE constraint failed: dummy.id"), DuplicateKeyErr},
		{errors.New("no such table: dummy"), NoTableErr},
		{errors.New("no such column: missing"), NoColumnErr},
		{errors.New("NOT NULL constraint failed: dummy.data"), NotNullViolationErr},
		{errors.New("FOREIGN KEY constraint failed"), ForeignKeyViolationErr},
	}
	for _, tt := range tests {
		kind, ok := Classify(tt.err)
		assert.True(t, ok, tt.err.Error())
		assert.Equal(t, tt.kind, kind, tt.err.Error())
	}
}

func TestClassifyUnrecognizedError(t *testing.T) {
	_, ok := Classify(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = Classify(nil)
	assert.False(t, ok)
}
