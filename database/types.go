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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConnectionConfig describes how to connect to a database and tune its pool.
type ConnectionConfig struct {
	Type            string        `yaml:"type" json:"type"` // postgres, mysql, sqlite
	Host            string        `yaml:"host" json:"host"`
	Port            int           `yaml:"port" json:"port"`
	Username        string        `yaml:"username" json:"username"`
	Password        string        `yaml:"password" json:"password"`
	DBName          string        `yaml:"dbname" json:"dbname"`
	DSN             string        `yaml:"dsn" json:"dsn"` // overrides the generated DSN when set
	SSLMode         string        `yaml:"sslmode" json:"sslmode"`
	Charset         string        `yaml:"charset" json:"charset"` // MySQL: utf8mb4
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" json:"conn_max_idle_time"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" json:"connect_timeout"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	EnableQueryLog  bool          `yaml:"enable_query_log" json:"enable_query_log"`
	SlowQueryTime   time.Duration `yaml:"slow_query_time" json:"slow_query_time"`
}

// UnmarshalYAML accepts Go duration strings ("30s", "1h") for the duration
// fields. Fields absent from the document keep their current values.
func (c *ConnectionConfig) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		Type            string `yaml:"type"`
		Host            string `yaml:"host"`
		Port            *int   `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		DBName          string `yaml:"dbname"`
		DSN             string `yaml:"dsn"`
		SSLMode         string `yaml:"sslmode"`
		Charset         string `yaml:"charset"`
		MaxIdleConns    *int   `yaml:"max_idle_conns"`
		MaxOpenConns    *int   `yaml:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		ConnMaxIdleTime string `yaml:"conn_max_idle_time"`
		ConnectTimeout  string `yaml:"connect_timeout"`
		ReadTimeout     string `yaml:"read_timeout"`
		WriteTimeout    string `yaml:"write_timeout"`
		EnableQueryLog  *bool  `yaml:"enable_query_log"`
		SlowQueryTime   string `yaml:"slow_query_time"`
	}{}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&c.Type, raw.Type)
	setString(&c.Host, raw.Host)
	setString(&c.Username, raw.Username)
	setString(&c.Password, raw.Password)
	setString(&c.DBName, raw.DBName)
	setString(&c.DSN, raw.DSN)
	setString(&c.SSLMode, raw.SSLMode)
	setString(&c.Charset, raw.Charset)
	if raw.Port != nil {
		c.Port = *raw.Port
	}
	if raw.MaxIdleConns != nil {
		c.MaxIdleConns = *raw.MaxIdleConns
	}
	if raw.MaxOpenConns != nil {
		c.MaxOpenConns = *raw.MaxOpenConns
	}
	if raw.EnableQueryLog != nil {
		c.EnableQueryLog = *raw.EnableQueryLog
	}

	setDuration := func(dst *time.Duration, v string) error {
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*dst = d
		return nil
	}
	for _, field := range []struct {
		dst *time.Duration
		v   string
	}{
		{&c.ConnMaxLifetime, raw.ConnMaxLifetime},
		{&c.ConnMaxIdleTime, raw.ConnMaxIdleTime},
		{&c.ConnectTimeout, raw.ConnectTimeout},
		{&c.ReadTimeout, raw.ReadTimeout},
		{&c.WriteTimeout, raw.WriteTimeout},
		{&c.SlowQueryTime, raw.SlowQueryTime},
	} {
		if err := setDuration(field.dst, field.v); err != nil {
			return err
		}
	}
	return nil
}

// SchemaConfig controls schema bootstrap for registered models on startup.
type SchemaConfig struct {
	CreateTablesOnStartup bool `yaml:"create_tables_on_startup" json:"create_tables_on_startup"`
}

// Config aggregates connection and schema bootstrap settings.
type Config struct {
	Connection ConnectionConfig `yaml:"connection" json:"connection"`
	Schema     SchemaConfig     `yaml:"schema" json:"schema"`
}

// DefaultConnectionConfig returns a connection config with default pool and
// timeout settings.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute * 30,
		ConnectTimeout:  time.Second * 10,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		EnableQueryLog:  false,
		SlowQueryTime:   time.Second * 2,
	}
}

// LoadConfig reads a YAML configuration file into a Config. Fields left
// empty keep the DefaultConnectionConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{Connection: *DefaultConnectionConfig()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
