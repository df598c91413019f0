// Package database provides connection management, configuration loading,
// model registration, table bootstrap, query logging hooks, and SQL error
// classification built on top of Bun.
package database
