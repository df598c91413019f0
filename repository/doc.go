// Package repository provides generic Spring Data style repositories built
// on Bun: entity identity metadata derived from the mapped type, CRUD
// operations, and offset/limit pagination composed with counting and
// ordering.
package repository
