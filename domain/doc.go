// Package domain provides the sorting and pagination value objects consumed
// by the generic repositories: Sort, Direction, Pageable, and Page.
package domain
