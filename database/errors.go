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
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SQLError is a driver-independent classification of database errors.
// Classification is inspection only; the original error is never wrapped or
// replaced by this package.
type SQLError int

const (
	UnknownErr SQLError = iota
	NoTableErr
	ExistTableErr
	NoColumnErr
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	DataTruncatedErr
)

var mysqlErrNumbers = map[uint16]SQLError{
	1049: NoTableErr,
	1050: ExistTableErr,
	1054: NoColumnErr,
	1062: DuplicateKeyErr,
	1048: NotNullViolationErr,
	1216: ForeignKeyViolationErr,
	1217: ForeignKeyViolationErr,
	1451: ForeignKeyViolationErr,
	1452: ForeignKeyViolationErr,
	3819: CheckConstraintViolationErr,
	1265: DataTruncatedErr,
}

// Substring markers covering postgres SQLSTATE text and sqlite messages.
var errorMarkers = []struct {
	kind    SQLError
	markers []string
}{
	{NoTableErr, []string{"sqlstate 42p01", "undefined table", "no such table"}},
	{ExistTableErr, []string{"sqlstate 42p07", "already exists"}},
	{NoColumnErr, []string{"sqlstate 42703", "undefined column", "no such column"}},
	{DuplicateKeyErr, []string{"sqlstate 23505", "duplicate key value", "unique constraint failed"}},
	{NotNullViolationErr, []string{"sqlstate 23502", "not-null constraint", "not null constraint failed"}},
	{ForeignKeyViolationErr, []string{"sqlstate 23503", "foreign key violation", "foreign key constraint failed"}},
	{CheckConstraintViolationErr, []string{"sqlstate 23514", "check constraint"}},
	{DataTruncatedErr, []string{"sqlstate 22001", "string data right truncation", "data truncated"}},
}

// Classify maps a driver error to a SQLError kind. The second return value
// reports whether the error was recognized as a database error at all.
func Classify(err error) (SQLError, bool) {
	if err == nil {
		return UnknownErr, false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if kind, ok := mysqlErrNumbers[mysqlErr.Number]; ok {
			return kind, true
		}
		return UnknownErr, true
	}
	msg := strings.ToLower(err.Error())
	for _, entry := range errorMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(msg, marker) {
				return entry.kind, true
			}
		}
	}
	return UnknownErr, false
}
