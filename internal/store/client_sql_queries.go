// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv"

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetValueQuery(key string, value []byte) (string, []any, error) {
	return sqlite.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
