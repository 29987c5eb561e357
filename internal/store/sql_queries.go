// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// psql renders squirrel builders with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const usersTable = "users"

// userColumns is the projection every user query scans, in scanUser order.
var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"provider",
	"provider_subject",
	"display_name",
	"created_at",
	"updated_at",
}

// SQLite keystore statements.
const (
	keystoreGet = `SELECT value FROM keystore WHERE key = ?`

	keystoreSet = `INSERT INTO keystore (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	keystoreDelete = `DELETE FROM keystore WHERE key = ?`
)
