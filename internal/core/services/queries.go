// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package services provides the data access layer over the relational
// store: license lookups and the append-only project log. This file
// centralizes the SQL statements and the embedded schema so the queries
// are easy to audit in one place.
package services

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSql string

// SQL statements issued by the core. The license lookup and project insert
// are the only statements the pipeline itself runs; the project listing
// backs the read-only log endpoint.
const (
	QryFindValidLicense = `SELECT license_key FROM licenses WHERE license_key = ? AND valid = 1 LIMIT 1`
	QryInsertProject    = `INSERT INTO projects (input_path, output_path, prompt) VALUES (?, ?, ?)`
	QryListProjects     = `SELECT id, input_path, output_path, prompt, created_at FROM projects ORDER BY id DESC LIMIT ?`
)

// InitSchema applies the embedded schema to the store. All statements are
// idempotent, so this is safe to run on every startup.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSql); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
