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
// store. This file implements the append-only project log written at the
// end of every successful edit, plus the read-only listing that backs the
// projects endpoint.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
)

// ProjectService appends and lists project records. Records are never
// mutated or deleted; insertion order across concurrent edits is not
// guaranteed and does not matter.
type ProjectService struct {
	DB *sql.DB
}

// Insert appends a project record. The database assigns the id and
// timestamp.
func (s *ProjectService) Insert(ctx context.Context, record *model.ProjectRecord) error {
	if _, err := s.DB.ExecContext(ctx, QryInsertProject,
		record.InputPath, record.OutputPath, record.Prompt); err != nil {
		return fmt.Errorf("failed to persist project record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *ProjectService) List(ctx context.Context, limit int) ([]*model.ProjectRecord, error) {
	rows, err := s.DB.QueryContext(ctx, QryListProjects, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list project records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*model.ProjectRecord, 0, limit)
	for rows.Next() {
		record := &model.ProjectRecord{}
		if err := rows.Scan(&record.Id, &record.InputPath, &record.OutputPath,
			&record.Prompt, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project record: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project records: %w", err)
	}
	return out, nil
}
