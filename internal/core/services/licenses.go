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
// store. This file implements the license validator: a read-only lookup
// against the pre-populated licenses table.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LicenseService answers whether a presented license key is currently
// valid. The licenses table is owned by the surrounding application; the
// pipeline only reads it.
type LicenseService struct {
	DB *sql.DB
}

// IsLicensed reports whether key matches a valid license. An empty key
// means no key was presented and is a normal false, as is an unknown or
// invalidated key. Only a store connectivity failure surfaces as an error,
// and that error is fatal for the owning request.
func (s *LicenseService) IsLicensed(ctx context.Context, key string) (bool, error) {
	if len(key) == 0 {
		return false, nil
	}

	var found string
	err := s.DB.QueryRowContext(ctx, QryFindValidLicense, key).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("license lookup failed: %w", err)
	}
	return true, nil
}
