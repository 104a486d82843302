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

// Package model defines the data structures for the application. This file
// holds the structures that mirror rows in the persistence store.
package model

import "time"

// LicenseRecord mirrors a row in the licenses table. The table is
// pre-populated out of band; the pipeline only ever reads it.
type LicenseRecord struct {
	LicenseKey string `json:"license_key"`
	Valid      bool   `json:"valid"`
}

// ProjectRecord is an append-only log entry written after a successful
// edit. Id and CreatedAt are assigned by the database.
type ProjectRecord struct {
	Id         int64     `json:"id"`
	InputPath  string    `json:"input_path"`
	OutputPath string    `json:"output_path"` // The final path, overlay-composited when that step succeeded.
	Prompt     string    `json:"prompt"`
	CreatedAt  time.Time `json:"created_at"`
}
