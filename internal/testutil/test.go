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

// Package test provides utility functions to support the application's test
// suite: a singleton accessor for the test configuration and a fresh
// in-memory database per test.
package test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/cloud"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/services"

	_ "modernc.org/sqlite"
)

// StateManager acts as a simple in-memory cache for the application
// configuration during test runs, so the TOML files are parsed once per
// test binary.
type StateManager struct {
	config *cloud.Config
}

// state holds the singleton instance of StateManager.
var state = &StateManager{}

// HandleErr is a simple test helper function that checks if an error is not
// nil. If an error exists, it fails the test immediately.
//
// Inputs:
//   - err: The error to check.
//   - t: The *testing.T object from the current test.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// SetupOS points the configuration loader at the repository's configs
// directory and selects the "test" runtime overlay. Tests run from their
// own package directory, so the configs path is resolved to an absolute
// location relative to this source file.
//
// Returns:
//   - An error if setting any environment variable fails.
func SetupOS() (err error) {
	_, thisFile, _, _ := runtime.Caller(0)
	configDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "configs")

	// Set the directory where the configuration files are located.
	err = os.Setenv(cloud.EnvConfigFilePrefix, configDir)
	if err != nil {
		return err
	}
	// Set the runtime environment identifier to "test". This causes the
	// loader to look for a file named ".env.test.toml" for overrides.
	err = os.Setenv(cloud.EnvConfigRuntime, "test")
	return err
}

// GetConfig is a singleton accessor for the test configuration. It ensures
// the configuration is loaded from the TOML files only once and cached for
// subsequent calls.
//
// Returns:
//   - A pointer to the loaded and cached cloud.Config struct.
func GetConfig() *cloud.Config {
	if state.config == nil {
		err := SetupOS()
		if err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		// Create a new, empty config struct.
		config := cloud.NewConfig()
		// Load the configuration from the TOML files into the struct.
		cloud.LoadConfig(&config)
		// Cache the loaded config.
		state.config = config
	}
	return state.config
}

// NewTestDatabase opens a uniquely named shared in-memory database with the
// schema applied, and registers cleanup with the test. Each call returns an
// isolated store, so tests cannot observe each other's rows.
//
// Inputs:
//   - t: The *testing.T object from the current test.
//
// Returns:
//   - A ready-to-use *sql.DB handle.
func NewTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	// A unique name per call keeps the shared cache scoped to one test
	// while still letting multiple connections see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := services.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to initialize test schema: %v", err)
	}
	return db
}
