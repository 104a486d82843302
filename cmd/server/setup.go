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

package main

import (
	"context"
	"log"
	"os"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/cloud"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/services"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/workflow"
)

// StateManager holds the shared components for the application.
type StateManager struct {
	config         *cloud.Config
	cloud          *cloud.ServiceClients
	editWorkflow   *workflow.VibeEditWorkflow
	licenseService *services.LicenseService
	projectService *services.ProjectService
}

var state = &StateManager{}

// SetupOS points the configuration loader at the local configs directory
// and the "local" runtime overlay.
func SetupOS() (err error) {
	err = os.Setenv(cloud.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	err = os.Setenv(cloud.EnvConfigRuntime, "local")
	return err
}

// GetConfig lazily loads the layered TOML configuration.
func GetConfig() *cloud.Config {
	if state.config == nil {
		err := SetupOS()
		if err != nil {
			log.Fatalf("failed to setup os environment: %v\n", err)
		}
		// Create a default cloud config
		config := cloud.NewConfig()
		// Load it from the TOML files
		cloud.LoadConfig(&config)
		state.config = config
	}
	return state.config
}

// InitState initializes the service clients, ensures the database schema
// exists, and builds the edit workflow.
func InitState(ctx context.Context) {
	// Get the config file
	config := GetConfig()

	cloudClients, err := cloud.NewCloudServiceClients(ctx, config)
	if err != nil {
		panic(err)
	}
	state.cloud = cloudClients

	// The schema bootstrap is idempotent, so a fresh database file and an
	// existing one are handled the same way.
	if err := services.InitSchema(ctx, cloudClients.DatabaseClient); err != nil {
		panic(err)
	}

	state.licenseService = &services.LicenseService{DB: cloudClients.DatabaseClient}
	state.projectService = &services.ProjectService{DB: cloudClients.DatabaseClient}

	editWorkflow, err := workflow.NewVibeEditWorkflow(config, cloudClients)
	if err != nil {
		panic(err)
	}
	state.editWorkflow = editWorkflow
}
