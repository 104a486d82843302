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

// Package cloud provides configuration and clients for external services.
// This file assembles the shared service clients: the relational store
// connection pool and the Gemini client with its configured agent models.
//
// The Gemini credential is read from the environment variable named in the
// configuration. When it is absent the client is simply not constructed:
// the filter resolver treats a missing generator as an immediate
// remote-path failure and uses its deterministic fallback, so an
// uncredentialed deployment stays fully functional.
package cloud

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"
	_ "modernc.org/sqlite"
)

// DefaultApiKeyEnvVar names the environment variable consulted for the
// Gemini API key when the configuration does not override it.
const DefaultApiKeyEnvVar = "GEMINI_API_KEY"

// DefaultDatabasePath is the store location used when the configuration
// does not name one.
const DefaultDatabasePath = "vibe.db"

// ServiceClients aggregates every external client the application shares
// across requests. The database pool supports concurrent independent
// reads and appends; no request-level locking is layered on top.
type ServiceClients struct {
	DatabaseClient *sql.DB                                 // Connection pool for the licenses/projects store.
	GenAIClient    *genai.Client                           // Gemini client; nil when no credential is configured.
	AgentModels    map[string]*QuotaAwareGenerativeAIModel // Configured generative models, keyed by logical name.
}

// Close releases every held client.
func (c *ServiceClients) Close() {
	_ = c.DatabaseClient.Close()
	// The genai client holds no connection that needs closing.
}

// NewCloudServiceClients initializes all required service clients from the
// configuration. It is the single entry point for setting up the
// application's external dependencies.
func NewCloudServiceClients(ctx context.Context, config *Config) (*ServiceClients, error) {
	databasePath := config.Database.Path
	if len(databasePath) == 0 {
		databasePath = DefaultDatabasePath
	}

	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", databasePath, err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach database %s: %w", databasePath, err)
	}

	out := &ServiceClients{
		DatabaseClient: db,
		AgentModels:    make(map[string]*QuotaAwareGenerativeAIModel),
	}

	apiKeyEnvVar := config.Application.ApiKeyEnvVar
	if len(apiKeyEnvVar) == 0 {
		apiKeyEnvVar = DefaultApiKeyEnvVar
	}
	apiKey := os.Getenv(apiKeyEnvVar)
	if len(apiKey) == 0 {
		slog.Warn("no inference credential configured, remote filter resolution disabled",
			"env_var", apiKeyEnvVar)
		return out, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		// A bad credential degrades to fallback-only resolution rather than
		// failing startup.
		slog.Warn("failed to create genai client, remote filter resolution disabled", "error", err)
		return out, nil
	}
	out.GenAIClient = gc

	// Build a rate-limited model wrapper per configured agent, applying its
	// generation settings and the default safety thresholds.
	for amKey, values := range config.AgentModels {
		generationConfig := &genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](values.Temperature),
			TopP:             genai.Ptr[float32](values.TopP),
			TopK:             genai.Ptr[float32](values.TopK),
			MaxOutputTokens:  values.MaxTokens,
			SafetySettings:   DefaultSafetySettings,
			ResponseMIMEType: values.OutputFormat,
		}
		if len(values.SystemInstructions) > 0 {
			generationConfig.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: values.SystemInstructions}},
			}
		}
		out.AgentModels[amKey] = NewQuotaAwareModel(generationConfig, values.Model, gc.Models, values.RateLimit)
	}

	return out, nil
}
