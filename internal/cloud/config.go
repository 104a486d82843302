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

// Package cloud defines the data structures for application configuration,
// loaded from TOML files, along with the clients for external services.
// This file centralizes the configuration structs so the application's
// tunable parameters are visible in one place.
//
// Structs:
//   - Database: Location of the relational store.
//   - Transcoder: Paths to the transcoding engine and its prober.
//   - Overlay: Entry point of the external overlay renderer.
//   - PromptTemplates: Text templates for prompts sent to GenAI models.
//   - GeminiLLMModel: Configuration for a Gemini generative model.
//   - Config: The top-level aggregate.
package cloud

import "google.golang.org/genai"

// DefaultSafetySettings defines the default content safety thresholds for
// GenAI models. The thresholds are non-restrictive: prompts are short
// editing instructions from a trusted surrounding application, not open
// user content.
var DefaultSafetySettings = []*genai.SafetySetting{
	{
		Category:  genai.HarmCategoryDangerousContent,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategoryHarassment,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategorySexuallyExplicit,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
}

// Database locates the relational store holding the licenses table and the
// project log.
type Database struct {
	Path string `toml:"path"` // Connection path for the sqlite store (e.g. "vibe.db").
}

// Transcoder holds the paths to the external transcoding engine and its
// companion metadata prober. Empty values resolve via PATH.
type Transcoder struct {
	FfmpegPath  string `toml:"ffmpeg_path"`
	FfprobePath string `toml:"ffprobe_path"`
}

// Overlay configures the external overlay rendering engine.
type Overlay struct {
	ScriptPath string `toml:"script_path"` // Entry point relative to the working directory.
}

// PromptTemplates holds the templates for prompts sent to the generative
// models.
type PromptTemplates struct {
	FilterPrompt string `toml:"filter"` // The template for filter-directive generation.
}

// GeminiLLMModel represents the configuration for a Gemini large language
// model (LLM).
type GeminiLLMModel struct {
	Model              string  `toml:"model"`               // The model name (e.g. "gemini-2.5-flash").
	SystemInstructions string  `toml:"system_instructions"` // The system instructions for the LLM.
	Temperature        float32 `toml:"temperature"`         // The temperature parameter for the LLM.
	TopP               float32 `toml:"top_p"`               // The top_p parameter for the LLM.
	TopK               float32 `toml:"top_k"`               // The top_k parameter for the LLM.
	MaxTokens          int32   `toml:"max_tokens"`          // The maximum number of output tokens.
	OutputFormat       string  `toml:"output_format"`       // The desired response MIME type (e.g. "application/json").
	RateLimit          int     `toml:"rate_limit"`          // The rate limit in requests per second.
}

// Config represents the overall configuration for the application, loaded
// from TOML files. It acts as the root container for all other
// configuration structs.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name            string `toml:"name"`              // The name of the application, used as the telemetry service name.
		GoogleProjectId string `toml:"google_project_id"` // The Google Cloud project ID for telemetry export.
		ApiKeyEnvVar    string `toml:"api_key_env_var"`   // Name of the environment variable holding the Gemini API key.
	} `toml:"application"`
	Database        Database                  `toml:"database"`         // Relational store configuration.
	Transcoder      Transcoder                `toml:"transcoder"`       // Transcoding engine configuration.
	Overlay         Overlay                   `toml:"overlay"`          // Overlay renderer configuration.
	PromptTemplates PromptTemplates           `toml:"prompt_templates"` // Prompt templates configuration.
	AgentModels     map[string]GeminiLLMModel `toml:"agent_models"`     // Gemini models, keyed by a logical name (e.g. "filter-generator").
}

// NewConfig creates a new, initialized Config instance. The map fields
// must be initialized before the TOML loader populates them.
func NewConfig() *Config {
	return &Config{
		AgentModels: make(map[string]GeminiLLMModel),
	}
}
