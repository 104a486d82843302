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
// This file contains general-purpose helpers: the hierarchical TOML
// configuration loader and the response-envelope extraction used by the
// filter resolver's first parse stage.
//
// Functions:
//   - fileExists: Checks if a file exists.
//   - LoadConfig: Hierarchical configuration loader. Reads a base file and
//     overlays an environment-specific file (e.g. .env.local.toml,
//     .env.test.toml), selected by environment variables.
//   - ExtractCandidateText: Pulls the first candidate's first content part
//     text out of a GenerateContent response envelope.
package cloud

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"google.golang.org/genai"
)

// Cloud constants for configuration loading.
const (
	ConfigFileBaseName  = ".env"              // Base name for configuration files (e.g. ".env.toml").
	ConfigFileExtension = ".toml"             // File extension for configuration files.
	ConfigSeparator     = "."                 // Separator in config file names (e.g. ".env.local.toml").
	EnvConfigFilePrefix = "GCP_CONFIG_PREFIX" // Environment variable naming the config directory.
	EnvConfigRuntime    = "GCP_RUNTIME"       // Environment variable naming the runtime (e.g. "local", "test").
)

// Envelope extraction failures. Each one fails the remote resolver path as
// a unit and routes the request to the deterministic fallback.
var (
	ErrEmptyResponse  = errors.New("inference response has no candidates")
	ErrEmptyCandidate = errors.New("inference candidate has no content parts")
	ErrEmptyText      = errors.New("inference content part has no text")
)

// fileExists checks whether a file or directory exists at the given path.
func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig provides hierarchical configuration loading: a base file is
// decoded first and an environment-specific file overwrites its values.
// The directory prefix and runtime name come from environment variables;
// the runtime defaults to "test".
//
// Inputs:
//   - baseConfig: A pointer to the target configuration struct populated
//     from the TOML files.
func LoadConfig(baseConfig interface{}) {
	configurationFilePrefix := os.Getenv(EnvConfigFilePrefix)
	if len(configurationFilePrefix) > 0 && !strings.HasSuffix(configurationFilePrefix, string(os.PathSeparator)) {
		configurationFilePrefix = configurationFilePrefix + string(os.PathSeparator)
	}

	runtimeEnvironment := os.Getenv(EnvConfigRuntime)
	if runtimeEnvironment == "" {
		runtimeEnvironment = "test"
	}

	baseConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigFileExtension
	envConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigSeparator + runtimeEnvironment + ConfigFileExtension

	if fileExists(baseConfigFileName) {
		_, err := toml.DecodeFile(baseConfigFileName, baseConfig)
		if err != nil {
			log.Fatalf("failed to decode base configuration file %s with error: %s", baseConfigFileName, err)
		}
	}

	// Values in the environment file overwrite the base config.
	if fileExists(envConfigFileName) {
		_, err := toml.DecodeFile(envConfigFileName, baseConfig)
		if err != nil {
			log.Fatalf("failed to decode environment configuration file: %s with error: %s", envConfigFileName, err)
		}
	}
}

// ExtractCandidateText implements the first parse stage of the filter
// resolver: it navigates the response envelope to the first candidate's
// first content part and returns its text, with Markdown code fences
// stripped. Each missing level is a distinct error so tests can exercise
// every fallback trigger point.
func ExtractCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyCandidate
	}

	text := candidate.Content.Parts[0].Text
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return "", ErrEmptyText
	}
	return text, nil
}
