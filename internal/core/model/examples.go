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

// Package model defines the data structures for the application. This
// file, examples.go, provides factory functions for hardcoded example
// instances of the data models.
//
// The example objects are used for "few-shot" prompting of the generative
// model: embedding a concrete example of the desired JSON output inside
// the prompt guides the model to return data that is consistent, correctly
// formatted and parsable.
package model

// GetExampleFilterPayload creates a sample FilterPayload. It is marshaled
// into the filter-generation prompt so the model sees the exact JSON shape
// it must return: a single "filters" array of exactly three ffmpeg filter
// directives (speed, saturation, text overlay).
//
// Outputs:
//   - *FilterPayload: A pointer to a hardcoded FilterPayload object.
func GetExampleFilterPayload() *FilterPayload {
	return &FilterPayload{
		Filters: []string{
			"setpts=0.85*PTS",
			"hue=s=1.25",
			"drawtext=text='VIBE: ENERGETIC':x=16:y=16:fontsize=24:fontcolor=white",
		},
	}
}
