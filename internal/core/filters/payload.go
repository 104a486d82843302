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

// Package filters resolves a vibe prompt into the three-directive ffmpeg
// filter chain applied to the source video. This file implements the
// second of the resolver's two parse stages: the inference envelope yields
// a free-text field, and that text must itself parse as a JSON document
// holding a "filters" array. Keeping the stage separate from the envelope
// extraction keeps both fallback trigger points testable in isolation.
package filters

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingFilters is returned when the inner JSON parses but carries no
// "filters" array.
var ErrMissingFilters = errors.New("inference payload missing filters array")

// DecodeFilterPayload parses the text returned by the inference model into
// a list of directive strings. Non-string entries in the array are dropped
// silently; a missing array or malformed JSON is an error that fails the
// whole remote path.
func DecodeFilterPayload(text string) ([]string, error) {
	// Decode into a loose shape first so a partially well-formed payload
	// (strings mixed with numbers or objects) is still usable.
	var payload struct {
		Filters []interface{} `json:"filters"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse inference payload: %w", err)
	}
	if payload.Filters == nil {
		return nil, ErrMissingFilters
	}

	out := make([]string, 0, len(payload.Filters))
	for _, entry := range payload.Filters {
		if directive, ok := entry.(string); ok {
			out = append(out, directive)
		}
	}
	return out, nil
}
