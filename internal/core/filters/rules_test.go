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

package filters_test

import (
	"testing"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/filters"
	"github.com/stretchr/testify/assert"
)

// TestClassifyMood verifies the keyword table, including the rule ordering
// when a prompt matches more than one mood.
func TestClassifyMood(t *testing.T) {
	assert.Equal(t, "ENERGETIC", filters.ClassifyMood("make it really energetic").Mood)
	assert.Equal(t, "ENERGETIC", filters.ClassifyMood("FAST cuts please").Mood)
	assert.Equal(t, "CHILL", filters.ClassifyMood("keep it chill").Mood)
	assert.Equal(t, "CHILL", filters.ClassifyMood("something calm and quiet").Mood)
	assert.Equal(t, "ACTION", filters.ClassifyMood("just clean it up").Mood)

	// Energetic is evaluated before chill, so a prompt matching both
	// resolves to energetic.
	assert.Equal(t, "ENERGETIC", filters.ClassifyMood("so energetic and calm at once").Mood)
}

// TestFallbackChain verifies the fixed chains and that callers receive a
// copy they can mutate safely.
func TestFallbackChain(t *testing.T) {
	chain := filters.FallbackChain("make it energetic")
	assert.Equal(t, []string{
		"setpts=0.85*PTS",
		"hue=s=1.25",
		"drawtext=text='VIBE: ENERGETIC':x=16:y=16:fontsize=24:fontcolor=white",
	}, chain)

	// Mutating the returned slice must not leak into the rule table.
	chain[0] = "mutated"
	assert.Equal(t, "setpts=0.85*PTS", filters.FallbackChain("make it energetic")[0])

	assert.Equal(t, []string{
		"setpts=1.05*PTS",
		"hue=s=0.8",
		"drawtext=text='VIBE: CHILL':x=16:y=16:fontsize=24:fontcolor=white",
	}, filters.FallbackChain("calm it down"))

	assert.Equal(t, []string{
		"setpts=1.0*PTS",
		"hue=s=1.0",
		"drawtext=text='VIBE: ACTION':x=16:y=16:fontsize=24:fontcolor=white",
	}, filters.FallbackChain("no keywords here"))
}
