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
// filter chain applied to the source video. This file holds the
// deterministic fallback: an ordered table of keyword rules that classify
// the prompt into a coarse mood, each mood mapping to a fixed chain of a
// playback-speed directive, a saturation directive and a text overlay
// naming the mood.
package filters

import "strings"

// MoodRule pairs a set of trigger keywords with the mood's fixed chain.
// Rules are evaluated in table order and the first match wins, so the
// ordering is part of the contract.
type MoodRule struct {
	Mood     string   // Human-readable mood label (also burned into the overlay directive).
	Keywords []string // Lower-case substrings that select this mood.
	Chain    []string // The fixed three-directive chain for the mood.
}

// moodRules is the ordered classifier table. Energetic is checked before
// chill; anything that matches neither falls through to defaultMood.
var moodRules = []MoodRule{
	{
		Mood:     "ENERGETIC",
		Keywords: []string{"energetic", "fast"},
		Chain: []string{
			"setpts=0.85*PTS",
			"hue=s=1.25",
			"drawtext=text='VIBE: ENERGETIC':x=16:y=16:fontsize=24:fontcolor=white",
		},
	},
	{
		Mood:     "CHILL",
		Keywords: []string{"chill", "calm"},
		Chain: []string{
			"setpts=1.05*PTS",
			"hue=s=0.8",
			"drawtext=text='VIBE: CHILL':x=16:y=16:fontsize=24:fontcolor=white",
		},
	},
}

// defaultMood is the catch-all rule applied when no keyword matches.
var defaultMood = MoodRule{
	Mood: "ACTION",
	Chain: []string{
		"setpts=1.0*PTS",
		"hue=s=1.0",
		"drawtext=text='VIBE: ACTION':x=16:y=16:fontsize=24:fontcolor=white",
	},
}

// ClassifyMood lower-cases the prompt and returns the first rule whose
// keywords match, or the default action rule.
func ClassifyMood(prompt string) MoodRule {
	lowered := strings.ToLower(prompt)
	for _, rule := range moodRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule
			}
		}
	}
	return defaultMood
}

// FallbackChain returns a copy of the matched mood's fixed chain.
func FallbackChain(prompt string) []string {
	rule := ClassifyMood(prompt)
	out := make([]string, len(rule.Chain))
	copy(out, rule.Chain)
	return out
}
