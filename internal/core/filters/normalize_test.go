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
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
	"github.com/stretchr/testify/assert"
)

// TestNormalizeLength verifies every candidate length ends up at exactly
// the fixed chain length.
func TestNormalizeLength(t *testing.T) {
	cases := [][]string{
		{},
		{"setpts=0.9*PTS"},
		{"setpts=0.9*PTS", "hue=s=1.1"},
		{"setpts=0.9*PTS", "hue=s=1.1", "eq=brightness=0.05"},
		{"setpts=0.9*PTS", "hue=s=1.1", "eq=brightness=0.05", "crop=16:9", "fade=in:0:30"},
	}
	for _, candidate := range cases {
		chain, _ := filters.Normalize(candidate, true)
		assert.Len(t, chain, model.ChainLength)
	}
}

func TestNormalizePadding(t *testing.T) {
	chain, watermarked := filters.Normalize([]string{"setpts=0.9*PTS"}, true)
	assert.False(t, watermarked)
	assert.Equal(t, []string{
		"setpts=0.9*PTS",
		filters.NeutralDirective,
		filters.NeutralDirective,
	}, chain)
}

func TestNormalizeTruncation(t *testing.T) {
	chain, _ := filters.Normalize([]string{"a=1", "b=2", "c=3", "d=4"}, true)
	assert.Equal(t, []string{"a=1", "b=2", "c=3"}, chain)
}

// TestNormalizeWatermark verifies the trial watermark lands on the final
// slot for unlicensed requests, regardless of what the candidate put there.
func TestNormalizeWatermark(t *testing.T) {
	chain, watermarked := filters.Normalize([]string{"a=1", "b=2", "c=3"}, false)
	assert.True(t, watermarked)
	assert.Equal(t, filters.TrialWatermarkDirective, chain[model.ChainLength-1])
	assert.Equal(t, []string{"a=1", "b=2"}, chain[:2])

	// Even a padded slot is overwritten.
	chain, watermarked = filters.Normalize(nil, false)
	assert.True(t, watermarked)
	assert.Equal(t, []string{
		filters.NeutralDirective,
		filters.NeutralDirective,
		filters.TrialWatermarkDirective,
	}, chain)
}

func TestNormalizeLicensedUntouched(t *testing.T) {
	candidate := []string{"a=1", "b=2", "c=3"}
	chain, watermarked := filters.Normalize(candidate, true)
	assert.False(t, watermarked)
	assert.Equal(t, candidate, chain)
}
