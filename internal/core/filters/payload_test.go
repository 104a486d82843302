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

func TestDecodeFilterPayload(t *testing.T) {
	out, err := filters.DecodeFilterPayload(`{"filters": ["setpts=0.9*PTS", "hue=s=1.1"]}`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"setpts=0.9*PTS", "hue=s=1.1"}, out)
}

// TestDecodeFilterPayloadMixedTypes verifies that non-string entries are
// dropped rather than failing the whole payload.
func TestDecodeFilterPayloadMixedTypes(t *testing.T) {
	out, err := filters.DecodeFilterPayload(`{"filters": ["hue=s=1.2", 42, {"x": 1}, "setpts=1.0*PTS"]}`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"hue=s=1.2", "setpts=1.0*PTS"}, out)
}

func TestDecodeFilterPayloadMissingFilters(t *testing.T) {
	_, err := filters.DecodeFilterPayload(`{"other": true}`)
	assert.ErrorIs(t, err, filters.ErrMissingFilters)

	_, err = filters.DecodeFilterPayload(`{"filters": null}`)
	assert.ErrorIs(t, err, filters.ErrMissingFilters)
}

func TestDecodeFilterPayloadMalformed(t *testing.T) {
	_, err := filters.DecodeFilterPayload(`this is not JSON`)
	assert.Error(t, err)
}

// An empty array is a valid payload: the directives are present, there are
// just zero of them. Normalization pads it later.
func TestDecodeFilterPayloadEmptyArray(t *testing.T) {
	out, err := filters.DecodeFilterPayload(`{"filters": []}`)
	assert.NoError(t, err)
	assert.Empty(t, out)
}
