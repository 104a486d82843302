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
	"context"
	"errors"
	"testing"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/filters"
	"github.com/stretchr/testify/assert"
)

// stubGenerator is a scripted TextGenerator that records the instruction
// it was handed.
type stubGenerator struct {
	response    string
	err         error
	instruction string
}

func (s *stubGenerator) GenerateText(_ context.Context, instruction string) (string, error) {
	s.instruction = instruction
	return s.response, s.err
}

// TestResolveNoGenerator verifies the resolver works in fallback-only mode
// when no model credential is configured.
func TestResolveNoGenerator(t *testing.T) {
	resolver, err := filters.NewResolver(nil, "")
	assert.NoError(t, err)

	candidate, usedRemote := resolver.Resolve(context.Background(), "make it energetic")
	assert.False(t, usedRemote)
	assert.Equal(t, "setpts=0.85*PTS", candidate[0])
}

func TestResolveRemoteSuccess(t *testing.T) {
	generator := &stubGenerator{response: `{"filters": ["setpts=0.7*PTS", "hue=s=1.4"]}`}
	resolver, err := filters.NewResolver(generator, "")
	assert.NoError(t, err)

	candidate, usedRemote := resolver.Resolve(context.Background(), "hyper speed")
	assert.True(t, usedRemote)
	assert.Equal(t, []string{"setpts=0.7*PTS", "hue=s=1.4"}, candidate)

	// The instruction sent to the model carries both the user prompt and
	// the few-shot example payload.
	assert.Contains(t, generator.instruction, "hyper speed")
	assert.Contains(t, generator.instruction, `"filters"`)
}

// TestResolveRemoteFailure verifies every remote failure mode drops to the
// local rules without surfacing an error.
func TestResolveRemoteFailure(t *testing.T) {
	cases := []struct {
		name      string
		generator *stubGenerator
	}{
		{"generate error", &stubGenerator{err: errors.New("quota exceeded")}},
		{"malformed payload", &stubGenerator{response: "sorry, I cannot do that"}},
		{"missing filters array", &stubGenerator{response: `{"mood": "ENERGETIC"}`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver, err := filters.NewResolver(tc.generator, "")
			assert.NoError(t, err)

			candidate, usedRemote := resolver.Resolve(context.Background(), "keep it chill")
			assert.False(t, usedRemote)
			assert.Equal(t, "setpts=1.05*PTS", candidate[0])
		})
	}
}

func TestNewResolverBadTemplate(t *testing.T) {
	_, err := filters.NewResolver(nil, "{{.Broken")
	assert.Error(t, err)
}
