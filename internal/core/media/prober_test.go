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

package media_test

import (
	"context"
	"testing"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/media"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	duration, err := media.ParseDuration([]byte(`{"format": {"duration": "12.480000"}}`))
	assert.NoError(t, err)
	assert.InDelta(t, 12.48, duration, 0.0001)
}

func TestParseDurationBadPayload(t *testing.T) {
	_, err := media.ParseDuration([]byte(`not json`))
	assert.Error(t, err)

	// Valid JSON, but the duration field is absent.
	_, err = media.ParseDuration([]byte(`{"format": {}}`))
	assert.Error(t, err)
}

func TestProberDuration(t *testing.T) {
	fake := &fakeRunner{results: []runner.Result{{
		ExitCode: 0,
		Stdout:   `{"format": {"duration": "33.25", "format_name": "mov,mp4,m4a"}}`,
	}}}
	prober := media.NewProber(fake, "")

	duration, err := prober.Duration(context.Background(), "/videos/vibe_output.mp4")
	assert.NoError(t, err)
	assert.InDelta(t, 33.25, duration, 0.0001)
	assert.Equal(t, []string{"ffprobe"}, fake.names)
	assert.Contains(t, fake.args[0], "-show_format")
}

func TestProberDurationNonZeroExit(t *testing.T) {
	fake := &fakeRunner{results: []runner.Result{{ExitCode: 1}}}
	prober := media.NewProber(fake, "")

	_, err := prober.Duration(context.Background(), "/videos/missing.mp4")
	assert.Error(t, err)
}
