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
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/media"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
	"github.com/stretchr/testify/assert"
)

// fakeRunner is a scripted ProcessRunner that records each invocation.
type fakeRunner struct {
	results []runner.Result // Returned in order, one per Run call.
	errs    []error         // Launch errors, parallel to results.
	names   []string
	args    [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (runner.Result, error) {
	call := len(f.names)
	f.names = append(f.names, name)
	f.args = append(f.args, args)

	var result runner.Result
	if call < len(f.results) {
		result = f.results[call]
	}
	var err error
	if call < len(f.errs) {
		err = f.errs[call]
	}
	return result, err
}

func TestTranscodeSuccess(t *testing.T) {
	fake := &fakeRunner{results: []runner.Result{{ExitCode: 0}}}
	transcoder := media.NewTranscoder(fake, "")

	chain := []string{"setpts=0.85*PTS", "hue=s=1.25", "drawtext=text='TRIAL':x=16:y=16:fontsize=24:fontcolor=white"}
	out, err := transcoder.Transcode(context.Background(), "/videos/clip.mp4", chain)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/videos", media.DefaultOutputFileName), out)

	// One invocation of the engine, with the chain joined into a single
	// filter graph argument.
	assert.Equal(t, []string{"ffmpeg"}, fake.names)
	joined := strings.Join(fake.args[0], " ")
	assert.Contains(t, joined, "-vf "+strings.Join(chain, ","))
	assert.Contains(t, joined, "-c:v "+media.DefaultVideoCodec)
	assert.Contains(t, joined, "-preset "+media.DefaultPreset)
	assert.Contains(t, joined, "-c:a "+media.DefaultAudioCodec)
}

// TestTranscodeFailureDiagnostic verifies that engine stderr is bounded to
// the first few lines in the returned error.
func TestTranscodeFailureDiagnostic(t *testing.T) {
	stderr := "line one\nline two\nline three\nline four\nline five\nline six\nline seven"
	fake := &fakeRunner{results: []runner.Result{{ExitCode: 1, Stderr: stderr}}}
	transcoder := media.NewTranscoder(fake, "")

	_, err := transcoder.Transcode(context.Background(), "/videos/clip.mp4", []string{"hue=s=1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transcoding failed")
	assert.Contains(t, err.Error(), "line five")
	assert.NotContains(t, err.Error(), "line six")
}

// TestTranscodeFailureEmptyStderr verifies the fixed generic message when
// the engine dies silently.
func TestTranscodeFailureEmptyStderr(t *testing.T) {
	fake := &fakeRunner{results: []runner.Result{{ExitCode: 1}}}
	transcoder := media.NewTranscoder(fake, "")

	_, err := transcoder.Transcode(context.Background(), "/videos/clip.mp4", []string{"hue=s=1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), media.GenericTranscodeFailure)
}

// TestTranscodeLaunchFailure verifies a missing engine binary is reported
// the same way as a silent failure.
func TestTranscodeLaunchFailure(t *testing.T) {
	fake := &fakeRunner{
		results: []runner.Result{{ExitCode: -1}},
		errs:    []error{errors.New(`exec: "ffmpeg": executable file not found in $PATH`)},
	}
	transcoder := media.NewTranscoder(fake, "")

	_, err := transcoder.Transcode(context.Background(), "/videos/clip.mp4", []string{"hue=s=1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), media.GenericTranscodeFailure)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/some/dir", "vibe_output.mp4"), media.OutputPath("/some/dir/input.mov"))
	assert.Equal(t, "vibe_output.mp4", media.OutputPath("input.mp4"))
}
