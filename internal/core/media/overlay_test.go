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
	"os"
	"path/filepath"
	"testing"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/media"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
	"github.com/stretchr/testify/assert"
)

func TestShouldComposite(t *testing.T) {
	assert.True(t, media.ShouldComposite("please add animation to this clip", nil))
	assert.True(t, media.ShouldComposite("put an animation in between the scenes", nil))
	assert.True(t, media.ShouldComposite("use a TRANSPARENT OVERLAY here", nil))
	assert.True(t, media.ShouldComposite("overlay the logo", nil))
	assert.False(t, media.ShouldComposite("make it chill", nil))

	// An explicit flag wins over the prompt heuristics in both directions.
	on := true
	off := false
	assert.True(t, media.ShouldComposite("make it chill", &on))
	assert.False(t, media.ShouldComposite("please add animation", &off))
}

// writeFakeScript drops an empty file so the compositor's existence check
// passes.
func writeFakeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render_overlay.py")
	if err := os.WriteFile(path, []byte("#!/usr/bin/env python3\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake script: %v", err)
	}
	return path
}

func TestCompositeSuccess(t *testing.T) {
	script := writeFakeScript(t)
	fake := &fakeRunner{results: []runner.Result{
		{ExitCode: 0, Stdout: `{"format": {"duration": "12.5"}}`}, // probe
		{ExitCode: 0}, // renderer
	}}
	compositor := media.NewCompositor(fake, media.NewProber(fake, ""), script)

	out := compositor.Composite(context.Background(), "/videos/vibe_output.mp4")
	assert.Equal(t, filepath.Join("/videos", media.DefaultOverlayOutputFileName), out)

	// The renderer is invoked positionally: input, output, duration.
	assert.Equal(t, script, fake.names[1])
	assert.Equal(t, []string{
		"/videos/vibe_output.mp4",
		filepath.Join("/videos", media.DefaultOverlayOutputFileName),
		"12.50",
	}, fake.args[1])
}

// TestCompositeMissingScript verifies the renderer is skipped entirely
// when its entry point does not exist.
func TestCompositeMissingScript(t *testing.T) {
	fake := &fakeRunner{}
	compositor := media.NewCompositor(fake, media.NewProber(fake, ""), "/nonexistent/render_overlay.py")

	out := compositor.Composite(context.Background(), "/videos/vibe_output.mp4")
	assert.Equal(t, "/videos/vibe_output.mp4", out)
	assert.Empty(t, fake.names)
}

// TestCompositeProbeFallback verifies a failed duration probe falls back
// to the default duration instead of aborting the overlay.
func TestCompositeProbeFallback(t *testing.T) {
	script := writeFakeScript(t)
	fake := &fakeRunner{results: []runner.Result{
		{ExitCode: 1}, // probe fails
		{ExitCode: 0}, // renderer still runs
	}}
	compositor := media.NewCompositor(fake, media.NewProber(fake, ""), script)

	out := compositor.Composite(context.Background(), "/videos/vibe_output.mp4")
	assert.Equal(t, filepath.Join("/videos", media.DefaultOverlayOutputFileName), out)
	assert.Equal(t, "30.00", fake.args[1][2])
}

// TestCompositeRendererFailure verifies a failing renderer keeps the
// pre-overlay output.
func TestCompositeRendererFailure(t *testing.T) {
	script := writeFakeScript(t)
	fake := &fakeRunner{results: []runner.Result{
		{ExitCode: 0, Stdout: `{"format": {"duration": "10.0"}}`},
		{ExitCode: 3},
	}}
	compositor := media.NewCompositor(fake, media.NewProber(fake, ""), script)

	out := compositor.Composite(context.Background(), "/videos/vibe_output.mp4")
	assert.Equal(t, "/videos/vibe_output.mp4", out)
}
