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

// Package media wraps the external transcoding engine. This file invokes
// the overlay rendering engine: an opaque external script that takes the
// transcoded video, a target output path and a duration and produces a
// composited video.
//
// Overlay compositing is a best-effort enhancement. Every possible failure
// (missing entry point, probe failure, launch error, non-zero exit) is
// absorbed: the pre-overlay output survives and the edit still succeeds.
package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
)

// Constants fixing the compositor's conventions.
const (
	// DefaultOverlayScriptPath is the conventional location of the overlay
	// renderer, relative to the process working directory.
	DefaultOverlayScriptPath = "scripts/render_overlay.py"

	// DefaultOverlayOutputFileName is the fixed composited output name,
	// written next to the transcoded file. Stable across runs so re-running
	// overwrites rather than accumulates.
	DefaultOverlayOutputFileName = "vibe_output_overlay.mp4"

	// FallbackDurationSeconds is used when the duration probe fails.
	FallbackDurationSeconds = 30.0
)

// overlayKeywords is the ordered list of prompt substrings that trigger
// compositing when the caller gave no explicit override. The bare
// "overlay" keyword subsumes the longer phrases; the list stays explicit
// so each trigger is visible and individually testable.
var overlayKeywords = []string{
	"add animation",
	"animation in between",
	"transparent overlay",
	"overlay",
}

// Compositor conditionally re-renders a transcoded video through the
// external overlay engine.
type Compositor struct {
	Runner     runner.ProcessRunner
	Prober     *Prober
	ScriptPath string // Overlay renderer entry point; empty uses the conventional default.
}

// NewCompositor builds a Compositor, defaulting the entry point to the
// conventional relative path.
func NewCompositor(processRunner runner.ProcessRunner, prober *Prober, scriptPath string) *Compositor {
	if len(strings.TrimSpace(scriptPath)) == 0 {
		scriptPath = DefaultOverlayScriptPath
	}
	return &Compositor{Runner: processRunner, Prober: prober, ScriptPath: scriptPath}
}

// ShouldComposite reports whether the overlay pass should run. An explicit
// override is honored exactly; otherwise the prompt keyword heuristics
// decide.
func ShouldComposite(prompt string, override *bool) bool {
	if override != nil {
		return *override
	}
	lowered := strings.ToLower(prompt)
	for _, keyword := range overlayKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Composite runs the overlay engine against the transcoded output and
// returns the final path: the composited file when everything succeeded,
// the untouched input path otherwise. It never returns an error.
func (c *Compositor) Composite(ctx context.Context, transcodedPath string) string {
	if _, err := os.Stat(c.ScriptPath); errors.Is(err, os.ErrNotExist) {
		slog.InfoContext(ctx, "overlay renderer not present, skipping compositing",
			"script", c.ScriptPath)
		return transcodedPath
	}

	duration, err := c.Prober.Duration(ctx, transcodedPath)
	if err != nil {
		slog.WarnContext(ctx, "duration probe failed, using fallback duration",
			"path", transcodedPath,
			"fallback_seconds", FallbackDurationSeconds,
			"error", err)
		duration = FallbackDurationSeconds
	}

	overlayPath := filepath.Join(filepath.Dir(transcodedPath), DefaultOverlayOutputFileName)

	result, err := c.Runner.Run(ctx, c.ScriptPath,
		transcodedPath,
		overlayPath,
		fmt.Sprintf("%.2f", duration),
	)
	if err != nil {
		slog.WarnContext(ctx, "overlay renderer failed to launch, keeping pre-overlay output",
			"script", c.ScriptPath,
			"error", err)
		return transcodedPath
	}
	if result.ExitCode != 0 {
		slog.WarnContext(ctx, "overlay renderer exited non-zero, keeping pre-overlay output",
			"script", c.ScriptPath,
			"exit_code", result.ExitCode)
		return transcodedPath
	}

	slog.InfoContext(ctx, "overlay compositing complete", "output", overlayPath)
	return overlayPath
}
