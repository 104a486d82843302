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

// Package media wraps the external transcoding engine. This file probes a
// media file's duration through the engine's companion metadata tool
// (ffprobe), parsing its JSON output.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
)

// Prober extracts media metadata through ffprobe.
type Prober struct {
	Runner      runner.ProcessRunner
	FfprobePath string // Path to the ffprobe executable; "ffprobe" resolves via PATH.
}

// NewProber builds a Prober, defaulting the tool path to "ffprobe" on the
// PATH.
func NewProber(processRunner runner.ProcessRunner, ffprobePath string) *Prober {
	if len(strings.TrimSpace(ffprobePath)) == 0 {
		ffprobePath = "ffprobe"
	}
	return &Prober{Runner: processRunner, FfprobePath: ffprobePath}
}

// Duration returns the duration of the media file in seconds.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	result, err := p.Runner.Run(ctx, p.FfprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	if result.ExitCode != 0 {
		return 0, fmt.Errorf("ffprobe %q exited with status %d", path, result.ExitCode)
	}
	return ParseDuration([]byte(result.Stdout))
}

// ParseDuration converts raw ffprobe JSON output into a duration in
// seconds. Exported for testing without a real ffprobe binary.
func ParseDuration(data []byte) (float64, error) {
	var raw struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	duration, err := strconv.ParseFloat(raw.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", raw.Format.Duration, err)
	}
	return duration, nil
}
