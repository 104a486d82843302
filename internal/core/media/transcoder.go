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

// Package media wraps the external transcoding engine: applying a filter
// chain to a video, probing media metadata and compositing the animated
// overlay. This file implements the transcoder.
//
// Logic Flow:
//  1. Join the three filter directives with commas into a single
//     filter-graph expression applied left to right.
//  2. Derive the output path by replacing the input file name with the
//     fixed conventional output name in the same directory, so re-running
//     the same request overwrites rather than accumulates files.
//  3. Invoke ffmpeg with a widely compatible video codec, a fast preset
//     and a standard audio codec, overwriting any pre-existing output.
//  4. Classify the outcome by exit status. On failure, surface a bounded
//     diagnostic: at most the first five stderr lines joined with spaces,
//     or a fixed generic message when the engine produced nothing.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
)

// Constants fixing the transcoder's conventions.
const (
	// DefaultOutputFileName is the fixed name of the transcoded file,
	// written next to the input.
	DefaultOutputFileName = "vibe_output.mp4"

	// DefaultVideoCodec, DefaultPreset and DefaultAudioCodec are the fixed
	// encode settings for every edit.
	DefaultVideoCodec = "libx264"
	DefaultPreset     = "veryfast"
	DefaultAudioCodec = "aac"

	// MaxDiagnosticLines bounds how much engine stderr is surfaced to the
	// caller on failure.
	MaxDiagnosticLines = 5

	// GenericTranscodeFailure is used when the engine fails without any
	// diagnostic output.
	GenericTranscodeFailure = "transcoding failed with no diagnostic output; " +
		"the engine may be missing or the input file invalid"

	// sniffLength is how many leading bytes of the input are read for the
	// media type check. 261 bytes covers every signature the filetype
	// matchers know about.
	sniffLength = 261
)

// Transcoder invokes the external transcoding engine through a
// ProcessRunner.
type Transcoder struct {
	Runner     runner.ProcessRunner
	FfmpegPath string // Path to the ffmpeg executable; "ffmpeg" resolves via PATH.
}

// NewTranscoder builds a Transcoder, defaulting the engine path to
// "ffmpeg" on the PATH.
func NewTranscoder(processRunner runner.ProcessRunner, ffmpegPath string) *Transcoder {
	if len(strings.TrimSpace(ffmpegPath)) == 0 {
		ffmpegPath = "ffmpeg"
	}
	return &Transcoder{Runner: processRunner, FfmpegPath: ffmpegPath}
}

// OutputPath derives the fixed output location for an input video: the
// conventional output name in the input's directory.
func OutputPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), DefaultOutputFileName)
}

// Transcode applies the filter chain to the input video and returns the
// output path. A non-zero engine exit is fatal for the request; no retry
// is attempted.
func (t *Transcoder) Transcode(ctx context.Context, inputPath string, chain []string) (string, error) {
	t.sniffInput(ctx, inputPath)

	outputPath := OutputPath(inputPath)
	filterGraph := strings.Join(chain, ",")

	result, err := t.Runner.Run(ctx, t.FfmpegPath,
		"-y",
		"-hide_banner",
		"-i", inputPath,
		"-vf", filterGraph,
		"-c:v", DefaultVideoCodec,
		"-preset", DefaultPreset,
		"-c:a", DefaultAudioCodec,
		outputPath,
	)
	if err != nil {
		return "", fmt.Errorf("transcoding failed: %s", boundDiagnostic(result.Stderr))
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("transcoding failed: %s", boundDiagnostic(result.Stderr))
	}

	slog.InfoContext(ctx, "transcode complete",
		"input", inputPath,
		"output", outputPath,
		"filter_graph", filterGraph)
	return outputPath, nil
}

// sniffInput reads the leading bytes of the input and warns when the
// header does not look like video. The engine remains the authority on
// validity, so this never fails the request.
func (t *Transcoder) sniffInput(ctx context.Context, inputPath string) {
	file, err := os.Open(inputPath)
	if err != nil {
		return
	}
	defer func() { _ = file.Close() }()

	head := make([]byte, sniffLength)
	n, err := file.Read(head)
	if err != nil || n == 0 {
		return
	}
	if !filetype.IsVideo(head[:n]) {
		slog.WarnContext(ctx, "input does not look like a video file, handing to the engine anyway",
			"input", inputPath)
	}
}

// boundDiagnostic reduces engine stderr to a bounded, human-readable
// detail string: at most MaxDiagnosticLines lines joined with spaces, or
// the fixed generic message when the engine produced nothing.
func boundDiagnostic(stderr string) string {
	trimmed := strings.TrimSpace(stderr)
	if len(trimmed) == 0 {
		return GenericTranscodeFailure
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > MaxDiagnosticLines {
		lines = lines[:MaxDiagnosticLines]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
