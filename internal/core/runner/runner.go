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

// Package runner abstracts external process invocation (the transcoding
// engine, the metadata prober and the overlay renderer) behind a small
// interface so the media pipeline can be exercised in tests without
// spawning real binaries. Each Run call is an independent OS subprocess;
// a hung process blocks only the owning edit request.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result holds the outcome of a single subprocess invocation.
type Result struct {
	ExitCode int    // The process exit status; -1 when the process never started.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error, used for failure diagnostics.
}

// ProcessRunner runs an external executable to completion, capturing its
// output streams.
type ProcessRunner interface {
	// Run executes name with args under ctx. A non-zero exit is reported
	// through Result.ExitCode with a nil error; the error return is reserved
	// for launch failures (missing executable, permissions).
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// OSRunner is the production ProcessRunner backed by os/exec.
type OSRunner struct{}

// NewOSRunner returns a ProcessRunner that spawns real subprocesses.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run implements ProcessRunner.
func (r *OSRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	out := Result{
		ExitCode: 0,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and failed; that is an outcome, not a launch error.
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		out.ExitCode = -1
		return out, err
	}
	return out, nil
}
