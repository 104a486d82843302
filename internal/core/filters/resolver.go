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

// Package filters resolves a vibe prompt into the three-directive ffmpeg
// filter chain applied to the source video. This file implements the
// resolver itself.
//
// Logic Flow:
//  1. Build the instruction for the generative model from a Go template,
//     embedding the user prompt verbatim along with a few-shot example of
//     the required `{"filters": [...]}` JSON shape.
//  2. Send the instruction through the TextGenerator (the rate-limited
//     Gemini wrapper in production, a stub in tests). The generator
//     performs the first parse stage: extracting the first candidate's
//     first part text from the response envelope.
//  3. Decode that text as the inner filter payload (second parse stage).
//  4. Any failure along the way (no credential, transport, malformed
//     envelope, malformed payload, missing filters array) fails the remote
//     path as a unit and the deterministic mood rules take over. Partial
//     remote output is never used, and the caller never sees an error.
package filters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
)

// DefaultPromptTemplate is the instruction sent to the inference model
// when the configuration does not override it. The model is told to return
// nothing but the inner JSON document.
const DefaultPromptTemplate = `Return ONLY JSON shaped exactly like {{.EXAMPLE_JSON}} ` +
	`with three ffmpeg filter directives (playback speed, color, text overlay) ` +
	`for this editing prompt: {{.PROMPT}}`

// ErrNoGenerator is the immediate remote-path failure used when no
// inference credential was configured at startup.
var ErrNoGenerator = errors.New("no inference generator configured")

// TextGenerator is the minimal surface the resolver needs from the
// generative model: one instruction in, the first candidate's text out.
// The production implementation wraps the Gemini client; tests substitute
// a stub so no network is involved.
type TextGenerator interface {
	GenerateText(ctx context.Context, instruction string) (string, error)
}

// Resolver turns a prompt into a candidate directive chain, preferring
// remote inference and falling back to the mood rule table.
type Resolver struct {
	generator TextGenerator
	template  *template.Template
}

// NewResolver builds a Resolver from a generator (nil when no credential
// is configured) and the prompt template text. An empty template falls
// back to DefaultPromptTemplate.
func NewResolver(generator TextGenerator, promptTemplate string) (*Resolver, error) {
	if len(promptTemplate) == 0 {
		promptTemplate = DefaultPromptTemplate
	}
	tmpl, err := template.New("filter-prompt").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse filter prompt template: %w", err)
	}
	return &Resolver{generator: generator, template: tmpl}, nil
}

// Resolve produces the candidate chain for a prompt and reports whether it
// came from remote inference. The candidate is not yet normalized: it may
// hold any number of directives. Resolve never returns an error; every
// remote failure is absorbed into the fallback.
func (r *Resolver) Resolve(ctx context.Context, prompt string) (candidate []string, usedRemote bool) {
	remote, err := r.remote(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "remote filter inference unavailable, using fallback rules",
			"error", err)
		return FallbackChain(prompt), false
	}
	return remote, true
}

// remote runs the full inference path: template, generate, decode.
func (r *Resolver) remote(ctx context.Context, prompt string) ([]string, error) {
	if r.generator == nil {
		return nil, ErrNoGenerator
	}

	instruction, err := r.buildInstruction(prompt)
	if err != nil {
		return nil, err
	}

	text, err := r.generator.GenerateText(ctx, instruction)
	if err != nil {
		return nil, err
	}

	return DecodeFilterPayload(text)
}

// buildInstruction executes the prompt template with the user prompt and
// the marshaled few-shot example payload.
func (r *Resolver) buildInstruction(prompt string) (string, error) {
	exampleJson, err := json.Marshal(model.GetExampleFilterPayload())
	if err != nil {
		return "", fmt.Errorf("failed to marshal example payload: %w", err)
	}

	params := map[string]interface{}{
		"PROMPT":       prompt,
		"EXAMPLE_JSON": string(exampleJson),
	}

	var buffer bytes.Buffer
	if err := r.template.Execute(&buffer, params); err != nil {
		return "", fmt.Errorf("failed to execute filter prompt template: %w", err)
	}
	return buffer.String(), nil
}
