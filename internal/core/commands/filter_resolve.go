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

// This file defines the command that turns the caller's free-form editing
// prompt into a candidate list of ffmpeg filter directives.
//
// Logic Flow:
//  1. It receives the `*model.EditRequest` from the context.
//  2. It asks the resolver for a filter chain. The resolver tries the
//     generative model first and silently falls back to the local mood
//     rules when the model is unavailable or returns something unusable,
//     so this command never fails the workflow.
//  3. It records whether the remote model produced the chain and passes the
//     candidate directives to the normalization step.
package commands

import (
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/filters"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
)

// FilterResolve is a command that resolves an editing prompt to a candidate
// filter chain using the generative model with a deterministic fallback.
type FilterResolve struct {
	cor.BaseCommand
	resolver *filters.Resolver // Prompt-to-filter-chain resolution logic.
}

// NewFilterResolve is the constructor for the FilterResolve command.
func NewFilterResolve(name string, resolver *filters.Resolver) *FilterResolve {
	return &FilterResolve{
		BaseCommand: *cor.NewBaseCommand(name),
		resolver:    resolver,
	}
}

// Execute resolves the prompt and outputs the candidate directive list.
func (t *FilterResolve) Execute(context cor.Context) {
	request := context.Get(t.GetInputParam()).(*model.EditRequest)

	candidate, usedRemote := t.resolver.Resolve(context.GetContext(), request.Prompt)

	context.Add(CtxUsedRemote, usedRemote)
	context.Add(t.GetOutputParam(), candidate)
	t.GetSuccessCounter().Add(context.GetContext(), 1)
}
