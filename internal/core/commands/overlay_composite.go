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

// This file defines the best-effort overlay step of the edit pipeline.
//
// Logic Flow:
//  1. It receives the transcoded output path from the context.
//  2. It decides whether an overlay is wanted, either from the request's
//     explicit flag or by scanning the prompt for overlay phrases.
//  3. When wanted, it invokes the external renderer. Every failure mode of
//     that invocation (missing script, probe failure, non-zero exit) is
//     absorbed inside the compositor, which always hands back a usable
//     path. This command therefore never fails the workflow.
package commands

import (
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/media"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
)

// OverlayComposite is a command that optionally layers a rendered overlay
// on top of the transcoded output.
type OverlayComposite struct {
	cor.BaseCommand
	compositor *media.Compositor // The external overlay renderer wrapper.
}

// NewOverlayComposite is the constructor for the OverlayComposite command.
func NewOverlayComposite(name string, compositor *media.Compositor) *OverlayComposite {
	return &OverlayComposite{
		BaseCommand: *cor.NewBaseCommand(name),
		compositor:  compositor,
	}
}

// Execute resolves the final deliverable path. The transcoded file stands
// in as the deliverable whenever compositing is skipped or fails.
func (t *OverlayComposite) Execute(context cor.Context) {
	transcodedPath := context.Get(t.GetInputParam()).(string)
	request := context.Get(CtxEditRequest).(*model.EditRequest)

	finalPath := transcodedPath
	if media.ShouldComposite(request.Prompt, request.Overlay) {
		finalPath = t.compositor.Composite(context.GetContext(), transcodedPath)
	}

	context.Add(CtxFinalPath, finalPath)
	context.Add(t.GetOutputParam(), finalPath)
	t.GetSuccessCounter().Add(context.GetContext(), 1)
}
