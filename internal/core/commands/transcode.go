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

// This file defines the command that renders the edit. It hands the input
// file and the normalized filter chain to the transcoding engine and pipes
// the resulting output path down the chain. A transcode failure is fatal to
// the workflow: there is no output to watermark, composite, or persist.
package commands

import (
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/media"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
)

// Transcode is a command that runs the transcoding engine against the
// request's input file with the normalized filter chain applied.
type Transcode struct {
	cor.BaseCommand
	transcoder *media.Transcoder // The ffmpeg invocation wrapper.
}

// NewTranscode is the constructor for the Transcode command.
func NewTranscode(name string, transcoder *media.Transcoder) *Transcode {
	return &Transcode{
		BaseCommand: *cor.NewBaseCommand(name),
		transcoder:  transcoder,
	}
}

// Execute runs the transcode. The input file path comes from the original
// request stored under CtxEditRequest; the filter chain arrives through the
// chain's piping.
func (t *Transcode) Execute(context cor.Context) {
	chain := context.Get(t.GetInputParam()).([]string)
	request := context.Get(CtxEditRequest).(*model.EditRequest)

	outputPath, err := t.transcoder.Transcode(context.GetContext(), request.InputPath, chain)
	if err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), err)
		return
	}

	context.Add(CtxTranscodedPath, outputPath)
	context.Add(t.GetOutputParam(), outputPath)
	t.GetSuccessCounter().Add(context.GetContext(), 1)
}
