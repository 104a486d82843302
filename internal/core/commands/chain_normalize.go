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

// This file defines the command that normalizes a candidate directive list
// into the fixed-length filter chain the transcoder expects. Chains are
// padded with a neutral directive or truncated to exactly three entries,
// and unlicensed requests get the trial watermark stamped into the final
// slot.
package commands

import (
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/filters"
)

// ChainNormalize is a command that enforces the fixed chain length and the
// trial watermark policy on a candidate filter chain.
type ChainNormalize struct {
	cor.BaseCommand
}

// NewChainNormalize is the constructor for the ChainNormalize command.
func NewChainNormalize(name string) *ChainNormalize {
	return &ChainNormalize{BaseCommand: *cor.NewBaseCommand(name)}
}

// Execute normalizes the candidate chain read from the context. The
// licensing decision recorded by the license check drives the watermark.
func (t *ChainNormalize) Execute(context cor.Context) {
	candidate := context.Get(t.GetInputParam()).([]string)
	licensed, _ := context.Get(CtxLicensed).(bool)

	chain, watermarked := filters.Normalize(candidate, licensed)

	context.Add(CtxWatermarked, watermarked)
	context.Add(CtxFilterChain, chain)
	context.Add(t.GetOutputParam(), chain)
	t.GetSuccessCounter().Add(context.GetContext(), 1)
}
