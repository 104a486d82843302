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
// filter chain applied to the source video. This file enforces the
// fixed-length invariant on whatever the resolver produced and applies the
// trial watermark to unlicensed output.
package filters

import "github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"

const (
	// NeutralDirective is a no-op saturation filter used to pad short
	// candidate chains up to the fixed length.
	NeutralDirective = "hue=s=1"

	// TrialWatermarkDirective is the fixed drawtext overlay forced into the
	// final chain slot of unlicensed output.
	TrialWatermarkDirective = "drawtext=text='TRIAL':x=16:y=16:fontsize=24:fontcolor=white"
)

// Normalize pads or truncates the candidate chain to exactly
// model.ChainLength directives and, for unlicensed requests, overwrites
// the final slot with the trial watermark. The returned bool reports
// whether the watermark was applied; it is true iff licensed is false.
//
// The watermark always lands on slot index 2, replacing whatever mood
// label or remote directive was there, even when the slot itself was
// produced by padding.
func Normalize(candidate []string, licensed bool) ([]string, bool) {
	chain := make([]string, 0, model.ChainLength)
	chain = append(chain, candidate...)

	for len(chain) < model.ChainLength {
		chain = append(chain, NeutralDirective)
	}
	chain = chain[:model.ChainLength]

	watermarked := !licensed
	if watermarked {
		chain[model.ChainLength-1] = TrialWatermarkDirective
	}
	return chain, watermarked
}
