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

// Package model defines the data structures for the application. This file
// holds the transient structures: objects created at the invocation
// boundary of an edit and consumed entirely within one workflow run. They
// are never written to the database directly; the persistent counterparts
// live in persistent.go.
package model

// ChainLength is the fixed number of filter directives applied per edit.
// Every candidate chain is padded or truncated to this length before it is
// handed to the transcoder.
const ChainLength = 3

// EditRequest carries the caller's input for a single vibe edit. It is
// immutable for the lifetime of the workflow run.
type EditRequest struct {
	InputPath  string `json:"input_path" binding:"required"` // Path to the source video on local disk.
	Prompt     string `json:"prompt" binding:"required"`     // The natural-language editing "vibe" prompt.
	LicenseKey string `json:"license_key,omitempty"`         // Optional license key; empty means unlicensed.
	Overlay    *bool  `json:"overlay,omitempty"`             // Optional explicit overlay override. Nil defers to prompt heuristics.
}

// EditOutcome is the result of a completed edit. Filters holds the three
// directives actually sent to the transcoder, watermark included, in
// application order.
type EditOutcome struct {
	OutputPath  string   `json:"output_path"`  // Final output path, overlay-composited when that step ran and succeeded.
	Filters     []string `json:"filters"`      // The applied filter chain, always length ChainLength.
	UsedRemote  bool     `json:"used_remote"`  // True when the chain came from remote inference rather than the fallback rules.
	Watermarked bool     `json:"watermarked"`  // True when the trial watermark occupies the final chain slot.
}

// FilterPayload is the inner JSON document the inference model is asked to
// return. It is the contract for the second parse stage of the resolver:
// the envelope yields free text, and that text must decode into this shape.
type FilterPayload struct {
	Filters []string `json:"filters"`
}
