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

// Package commands provides the concrete implementations of the Chain of
// Responsibility (COR) pattern's Command interface for the vibe edit
// pipeline. Each command performs one step of turning an editing prompt
// into a rendered output file, reading its inputs from and writing its
// results to the shared workflow context.
package commands

// Context keys shared across the edit pipeline. The primary artifact of
// each command travels through the chain's CtxIn/CtxOut piping; these keys
// carry the secondary state that later commands and the final outcome
// assembly need.
const (
	// CtxEditRequest holds the original *model.EditRequest for commands
	// that need the prompt or input path after the piped value has moved on.
	CtxEditRequest = "EDIT_REQUEST"
	// CtxLicensed holds the boolean result of the license check.
	CtxLicensed = "LICENSED"
	// CtxUsedRemote records whether the filter chain came from the
	// generative model or from the local fallback rules.
	CtxUsedRemote = "USED_REMOTE"
	// CtxWatermarked records whether the trial watermark was applied.
	CtxWatermarked = "WATERMARKED"
	// CtxFilterChain holds the normalized three-directive filter chain.
	CtxFilterChain = "FILTER_CHAIN"
	// CtxTranscodedPath holds the path of the transcoded output file.
	CtxTranscodedPath = "TRANSCODED_PATH"
	// CtxFinalPath holds the path of the final deliverable, which is the
	// overlay composite when one was rendered or the transcoded file
	// otherwise.
	CtxFinalPath = "FINAL_PATH"
)
