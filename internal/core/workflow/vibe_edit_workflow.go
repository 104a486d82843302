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

// Package workflow defines the high-level business logic orchestrations,
// combining various commands into coherent pipelines. This file implements
// the prompt-driven video edit pipeline: license check, filter resolution,
// chain normalization, transcode, optional overlay composite, and project
// persistence, in that fixed order.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/cloud"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/commands"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/filters"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/media"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/runner"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/services"
)

// FilterAgentName is the logical name of the generative model used for
// filter-directive inference, as configured under agent_models.
const FilterAgentName = "filter-generator"

// VibeEditWorkflow orchestrates a single prompt-driven edit from license
// validation through to the persisted project record. The struct holds the
// shared services and the command chain itself.
type VibeEditWorkflow struct {
	cor.BaseCommand
	resolver       *filters.Resolver
	transcoder     *media.Transcoder
	compositor     *media.Compositor
	licenseService *services.LicenseService
	projectService *services.ProjectService
	chain          cor.Chain // The underlying chain of commands to be executed.
	config         *cloud.Config
}

// Execute runs the edit workflow by invoking the underlying command chain.
//
// Inputs:
//   - context: The chain of responsibility context for this execution,
//     seeded with the edit request.
func (w *VibeEditWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// initializeChain constructs the sequence of commands that define the edit
// pipeline. This method is called by the constructor.
func (w *VibeEditWorkflow) initializeChain() {
	// Create a new chain instance to hold the sequence of commands.
	out := cor.NewBaseChain(w.GetName())

	// Step 1: Resolve the license key to a licensed/unlicensed decision.
	out.AddCommand(commands.NewLicenseCheck("license-check", w.licenseService))

	// Step 2: Turn the prompt into a candidate filter chain, via the
	// generative model or the local mood rules.
	out.AddCommand(commands.NewFilterResolve("filter-resolve", w.resolver))

	// Step 3: Normalize the candidate to exactly three directives and
	// stamp the trial watermark for unlicensed callers.
	out.AddCommand(commands.NewChainNormalize("chain-normalize"))

	// Step 4: Render the edit with the transcoding engine.
	out.AddCommand(commands.NewTranscode("transcode", w.transcoder))

	// Step 5: Best-effort overlay composite on top of the rendered file.
	out.AddCommand(commands.NewOverlayComposite("overlay-composite", w.compositor))

	// Step 6: Record the completed edit. Runs only after a successful
	// render, so failed edits never leave a project row behind.
	out.AddCommand(commands.NewProjectPersist("project-persist", w.projectService))

	// Assign the fully constructed chain to the workflow instance.
	w.chain = out
}

// Run executes the pipeline for a single edit request and assembles the
// outcome from the state the commands left in the context.
//
// Inputs:
//   - ctx: The standard Go context for cancellation and tracing.
//   - request: The validated edit request.
//
// Returns:
//   - *model.EditOutcome: The rendered output path plus the applied filter
//     chain and provenance flags.
//   - error: The joined errors of every failed command, or nil on success.
func (w *VibeEditWorkflow) Run(ctx context.Context, request *model.EditRequest) (*model.EditOutcome, error) {
	// A correlation id ties every log line of this execution together.
	editID := uuid.NewString()
	slog.InfoContext(ctx, "starting edit",
		"edit_id", editID,
		"input", request.InputPath,
		"prompt", request.Prompt)

	workflowContext := cor.NewBaseContext()
	workflowContext.SetContext(ctx)
	workflowContext.Add(commands.CtxEditRequest, request)
	workflowContext.Add(cor.CtxIn, request)

	w.Execute(workflowContext)

	if workflowContext.HasErrors() {
		errs := make([]error, 0)
		for name, err := range workflowContext.GetErrors() {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		joined := errors.Join(errs...)
		slog.ErrorContext(ctx, "edit failed", "edit_id", editID, "error", joined)
		return nil, joined
	}

	outcome := &model.EditOutcome{
		OutputPath:  workflowContext.Get(commands.CtxFinalPath).(string),
		Filters:     workflowContext.Get(commands.CtxFilterChain).([]string),
		UsedRemote:  workflowContext.Get(commands.CtxUsedRemote).(bool),
		Watermarked: workflowContext.Get(commands.CtxWatermarked).(bool),
	}
	slog.InfoContext(ctx, "edit complete",
		"edit_id", editID,
		"output", outcome.OutputPath,
		"watermarked", outcome.Watermarked,
		"used_remote", outcome.UsedRemote)
	return outcome, nil
}

// NewVibeEditWorkflow is the constructor for the VibeEditWorkflow. It wires
// the shared service clients into the command dependencies and builds the
// command chain.
//
// Inputs:
//   - config: The application's overall configuration.
//   - serviceClients: A struct containing the initialized database and
//     generative model clients.
//
// Returns:
//   - A pointer to a fully initialized workflow, or an error when the
//     configured prompt template cannot be parsed.
func NewVibeEditWorkflow(
	config *cloud.Config,
	serviceClients *cloud.ServiceClients) (*VibeEditWorkflow, error) {

	// The generator stays nil when no model is configured; the resolver
	// treats that as "fallback rules only".
	var generator filters.TextGenerator
	if agent, ok := serviceClients.AgentModels[FilterAgentName]; ok && agent != nil {
		generator = agent
	}

	resolver, err := filters.NewResolver(generator, config.PromptTemplates.FilterPrompt)
	if err != nil {
		return nil, err
	}

	// Every external process of the pipeline goes through one OS runner so
	// tests can substitute a scripted one.
	osRunner := runner.NewOSRunner()
	prober := media.NewProber(osRunner, config.Transcoder.FfprobePath)

	out := &VibeEditWorkflow{
		BaseCommand:    *cor.NewBaseCommand("vibe-edit-workflow"),
		resolver:       resolver,
		transcoder:     media.NewTranscoder(osRunner, config.Transcoder.FfmpegPath),
		compositor:     media.NewCompositor(osRunner, prober, config.Overlay.ScriptPath),
		licenseService: &services.LicenseService{DB: serviceClients.DatabaseClient},
		projectService: &services.ProjectService{DB: serviceClients.DatabaseClient},
		config:         config}
	// Build the command chain for the new pipeline instance.
	out.initializeChain()
	return out, nil
}
