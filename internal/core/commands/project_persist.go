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

// This file defines the final command of the edit pipeline. It records the
// completed edit in the projects table. Because it runs last, a row only
// ever exists for an edit whose output file was actually produced.
package commands

import (
	"fmt"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/services"
)

// ProjectPersist is a command that saves the completed edit as a project
// record.
type ProjectPersist struct {
	cor.BaseCommand
	projectService *services.ProjectService // Data access for the projects table.
}

// NewProjectPersist is the constructor for the ProjectPersist command.
func NewProjectPersist(name string, projectService *services.ProjectService) *ProjectPersist {
	return &ProjectPersist{
		BaseCommand:    *cor.NewBaseCommand(name),
		projectService: projectService,
	}
}

// Execute writes the project row and passes the final path through as the
// chain's output.
func (t *ProjectPersist) Execute(context cor.Context) {
	finalPath := context.Get(t.GetInputParam()).(string)
	request := context.Get(CtxEditRequest).(*model.EditRequest)

	record := &model.ProjectRecord{
		InputPath:  request.InputPath,
		OutputPath: finalPath,
		Prompt:     request.Prompt,
	}

	if err := t.projectService.Insert(context.GetContext(), record); err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), fmt.Errorf("failed to persist project: %w", err))
		return
	}

	context.Add(t.GetOutputParam(), finalPath)
	t.GetSuccessCounter().Add(context.GetContext(), 1)
}
