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

// This file defines the first command of the edit pipeline. It resolves the
// caller's license key against the license database and records the result
// for the normalization step, which uses it to decide whether the trial
// watermark must be burned into the output.
//
// Logic Flow:
//  1. It receives the `*model.EditRequest` from the context.
//  2. An empty license key is treated as unlicensed without touching the
//     database.
//  3. A non-empty key is looked up; a missing or invalidated key also
//     resolves to unlicensed.
//  4. Only a database failure is fatal to the workflow. An unlicensed caller
//     still gets an edit, just a watermarked one.
package commands

import (
	"fmt"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/model"
	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/services"
)

// LicenseCheck is a command that resolves the request's license key to a
// licensed/unlicensed decision.
type LicenseCheck struct {
	cor.BaseCommand
	licenseService *services.LicenseService // Data access for the licenses table.
}

// NewLicenseCheck is the constructor for the LicenseCheck command.
//
// Inputs:
//   - name: A string name for this command instance.
//   - licenseService: The service used to look up license keys.
//
// Outputs:
//   - *LicenseCheck: A pointer to the newly instantiated command.
func NewLicenseCheck(name string, licenseService *services.LicenseService) *LicenseCheck {
	return &LicenseCheck{
		BaseCommand:    *cor.NewBaseCommand(name),
		licenseService: licenseService,
	}
}

// Execute looks up the license key and stores the decision under
// CtxLicensed. The request is passed through as the command's output so the
// next command in the chain receives it unchanged.
func (t *LicenseCheck) Execute(context cor.Context) {
	request := context.Get(t.GetInputParam()).(*model.EditRequest)

	licensed, err := t.licenseService.IsLicensed(context.GetContext(), request.LicenseKey)
	if err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), fmt.Errorf("license validation failed: %w", err))
		return
	}

	context.Add(CtxLicensed, licensed)
	context.Add(t.GetOutputParam(), request)
	t.GetSuccessCounter().Add(context.GetContext(), 1)
}
