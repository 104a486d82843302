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

package cor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jaycherian/gcp-go-vibe-edit/internal/core/cor"
	"github.com/stretchr/testify/assert"
)

// appendCommand passes its input through with a suffix appended, or fails
// when told to.
type appendCommand struct {
	cor.BaseCommand
	suffix string
	fail   bool
	ran    bool
}

func newAppendCommand(name, suffix string, fail bool) *appendCommand {
	return &appendCommand{BaseCommand: *cor.NewBaseCommand(name), suffix: suffix, fail: fail}
}

func (t *appendCommand) Execute(context cor.Context) {
	t.ran = true
	if t.fail {
		context.AddError(t.GetName(), errors.New("boom"))
		return
	}
	in := context.Get(t.GetInputParam()).(string)
	context.Add(t.GetOutputParam(), in+t.suffix)
}

// TestChainPipesOutputs verifies each command's output becomes the next
// command's input.
func TestChainPipesOutputs(t *testing.T) {
	chain := cor.NewBaseChain("test-chain")
	chain.AddCommand(newAppendCommand("first", "-a", false))
	chain.AddCommand(newAppendCommand("second", "-b", false))

	chCtx := cor.NewBaseContext()
	chCtx.SetContext(context.Background())
	chCtx.Add(cor.CtxIn, "seed")

	chain.Execute(chCtx)

	assert.False(t, chCtx.HasErrors())
	assert.Equal(t, "seed-a-b", chCtx.Get(cor.CtxIn))
}

// TestChainStopsOnError verifies the default behavior: a failed command
// halts the chain before later commands run.
func TestChainStopsOnError(t *testing.T) {
	failing := newAppendCommand("failing", "", true)
	skipped := newAppendCommand("skipped", "-x", false)

	chain := cor.NewBaseChain("test-chain")
	chain.AddCommand(failing)
	chain.AddCommand(skipped)

	chCtx := cor.NewBaseContext()
	chCtx.SetContext(context.Background())
	chCtx.Add(cor.CtxIn, "seed")

	chain.Execute(chCtx)

	assert.True(t, chCtx.HasErrors())
	assert.True(t, failing.ran)
	assert.False(t, skipped.ran)

	_, recorded := chCtx.GetErrors()["failing"]
	assert.True(t, recorded)
}

// TestChainSkipsNonExecutable verifies a command with no input present is
// skipped rather than run against a nil value.
func TestChainSkipsNonExecutable(t *testing.T) {
	command := newAppendCommand("needs-input", "-x", false)
	chain := cor.NewBaseChain("test-chain")
	chain.AddCommand(command)

	chCtx := cor.NewBaseContext()
	chCtx.SetContext(context.Background())
	// No CtxIn seeded.

	chain.Execute(chCtx)

	assert.False(t, command.ran)
	assert.False(t, chCtx.HasErrors())
}
