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

// Package cloud provides configuration and clients for external services.
// This file wraps the Generative AI client in a quota-aware decorator:
// Gemini enforces per-minute quotas, and the decorator's rate limiter
// keeps the application under them without the callers knowing. The
// pipeline performs no retries anywhere, so a failed generation surfaces
// immediately and the caller falls back to the deterministic rules.
package cloud

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// QuotaAwareGenerativeAIModel decorates a Gemini model handle with rate
// limiting. It implements the filter resolver's TextGenerator interface.
type QuotaAwareGenerativeAIModel struct {
	GenerativeContentConfig *genai.GenerateContentConfig // The generation settings applied to every request.
	ModelName               string                       // The Gemini model name.
	ModelHandle             *genai.Models                // Handle into the genai client's model surface.
	RateLimit               *rate.Limiter                // Limiter keeping requests under the model's quota.
}

// NewQuotaAwareModel creates the decorator around a model handle with the
// given requests-per-second budget.
func NewQuotaAwareModel(config *genai.GenerateContentConfig, name string, handle *genai.Models, requestsPerSecond int) *QuotaAwareGenerativeAIModel {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &QuotaAwareGenerativeAIModel{
		GenerativeContentConfig: config,
		ModelName:               name,
		ModelHandle:             handle,
		RateLimit:               rate.NewLimiter(rate.Every(time.Second), requestsPerSecond),
	}
}

// GenerateText sends a single text instruction to the model and returns
// the first candidate's text, blocking on the rate limiter first. One
// attempt only; any failure belongs to the caller's fallback logic.
func (q *QuotaAwareGenerativeAIModel) GenerateText(ctx context.Context, instruction string) (string, error) {
	if err := q.RateLimit.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := q.ModelHandle.GenerateContent(ctx, q.ModelName, genai.Text(instruction), q.GenerativeContentConfig)
	if err != nil {
		return "", err
	}
	return ExtractCandidateText(resp)
}
