// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reason

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/clausewise/ai"
	"github.com/poiesic/clausewise/core"
)

// Arbiter answers questions by arbitrating between deterministic tool
// findings and free-form generation.
type Arbiter struct {
	generator ai.Generator
	tools     []Tool
	grounded  bool
	logger    *slog.Logger
}

// Option configures an Arbiter.
type Option func(*Arbiter) error

// WithTools replaces the default tool set. Order matters: among findings
// with equal confidence, the earlier tool wins.
func WithTools(tools []Tool) Option {
	return func(a *Arbiter) error {
		a.tools = tools
		return nil
	}
}

// WithGroundedOutput switches generative answers to the structured JSON
// mode, where the model must return its answer with supporting quotes.
// Tool-assisted reformatting is unaffected.
func WithGroundedOutput() Option {
	return func(a *Arbiter) error {
		a.grounded = true
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Arbiter) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewArbiter creates an arbiter backed by the provider's generator and
// the default tool set.
func NewArbiter(provider ai.Provider, opts ...Option) (*Arbiter, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	a := &Arbiter{
		generator: provider.Generator(),
		tools:     DefaultTools(),
		logger:    slog.Default().With("component", "reason"),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Answer produces an answer for the question over the given context
// blocks. Every tool runs first; a finding above ToolPreferenceThreshold
// has the model reformat it, anything less falls through to grounded
// generation over the full context.
func (a *Arbiter) Answer(ctx context.Context, question string, contexts []string) (*core.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	contextText := strings.Join(contexts, "\n\n")

	var best core.Finding
	for _, tool := range a.tools {
		finding := tool.Apply(contextText, question)
		if finding.Empty() {
			continue
		}
		a.logger.Debug("tool finding",
			"tool", finding.Tool,
			"confidence", finding.Confidence)
		if finding.Confidence > best.Confidence {
			best = finding
		}
	}

	prompt := groundedPrompt(contextText, question)
	source := core.SourceGeneration
	if !best.Empty() && best.Confidence > ToolPreferenceThreshold {
		prompt = reformatPrompt(best.Result, question)
		source = core.SourceToolPrefix + best.Tool
	}

	var text string
	if a.grounded && source == core.SourceGeneration {
		grounded, err := a.generator.GenerateGrounded(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("generate grounded answer: %w", err)
		}
		text = strings.TrimSpace(grounded.Answer)
	} else {
		raw, err := a.generator.Generate(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("generate answer: %w", err)
		}
		text = cleanAnswer(raw)
	}

	return &core.Answer{
		Text:       text,
		Confidence: answerConfidence(text, strings.Split(contextText, "\n\n")),
		Source:     source,
	}, nil
}

// cleanAnswer strips echoed reasoning and markdown residue from a model
// response.
func cleanAnswer(raw string) string {
	if idx := strings.LastIndex(raw, answerMarker); idx >= 0 {
		raw = raw[idx+len(answerMarker):]
	}
	return strings.Trim(raw, " *\n")
}
