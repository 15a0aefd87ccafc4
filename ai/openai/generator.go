package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/clausewise/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// groundedParseAttempts bounds re-generation when the model returns
// malformed JSON in grounded mode.
const groundedParseAttempts = 3

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
type Generator struct {
	client llms.Model
	logger *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GenerationHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client: client,
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate produces a free-form completion for the prompt.
// Errors are returned as-is; the caller owns the failure policy.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("generating completion", "promptLength", len(prompt))

	response, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt, llms.WithTemperature(0.0))
	if err != nil {
		g.logger.Error("failed to generate completion", "err", err)
		return "", err
	}

	return response, nil
}

// GenerateGrounded requests a JSON {answer, sources} response. Model
// output is not guaranteed to be valid JSON, so the response is scrubbed
// of code fences and run through repairJSON before parsing. If it still
// cannot be parsed after the attempt budget, the defined fallback answer
// with an empty source list is returned instead of an error.
func (g *Generator) GenerateGrounded(ctx context.Context, prompt string) (*ai.GroundedAnswer, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(groundedSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	var result ai.GroundedAnswer
	var lastErr error
	for attempt := 0; attempt < groundedParseAttempts; attempt++ {
		response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			g.logger.Error("failed to generate grounded content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			g.logger.Debug("no choices returned from model")
			return ai.FallbackGroundedAnswer(), nil
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			g.logger.Warn("error parsing grounded response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil || result.Answer == "" {
		g.logger.Warn("grounded output unusable after retries, substituting fallback", "err", lastErr)
		return ai.FallbackGroundedAnswer(), nil
	}

	if result.Sources == nil {
		result.Sources = []string{}
	}
	return &result, nil
}

const groundedSystemPrompt = `You answer questions about insurance policy documents.
Respond with a single JSON object of the form
{"answer": "<direct answer>", "sources": ["<verbatim supporting quote>", ...]}.
Do not include any text outside the JSON object.`
