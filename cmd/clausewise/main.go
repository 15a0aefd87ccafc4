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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/clausewise/ai"
	"github.com/poiesic/clausewise/ai/openai"
	"github.com/poiesic/clausewise/qa"
)

func main() {
	app := &cli.App{
		Name:  "clausewise",
		Usage: "Question answering over insurance policy documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer questions about a policy document",
				ArgsUsage: "QUESTION [QUESTION...]",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "document",
						Aliases:  []string{"d"},
						Usage:    "Path to the policy document text file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "generation-model",
						Usage: "Generation model name",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "API token for the AI service",
					},
					&cli.BoolFlag{
						Name:  "grounded",
						Usage: "Request structured answers with supporting quotes",
					},
					&cli.BoolFlag{
						Name:  "show-sources",
						Usage: "Print each answer's source tag and confidence",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	questions := c.Args().Slice()
	if len(questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}

	document, err := os.ReadFile(c.String("document"))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	aiOpts := []ai.ConfigOption{
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGenerationModel(c.String("generation-model")),
	}
	if token := c.String("token"); token != "" {
		aiOpts = append(aiOpts, ai.WithToken(token))
	}
	aiConfig := ai.NewConfig(aiOpts...)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	var engineOpts []qa.Option
	if c.Bool("grounded") {
		engineOpts = append(engineOpts, qa.WithGroundedAnswers())
	}
	engine, err := qa.NewEngine(provider, engineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	answers, err := engine.Process(ctx, string(document), questions)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	for i, answer := range answers {
		fmt.Printf("Q: %s\n", questions[i])
		fmt.Printf("A: %s\n", answer.Text)
		if c.Bool("show-sources") {
			fmt.Printf("   [%s, confidence %.2f]\n", answer.Source, answer.Confidence)
		}
		fmt.Println()
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
