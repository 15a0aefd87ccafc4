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


package qa

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/clausewise/ai"
	"github.com/poiesic/clausewise/core"
	"github.com/poiesic/clausewise/index"
	"github.com/poiesic/clausewise/reason"
	"github.com/poiesic/clausewise/retrieval"
	"github.com/poiesic/clausewise/segment"
	badgerstore "github.com/poiesic/clausewise/storage/badger"
)

const (
	// DefaultTopK and DefaultDepth are the first-pass retrieval widths.
	DefaultTopK  = 12
	DefaultDepth = 3

	// RerunTopK and RerunDepth widen retrieval for the low-confidence
	// retry.
	RerunTopK  = 15
	RerunDepth = 5

	// RerunThreshold is the confidence below which an answer is retried.
	RerunThreshold = 0.75

	// DefaultCacheEntries bounds the number of indexed documents kept in
	// memory.
	DefaultCacheEntries = 16
)

// Engine runs the question-answering pipeline end to end.
type Engine struct {
	segmenter *segment.Segmenter
	arbiter   *reason.Arbiter
	cache     *documentCache
	embedder  ai.Embedder
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	cacheEntries int64
	tools        []reason.Tool
	grounded     bool
	logger       *slog.Logger
}

// WithCacheEntries bounds how many indexed documents stay cached.
func WithCacheEntries(n int64) Option {
	return func(o *engineOptions) {
		if n > 0 {
			o.cacheEntries = n
		}
	}
}

// WithTools replaces the arbiter's default tool set.
func WithTools(tools []reason.Tool) Option {
	return func(o *engineOptions) {
		o.tools = tools
	}
}

// WithGroundedAnswers switches generative answers to the structured
// JSON mode with supporting quotes.
func WithGroundedAnswers() Option {
	return func(o *engineOptions) {
		o.grounded = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine creates an engine over the given AI provider.
func NewEngine(provider ai.Provider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	options := &engineOptions{
		cacheEntries: DefaultCacheEntries,
		logger:       slog.Default().With("component", "qa"),
	}
	for _, opt := range opts {
		opt(options)
	}

	arbiterOpts := []reason.Option{reason.WithLogger(options.logger)}
	if options.tools != nil {
		arbiterOpts = append(arbiterOpts, reason.WithTools(options.tools))
	}
	if options.grounded {
		arbiterOpts = append(arbiterOpts, reason.WithGroundedOutput())
	}
	arbiter, err := reason.NewArbiter(provider, arbiterOpts...)
	if err != nil {
		return nil, err
	}

	cache, err := newDocumentCache(options.cacheEntries)
	if err != nil {
		return nil, fmt.Errorf("create document cache: %w", err)
	}

	return &Engine{
		segmenter: segment.NewSegmenter(segment.WithLogger(options.logger)),
		arbiter:   arbiter,
		cache:     cache,
		embedder:  provider.Embedder(),
		logger:    options.logger,
	}, nil
}

// Process answers the questions, in order, against the document.
// Questions run sequentially so low-confidence retries reuse a warm
// index. On a per-question failure the answers completed so far are
// returned alongside the error.
func (e *Engine) Process(ctx context.Context, documentText string, questions []string) ([]core.Answer, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, ErrEmptyDocument
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	start := time.Now()
	logger := e.logger.With("request_id", uuid.NewString())

	entry, err := e.entryFor(ctx, documentText, logger)
	if err != nil {
		return nil, err
	}

	retriever, err := retrieval.NewRetriever(entry.index, entry.store, retrieval.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	answers := make([]core.Answer, 0, len(questions))
	for i, question := range questions {
		answer, err := e.answerOnce(ctx, retriever, question, DefaultTopK, DefaultDepth)
		if err != nil {
			return answers, fmt.Errorf("question %d: %w", i, err)
		}

		if answer.Confidence < RerunThreshold {
			logger.Warn("low confidence answer, widening retrieval",
				"question_index", i,
				"confidence", answer.Confidence)

			rerun, err := e.answerOnce(ctx, retriever, question, RerunTopK, RerunDepth)
			if err != nil {
				return answers, fmt.Errorf("question %d rerun: %w", i, err)
			}
			rerun.Source += core.RerunSuffix
			answer = rerun
		}

		answers = append(answers, *answer)
	}

	logger.Info("processed questions",
		"count", len(questions),
		"duration", time.Since(start))
	return answers, nil
}

// answerOnce retrieves context at the given widths and arbitrates one
// answer.
func (e *Engine) answerOnce(ctx context.Context, retriever *retrieval.Retriever, question string, topK, depth int) (*core.Answer, error) {
	contextSegments, err := retriever.Retrieve(ctx, question, topK, depth)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(contextSegments))
	for i, cs := range contextSegments {
		texts[i] = cs.Segment.Text
	}
	return e.arbiter.Answer(ctx, question, texts)
}

// entryFor returns the indexed form of the document, building it on a
// cache miss.
func (e *Engine) entryFor(ctx context.Context, documentText string, logger *slog.Logger) (*documentEntry, error) {
	key := strconv.FormatUint(uint64(core.IDFromContent(documentText)), 16)
	if entry, ok := e.cache.get(key); ok {
		logger.Debug("document cache hit", "key", key)
		return entry, nil
	}

	clauses := segment.ClausesFromText(documentText, "")
	segments, err := e.segmenter.Segment(clauses)
	if err != nil {
		return nil, fmt.Errorf("segment document: %w", err)
	}

	store, err := badgerstore.NewMemoryStore()
	if err != nil {
		return nil, fmt.Errorf("open segment store: %w", err)
	}
	if _, err := store.AppendSegments(ctx, segments...); err != nil {
		store.Close()
		return nil, fmt.Errorf("store segments: %w", err)
	}

	idx, err := index.Build(ctx, segments, e.embedder, index.WithLogger(logger))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("build index: %w", err)
	}

	entry := &documentEntry{index: idx, store: store}
	e.cache.put(key, entry)
	logger.Debug("indexed document", "key", key, "segments", len(segments))
	return entry, nil
}

// Close releases the document cache. Cached indexes are dropped without
// eviction callbacks; their stores are in-memory and die with the
// process.
func (e *Engine) Close() error {
	e.cache.close()
	return nil
}
