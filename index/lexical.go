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


package index

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// LexicalScorer scores a query against every segment of a document using
// an in-memory bleve index. Document IDs are segment positions, so scores
// come back as a dense slice aligned with the segment slice.
type LexicalScorer struct {
	index bleve.Index
	count int
}

// NewLexicalScorer indexes the given segment texts. Blank texts are not
// indexed but still occupy their position, so each text's score stays at
// zero rather than shifting its neighbors.
func NewLexicalScorer(texts []string) (*LexicalScorer, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create lexical index: %w", err)
	}

	batch := idx.NewBatch()
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		doc := map[string]any{"text": text}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("index segment %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("commit lexical batch: %w", err)
	}

	return &LexicalScorer{index: idx, count: len(texts)}, nil
}

// Scores returns one relevance score per segment, normalized to [0, 1] by
// the best hit. Segments that do not match the query score zero. A blank
// query yields all zeros.
func (s *LexicalScorer) Scores(query string) ([]float64, error) {
	scores := make([]float64, s.count)
	if strings.TrimSpace(query) == "" || s.count == 0 {
		return scores, nil
	}

	match := bleve.NewMatchQuery(query)
	match.SetField("text")
	req := bleve.NewSearchRequest(match)
	req.Size = s.count

	result, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("lexical search: %w", err)
	}

	var best float64
	for _, hit := range result.Hits {
		if hit.Score > best {
			best = hit.Score
		}
	}
	if best == 0 {
		return scores, nil
	}

	for _, hit := range result.Hits {
		pos, err := strconv.Atoi(hit.ID)
		if err != nil || pos < 0 || pos >= s.count {
			continue
		}
		scores[pos] = hit.Score / best
	}
	return scores, nil
}

// Close releases the underlying bleve index.
func (s *LexicalScorer) Close() error {
	return s.index.Close()
}
