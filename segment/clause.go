package segment

import "strings"

// Clause is one unit of extracted document text, in document order.
// Extraction from binary formats happens upstream; this package only
// consumes the result.
type Clause struct {
	// Text is the clause body.
	Text string

	// Level is the structural depth the extractor observed (heading
	// nesting, list depth). Carried as metadata only.
	Level int

	// Page is the originating page number, zero when unknown.
	Page int

	// SourceURL is where the document came from, empty when unknown.
	SourceURL string

	// DependsOn lists indices of clauses this clause references.
	// Forward references are allowed.
	DependsOn []int
}

// ClausesFromText splits plain text into clauses on blank lines.
// This is the entry point for documents that arrive as raw text rather
// than through a structured extractor.
func ClausesFromText(text, sourceURL string) []Clause {
	blocks := strings.Split(text, "\n\n")
	clauses := make([]Clause, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		clauses = append(clauses, Clause{
			Text:      block,
			SourceURL: sourceURL,
		})
	}
	return clauses
}
