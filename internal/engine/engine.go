package engine

import (
	"context"
)

// Engine is the multimodal RAG capability the gateway forwards to.
// The engine runs outside this process; this interface allows mocking
// in tests without a live engine.
type Engine interface {
	// QueryWithMultimodal runs a multimodal knowledge-base query. The
	// result is usually text but may be a structured value.
	QueryWithMultimodal(ctx context.Context, query string, mode string) (any, error)

	// ProcessDocumentComplete parses a multimodal document and integrates
	// its content into the knowledge base. It returns no payload, only
	// success or failure.
	ProcessDocumentComplete(ctx context.Context, filePath string, outputDir string) error
}
