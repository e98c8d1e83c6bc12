package mcpadapter

import (
	"context"

	"github.com/minatoaquaMK2/LightRAG/internal/multimodal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryInput is the MCP tool input schema (matches HTTP API field names).
type QueryInput struct {
	Query string `json:"query" jsonschema:"the query text for multimodal search"`
	Mode  string `json:"mode,omitempty" jsonschema:"query mode: local, global or hybrid (default: hybrid)"`
}

// ProcessDocumentInput is the MCP tool input schema for document processing.
type ProcessDocumentInput struct {
	FilePath  string `json:"file_path" jsonschema:"path to the multimodal document to process"`
	OutputDir string `json:"output_dir,omitempty" jsonschema:"output directory for processed content (default: ./output)"`
}

// NewQueryHandler returns a tool handler that queries through the given
// service. Pass the returned function to mcp.AddTool.
func NewQueryHandler(service *multimodal.Service) func(context.Context, *mcp.CallToolRequest, QueryInput) (*mcp.CallToolResult, multimodal.MultimodalQueryResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, multimodal.MultimodalQueryResponse, error) {
		mode := input.Mode
		if mode == "" {
			mode = "hybrid"
		}

		result, err := service.Query(ctx, input.Query, mode)
		return nil, result, err
	}
}

// NewProcessDocumentHandler returns a tool handler for document
// processing. Pass the returned function to mcp.AddTool.
func NewProcessDocumentHandler(service *multimodal.Service) func(context.Context, *mcp.CallToolRequest, ProcessDocumentInput) (*mcp.CallToolResult, multimodal.DocumentProcessResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProcessDocumentInput) (*mcp.CallToolResult, multimodal.DocumentProcessResponse, error) {
		outputDir := input.OutputDir
		if outputDir == "" {
			outputDir = "./output"
		}

		result, err := service.ProcessDocument(ctx, input.FilePath, outputDir)
		return nil, result, err
	}
}
