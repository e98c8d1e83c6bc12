package multimodal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minatoaquaMK2/LightRAG/internal/engine"
	"github.com/rs/zerolog"
)

// ErrFileNotFound marks a process request whose file_path does not exist.
// The engine is never invoked for such requests. The message is part of
// the wire contract: clients see "File not found: <path>".
var ErrFileNotFound = errors.New("File not found")

type Service struct {
	engine engine.Engine
	logger *zerolog.Logger
}

func NewService(eng engine.Engine, logger *zerolog.Logger) *Service {
	return &Service{
		engine: eng,
		logger: logger,
	}
}

// Query runs a multimodal query against the engine. Structured engine
// results are coerced to text; callers always get a string back.
func (s *Service) Query(ctx context.Context, query string, mode string) (MultimodalQueryResponse, error) {
	result, err := s.engine.QueryWithMultimodal(ctx, query, mode)
	if err != nil {
		s.logger.Error().Err(err).Str("mode", mode).Msg("Multimodal query failed")
		return MultimodalQueryResponse{}, err
	}

	return MultimodalQueryResponse{Response: coerceToText(result)}, nil
}

// ProcessDocument asks the engine to process the document at filePath.
// The path is checked first so that a missing file never reaches the
// engine.
func (s *Service) ProcessDocument(ctx context.Context, filePath string, outputDir string) (DocumentProcessResponse, error) {
	if _, err := os.Stat(filePath); err != nil {
		return DocumentProcessResponse{}, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}

	if err := s.engine.ProcessDocumentComplete(ctx, filePath, outputDir); err != nil {
		s.logger.Error().Err(err).Str("file_path", filePath).Msg("Document processing failed")
		return DocumentProcessResponse{}, err
	}

	return DocumentProcessResponse{
		Success:    true,
		Message:    fmt.Sprintf("Successfully processed multimodal document: %s", filePath),
		OutputPath: outputDir,
	}, nil
}

// UploadAndProcess writes the uploaded content to a temporary file that
// keeps the original filename's extension, processes it, and removes the
// temporary file on every exit path. Removal errors are ignored so they
// never mask the primary result.
func (s *Service) UploadAndProcess(ctx context.Context, filename string, content []byte, outputDir string) (DocumentProcessResponse, error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return DocumentProcessResponse{}, fmt.Errorf("failed to create temporary file: %w", err)
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	_, werr := tmp.Write(content)
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return DocumentProcessResponse{}, fmt.Errorf("failed to store uploaded file: %w", werr)
	}

	if err := s.engine.ProcessDocumentComplete(ctx, tmpPath, outputDir); err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("Uploaded document processing failed")
		return DocumentProcessResponse{}, err
	}

	return DocumentProcessResponse{
		Success:    true,
		Message:    fmt.Sprintf("Successfully uploaded and processed multimodal document: %s", filename),
		OutputPath: outputDir,
	}, nil
}

// coerceToText renders a non-string engine result as JSON so the query
// response is always text. Structure is not preserved.
func coerceToText(result any) string {
	switch v := result.(type) {
	case string:
		return v
	case nil:
		return ""
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprint(result)
	}
	return string(data)
}
