package multimodal

import (
	"github.com/minatoaquaMK2/LightRAG/internal/middleware"
)

type MultimodalQueryRequest struct {
	Query string `json:"query" description:"The query text for multimodal search"`
	Mode  string `json:"mode,omitempty" description:"Query mode (local, global, hybrid, etc., default: hybrid)"`
}

type MultimodalQueryResponse struct {
	Response string `json:"response" description:"The response from the multimodal query"`
}

type DocumentProcessRequest struct {
	FilePath  string `json:"file_path" description:"Path to the multimodal document to process"`
	OutputDir string `json:"output_dir,omitempty" description:"Output directory for processed content (default: ./output)"`
}

type DocumentProcessResponse struct {
	Success    bool   `json:"success" description:"Whether the document processing was successful"`
	Message    string `json:"message" description:"Processing result message"`
	OutputPath string `json:"output_path,omitempty" description:"Path to processed output"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

// ProcessJob is one background document-processing job on the worker stream.
type ProcessJob struct {
	JobID     string `json:"job_id"`
	FilePath  string `json:"file_path"`
	OutputDir string `json:"output_dir"`
}

func (r *MultimodalQueryRequest) SetDefaults() {
	if r.Mode == "" {
		r.Mode = "hybrid"
	}
}

func (r *MultimodalQueryRequest) Validate() error {
	if r.Query == "" {
		return middleware.ErrEmptyQuery
	}
	return nil
}

func (r *DocumentProcessRequest) SetDefaults() {
	if r.OutputDir == "" {
		r.OutputDir = "./output"
	}
}

func (r *DocumentProcessRequest) Validate() error {
	if r.FilePath == "" {
		return middleware.ErrMissingFilePath
	}
	return nil
}
