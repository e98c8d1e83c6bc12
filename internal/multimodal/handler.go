package multimodal

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/minatoaquaMK2/LightRAG/internal/middleware"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Query handles POST /multimodal/query
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryRequest MultimodalQueryRequest

	if err := req.ReadEntity(&queryRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	queryRequest.SetDefaults()
	if err := queryRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	log.Info().
		Str("mode", queryRequest.Mode).
		Int("query_len", len(queryRequest.Query)).
		Msg("Process multimodal query")

	ctx := req.Request.Context()

	queryResponse, err := h.service.Query(ctx, queryRequest.Query, queryRequest.Mode)
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("Multimodal query failed: %v", err), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, queryResponse)
}

// ProcessDocument handles POST /multimodal/process-document
func (h *Handler) ProcessDocument(req *restful.Request, resp *restful.Response) {
	var processRequest DocumentProcessRequest

	if err := req.ReadEntity(&processRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	processRequest.SetDefaults()
	if err := processRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	log.Info().
		Str("file_path", processRequest.FilePath).
		Str("output_dir", processRequest.OutputDir).
		Msg("Process multimodal document")

	ctx := req.Request.Context()

	processResponse, err := h.service.ProcessDocument(ctx, processRequest.FilePath, processRequest.OutputDir)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		middleware.HandleError(resp, fmt.Errorf("Multimodal document processing failed: %v", err), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, processResponse)
}

// UploadAndProcess handles POST /multimodal/upload-and-process
func (h *Handler) UploadAndProcess(req *restful.Request, resp *restful.Response) {
	file, header, err := req.Request.FormFile("file")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read multipart upload")
		middleware.HandleError(resp, middleware.ErrMissingFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	outputDir := req.Request.FormValue("output_dir")
	if outputDir == "" {
		outputDir = "./output"
	}

	content, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("Upload and processing failed: %v", err), http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("filename", header.Filename).
		Int("size", len(content)).
		Str("output_dir", outputDir).
		Msg("Upload and process multimodal document")

	ctx := req.Request.Context()

	processResponse, err := h.service.UploadAndProcess(ctx, header.Filename, content, outputDir)
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("Upload and processing failed: %v", err), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, processResponse)
}

// Health handles GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
