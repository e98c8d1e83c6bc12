// Package engineclient talks to an upstream RAG-Anything engine daemon
// over its JSON HTTP API. It is plumbing only: parsing, extraction and
// retrieval all happen on the engine side.
package engineclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Config struct {
	BaseURL             string
	APIKey              string
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// Client implements engine.Engine against a remote engine process.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:9622"
	}
	if cfg.Timeout == 0 {
		// Document processing can be slow for large multimodal files.
		cfg.Timeout = 300 * time.Second
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        cfg.MaxIdleConns,
				MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			},
		},
	}
}

type queryRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
}

type queryResponse struct {
	Response any `json:"response"`
}

type processRequest struct {
	FilePath  string `json:"file_path"`
	OutputDir string `json:"output_dir"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// QueryWithMultimodal forwards a query to the engine and returns its
// result as decoded JSON: a string for plain answers, a structured value
// otherwise.
func (c *Client) QueryWithMultimodal(ctx context.Context, query string, mode string) (any, error) {
	body, err := c.post(ctx, "/query", queryRequest{Query: query, Mode: mode})
	if err != nil {
		return nil, err
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("failed to decode engine response: %w", err)
	}

	return queryResp.Response, nil
}

// ProcessDocumentComplete asks the engine to process one document. The
// engine replies with no payload of interest, only success or failure.
func (c *Client) ProcessDocumentComplete(ctx context.Context, filePath string, outputDir string) error {
	_, err := c.post(ctx, "/documents/process", processRequest{FilePath: filePath, OutputDir: outputDir})
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal engine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call engine: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("engine returned status %d: %s", resp.StatusCode, upstreamDetail(body))
	}

	return body, nil
}

// upstreamDetail extracts the engine's {detail} message when present so
// callers see the real failure instead of a JSON blob.
func upstreamDetail(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return strings.TrimSpace(string(body))
}
