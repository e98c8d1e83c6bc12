package middleware

import "errors"

// Request validation errors, rejected before handler logic runs.
var (
	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrMissingFile     = errors.New("file field is required")
	ErrMissingFilePath = errors.New("file_path must not be empty")
)
