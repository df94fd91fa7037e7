// Package api - API types for board analysis
// POST /analyze answers with the plain analysis record the quote form
// consumes; detail mode wraps the full report with request metadata.
package api

import (
	"gerber-estimate/core/types"
)

// AnalyzeResponse is the detail-mode output of POST /analyze
type AnalyzeResponse struct {
	*types.Report

	Metadata *ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	RequestID     string `json:"request_id"`
	InputHash     string `json:"input_hash"`
	EngineVersion string `json:"engine_version"`
	Uploads       int    `json:"uploads"`
	Bytes         int64  `json:"bytes"`
	DurationMs    int64  `json:"duration_ms"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail provides error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeArchive       = "ARCHIVE_ERROR"
	CodeTooLarge      = "PAYLOAD_TOO_LARGE"
	CodeInvalidUpload = "INVALID_UPLOAD"
	CodeInternal      = "INTERNAL_ERROR"
)
