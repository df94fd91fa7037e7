// Package api - HTTP handler for board analysis
// This handler wraps the analyzer - it contains NO analysis logic.
package api

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gerber-estimate/core/analyzer"
	"gerber-estimate/core/input"
	"gerber-estimate/core/types"
	"gerber-estimate/internal/errors"
	"gerber-estimate/internal/logging"
	"gerber-estimate/internal/metrics"
)

// uploadField is the repeated multipart field carrying files
const uploadField = "files"

// multipartMemory is how much of a form is buffered before spilling to disk
const multipartMemory = 8 << 20

// Handler handles analysis requests
type Handler struct {
	analyzer       *analyzer.Analyzer
	maxUploadBytes int64
	version        string
	logger         *zap.Logger
}

// NewHandler creates a new handler. maxUploadBytes <= 0 disables the cap.
func NewHandler(a *analyzer.Analyzer, maxUploadBytes int64, version string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		analyzer:       a,
		maxUploadBytes: maxUploadBytes,
		version:        version,
		logger:         logger,
	}
}

// HandleAnalyze handles POST /analyze
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := logging.RequestID(ctx)
	logger := h.logger.With(zap.String("request_id", requestID))

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	uploads, code, err := readUploads(r)
	if err != nil {
		status := http.StatusBadRequest
		if code == CodeTooLarge {
			status = http.StatusRequestEntityTooLarge
		}
		metrics.RecordAnalysis(input.SourceAPI.String(), "rejected", time.Since(start))
		writeError(w, requestID, code, err.Error(), status)
		return
	}

	env := input.NewEnvelope(input.SourceAPI, uploads)
	report, err := h.analyzer.Analyze(ctx, env.Uploads)
	if err != nil {
		code, status := classifyError(err)
		logger.Warn("analysis failed", zap.Error(err), zap.String("code", code))
		metrics.RecordAnalysis(env.Source.String(), "error", time.Since(start))
		writeError(w, requestID, code, err.Error(), status)
		return
	}

	elapsed := time.Since(start)
	metrics.RecordAnalysis(env.Source.String(), "success", elapsed)
	for _, f := range report.Files {
		metrics.RecordFile(f.Layer.String())
	}
	if report.Dimensions != nil {
		metrics.RecordDimensions(report.Dimensions.Units.String())
	}

	logger.Info("analysis complete",
		zap.Int("uploads", len(env.Uploads)),
		zap.Int("files", len(report.Files)),
		zap.Int("layer_count", report.LayerCount),
		zap.Bool("dimensions", report.Dimensions != nil),
		zap.Duration("duration", elapsed),
	)

	w.Header().Set("X-Input-Hash", env.ContentHash)

	detail, _ := strconv.ParseBool(r.URL.Query().Get("detail"))
	if !detail {
		writeJSON(w, report.Result(), http.StatusOK)
		return
	}

	writeJSON(w, &AnalyzeResponse{
		Report: report,
		Metadata: &ResponseMetadata{
			RequestID:     requestID,
			InputHash:     env.ContentHash,
			EngineVersion: h.version,
			Uploads:       len(env.Uploads),
			Bytes:         env.TotalBytes(),
			DurationMs:    elapsed.Milliseconds(),
		},
	}, http.StatusOK)
}

// readUploads reads every file part of the multipart form, in order
func readUploads(r *http.Request) ([]types.Upload, string, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, CodeTooLarge, err
		}
		return nil, CodeInvalidUpload, err
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		return nil, CodeValidation, errors.Input("multipart field \"files\" is required")
	}

	uploads := make([]types.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, CodeInvalidUpload, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, CodeInvalidUpload, err
		}
		uploads = append(uploads, types.Upload{Name: fh.Filename, Data: data})
	}
	return uploads, "", nil
}

func classifyError(err error) (string, int) {
	switch errors.TypeOf(err) {
	case errors.TypeArchive:
		return CodeArchive, http.StatusUnprocessableEntity
	case errors.TypeInput:
		return CodeValidation, http.StatusBadRequest
	default:
		return CodeInternal, http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	writeJSON(w, &ErrorResponse{
		Error:     ErrorDetail{Code: code, Message: message},
		RequestID: requestID,
	}, status)
}
