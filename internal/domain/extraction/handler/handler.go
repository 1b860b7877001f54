// Package handler exposes the extraction pipeline over HTTP: one endpoint to
// process an upload into a preview, one to confirm the reviewed result.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	api "github.com/FACorreiaa/docledger/internal/api/respond"
	"github.com/FACorreiaa/docledger/internal/domain/auth"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/service"
	"github.com/FACorreiaa/docledger/internal/domain/transaction"
	"github.com/FACorreiaa/docledger/pkg/storage"
)

// User-facing guidance for the PDF soft-failure paths.
const (
	msgNoTable = "Could not extract table data from PDF. Please try uploading an image of the table instead, or ensure your PDF contains clear tabular data."
	msgPDFFail = "PDF processing failed. Please try uploading an image (JPG/PNG) of your transaction table instead."
)

// Pipeline is the slice of the extraction service the handler needs.
type Pipeline interface {
	ProcessUpload(ctx context.Context, userID uuid.UUID, upload service.Upload) (*service.ProcessResult, error)
	Confirm(ctx context.Context, userID, logID uuid.UUID, candidates []*transaction.Candidate) (int, error)
}

// Handler handles the upload-processing endpoints.
type Handler struct {
	pipeline  Pipeline
	files     storage.Store
	maxUpload int64
	logger    *slog.Logger
}

// NewHandler creates the extraction HTTP handler. maxUpload caps the request
// body size in bytes.
func NewHandler(pipeline Pipeline, files storage.Store, maxUpload int64, logger *slog.Logger) *Handler {
	return &Handler{pipeline: pipeline, files: files, maxUpload: maxUpload, logger: logger}
}

// ProcessUpload handles POST /api/upload/file. It stores the multipart file,
// runs the pipeline, and returns the preview with the extraction log handle.
func (h *Handler) ProcessUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	path, err := h.files.Save(header.Filename, file)
	if err != nil {
		h.logger.Error("failed to store upload", slog.Any("error", err))
		api.WriteError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	result, err := h.pipeline.ProcessUpload(r.Context(), userID, service.Upload{
		Path:     path,
		FileName: header.Filename,
		FileType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		h.writeProcessError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"preview": result.Preview,
		"logId":   result.LogID,
	})
}

func (h *Handler) writeProcessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		api.WriteError(w, http.StatusBadRequest, "Unsupported file type")
	case errors.Is(err, service.ErrNoTableFound):
		api.WriteError(w, http.StatusBadRequest, msgNoTable)
	case errors.Is(err, service.ErrPDFProcessing):
		api.WriteError(w, http.StatusBadRequest, msgPDFFail)
	default:
		api.WriteErrorDetails(w, http.StatusInternalServerError, "Extraction failed", err.Error())
	}
}

type confirmRequest struct {
	Transactions []*transaction.Candidate `json:"transactions"`
	LogID        string                   `json:"logId"`
}

// Confirm handles POST /api/upload/confirm. The reviewed transactions pass
// the validation gate again before persistence.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	logID, err := uuid.Parse(req.LogID)
	if err != nil || req.Transactions == nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	count, err := h.pipeline.Confirm(r.Context(), userID, logID, req.Transactions)
	if err != nil {
		h.logger.Error("confirmation failed", slog.String("log_id", logID.String()), slog.Any("error", err))
		api.WriteErrorDetails(w, http.StatusInternalServerError, "Failed to save transactions", err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "count": count})
}
