// Package service orchestrates the extraction pipeline: classify the upload,
// extract a table grid, parse it into candidate transactions, gate them, and
// track the attempt in an extraction log that spans the process and confirm
// requests.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/classify"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/outcome"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/parser"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/pdftable"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/repository"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/validate"
	"github.com/FACorreiaa/docledger/internal/domain/transaction"
	"github.com/FACorreiaa/docledger/pkg/metrics"
	"github.com/FACorreiaa/docledger/pkg/storage"
)

// Pipeline failure classes the transport layer maps to status codes.
var (
	// ErrUnsupportedFileType: classification refused the upload; no engine ran.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrNoTableFound: the PDF was readable but held no usable table.
	ErrNoTableFound = errors.New("no table data found in PDF")
	// ErrPDFProcessing: the PDF engine itself failed.
	ErrPDFProcessing = errors.New("PDF processing failed")
)

// ImageExtractor is the raster-path engine (OCR).
type ImageExtractor interface {
	ExtractGrid(ctx context.Context, path string) ([][]string, error)
}

// TableExtractor is the PDF-path engine.
type TableExtractor interface {
	ExtractFirstTable(path string) ([][]string, error)
}

// Upload describes one document handed to the pipeline. The file at Path is
// owned by the pipeline for the duration of the call and is deleted on every
// exit path.
type Upload struct {
	Path     string
	FileName string
	FileType string
}

// ProcessResult is the preview returned to the reviewer after a successful
// pipeline run.
type ProcessResult struct {
	Preview []*transaction.Candidate
	LogID   uuid.UUID
}

// PipelineService runs the extraction pipeline. One invocation per upload,
// strictly sequential, no internal retries.
type PipelineService struct {
	logs    repository.LogRepository
	txRepo  transaction.Repository
	files   storage.Store
	images  ImageExtractor
	tables  TableExtractor
	parser  *parser.Parser
	metrics *metrics.Extraction
	logger  *slog.Logger
}

// NewPipelineService wires the pipeline's collaborators together.
func NewPipelineService(
	logs repository.LogRepository,
	txRepo transaction.Repository,
	files storage.Store,
	images ImageExtractor,
	tables TableExtractor,
	p *parser.Parser,
	m *metrics.Extraction,
	logger *slog.Logger,
) *PipelineService {
	return &PipelineService{
		logs:    logs,
		txRepo:  txRepo,
		files:   files,
		images:  images,
		tables:  tables,
		parser:  p,
		metrics: m,
		logger:  logger,
	}
}

// ProcessUpload runs the full pipeline for one upload and returns the
// gated preview plus the extraction log handle the confirm phase needs.
func (s *PipelineService) ProcessUpload(ctx context.Context, userID uuid.UUID, upload Upload) (*ProcessResult, error) {
	log := outcome.NewLog(userID, upload.FileName, upload.FileType)
	if err := s.logs.Create(ctx, log); err != nil {
		s.files.Remove(upload.Path)
		return nil, fmt.Errorf("create extraction log: %w", err)
	}

	// The upload must not outlive this request, whatever happens.
	defer func() {
		if err := s.files.Remove(upload.Path); err != nil {
			s.logger.Error("failed to delete upload", slog.String("path", upload.Path), slog.Any("error", err))
		}
	}()

	grid, err := s.extractGrid(ctx, upload)
	if err != nil {
		s.conclude(ctx, log, outcome.StatusFailed, 0, err.Error())
		s.metrics.UploadsProcessed.WithLabelValues("failed").Inc()
		s.logger.Warn("extraction failed",
			slog.String("log_id", log.ID.String()),
			slog.String("file", upload.FileName),
			slog.Any("error", err),
		)
		return nil, err
	}

	candidates := s.parser.ParseGrid(grid)
	preview := validate.Filter(candidates)

	// Zero surviving rows is still a successful run, just an unhelpful one.
	s.conclude(ctx, log, outcome.StatusSuccess, len(preview), "")
	s.metrics.UploadsProcessed.WithLabelValues("success").Inc()
	s.metrics.RowsExtracted.Add(float64(len(preview)))

	s.logger.Info("extraction succeeded",
		slog.String("log_id", log.ID.String()),
		slog.Int("grid_rows", len(grid)),
		slog.Int("preview_rows", len(preview)),
	)

	return &ProcessResult{Preview: preview, LogID: log.ID}, nil
}

// extractGrid routes the upload to exactly one extraction engine.
func (s *PipelineService) extractGrid(ctx context.Context, upload Upload) ([][]string, error) {
	switch classify.Detect(upload.Path) {
	case classify.KindImage:
		grid, err := s.images.ExtractGrid(ctx, upload.Path)
		if err != nil {
			return nil, fmt.Errorf("image extraction: %w", err)
		}
		return grid, nil

	case classify.KindPDF:
		grid, err := s.tables.ExtractFirstTable(upload.Path)
		if errors.Is(err, pdftable.ErrNoTable) {
			return nil, ErrNoTableFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPDFProcessing, err)
		}
		return grid, nil

	default:
		return nil, ErrUnsupportedFileType
	}
}

// Confirm persists reviewer-approved transactions and closes the extraction
// log. The validation gate is fully re-run: the reviewer may have edited
// anything since the preview.
func (s *PipelineService) Confirm(ctx context.Context, userID, logID uuid.UUID, candidates []*transaction.Candidate) (int, error) {
	valid := validate.Filter(candidates)

	count, err := s.txRepo.BulkInsert(ctx, userID, valid)
	if err != nil {
		return 0, fmt.Errorf("persist transactions: %w", err)
	}

	if err := s.logs.UpdateStatus(ctx, logID, outcome.StatusCompleted, count, ""); err != nil {
		return 0, fmt.Errorf("complete extraction log: %w", err)
	}

	s.metrics.ConfirmedRows.Add(float64(count))
	s.logger.Info("transactions confirmed",
		slog.String("log_id", logID.String()),
		slog.Int("count", count),
	)
	return count, nil
}

// conclude records the pipeline verdict on the log. A conclusion that cannot
// be stored is logged but does not override the pipeline's own result.
func (s *PipelineService) conclude(ctx context.Context, log *outcome.Log, status outcome.Status, count int, message string) {
	if err := s.logs.UpdateStatus(ctx, log.ID, status, count, message); err != nil {
		s.logger.Error("failed to conclude extraction log",
			slog.String("log_id", log.ID.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
}
