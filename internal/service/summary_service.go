package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"

	"github.com/google/uuid"
)

// FallbackSummary is returned when the model legitimately produces no output.
// It distinguishes "no summary produced" from a summarization failure.
const FallbackSummary = "No summary could be produced for this document."

// SummaryService orchestrates a summarize request: validation, scoped
// temporary storage, extraction, and summarization. It holds no per-request
// state; every request is independent.
type SummaryService struct {
	extractor  domain.TextExtractor
	summarizer domain.Summarizer
	config     domain.Config
	logger     domain.Logger
}

// NewSummaryService creates a new summary service instance
func NewSummaryService(
	extractor domain.TextExtractor,
	summarizer domain.Summarizer,
	config domain.Config,
	logger domain.Logger,
) *SummaryService {
	return &SummaryService{
		extractor:  extractor,
		summarizer: summarizer,
		config:     config,
		logger:     logger,
	}
}

// Summarize processes a single uploaded document. The upload is spooled to a
// temporary file that is removed on every exit path; nothing outlives the
// request.
func (s *SummaryService) Summarize(ctx context.Context, upload *domain.UploadedDocument) (*domain.SummaryResult, error) {
	if upload == nil {
		return nil, apperrors.NewValidationError("No file uploaded")
	}

	declaredType, err := resolveDeclaredType(upload)
	if err != nil {
		return nil, err
	}

	tempPath, cleanup, err := s.spoolToTemp(upload, declaredType)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to read uploaded file", err)
	}

	text, err := s.extractor.Extract(data, declaredType)
	if err != nil {
		return nil, err
	}

	text = s.truncate(text)

	summarizeCtx, cancel := context.WithTimeout(ctx, time.Duration(s.config.GetSummarizeTimeoutSeconds())*time.Second)
	defer cancel()

	start := time.Now()
	summary, err := s.summarizer.Summarize(summarizeCtx, text)
	if err != nil {
		s.logger.Error("Summarization failed", err, "filename", upload.Filename)
		return nil, apperrors.NewSummarizationError("Failed to summarize the document. Please try again.", err)
	}

	if summary == "" {
		s.logger.Warn("Model produced no summary", "filename", upload.Filename, "text_len", len(text))
		summary = FallbackSummary
	}

	s.logger.Info("Document summarized",
		"filename", upload.Filename,
		"original_len", len(text),
		"summary_len", len(summary),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.SummaryResult{
		Summary:        summary,
		OriginalLength: len(text),
		SummaryLength:  len(summary),
	}, nil
}

// spoolToTemp writes the upload under the configured temp dir with a uuid
// name. The returned cleanup removes the file; callers must defer it.
func (s *SummaryService) spoolToTemp(upload *domain.UploadedDocument, declaredType string) (string, func(), error) {
	tempDir := s.config.GetTempDir()
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", nil, apperrors.NewInternalError("Failed to prepare temporary storage", err)
	}

	ext := ".txt"
	if declaredType == domain.MIMETypePDF {
		ext = ".pdf"
	}

	tempPath := filepath.Join(tempDir, uuid.New().String()+ext)
	if err := os.WriteFile(tempPath, upload.Content, 0o600); err != nil {
		return "", nil, apperrors.NewInternalError("Failed to save uploaded file", err)
	}

	cleanup := func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove temporary file", "path", tempPath, "error", err)
		}
	}

	return tempPath, cleanup, nil
}

// truncate caps extracted text at the configured byte limit before the model
// call. Long documents are truncated rather than rejected; the cut is aligned
// to a rune boundary.
func (s *SummaryService) truncate(text string) string {
	maxBytes := s.config.GetMaxTextBytes()
	if maxBytes <= 0 || len(text) <= maxBytes {
		return text
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// resolveDeclaredType validates the declared MIME type, falling back to the
// file extension when the upload mechanism did not assert one. Anything
// outside PDF and plain text is rejected before extraction runs.
func resolveDeclaredType(upload *domain.UploadedDocument) (string, error) {
	declared := upload.DeclaredType
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = declared[:i]
	}
	declared = strings.ToLower(strings.TrimSpace(declared))

	switch declared {
	case domain.MIMETypePDF, domain.MIMETypeText:
		return declared, nil
	case "", "application/octet-stream":
		switch strings.ToLower(filepath.Ext(upload.Filename)) {
		case ".pdf":
			return domain.MIMETypePDF, nil
		case ".txt":
			return domain.MIMETypeText, nil
		}
	}

	return "", apperrors.NewValidationError("Please upload a valid PDF or TXT file.")
}
