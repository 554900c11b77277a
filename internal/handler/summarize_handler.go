package handler

import (
	"errors"
	"io"
	"net/http"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"
)

// SummarizeHandler handles document summarization requests
type SummarizeHandler struct {
	summaryService domain.SummaryService
	maxFileSize    int64
	logger         domain.Logger
}

// NewSummarizeHandler creates a new summarize handler instance
func NewSummarizeHandler(summaryService domain.SummaryService, maxFileSize int64, logger domain.Logger) *SummarizeHandler {
	return &SummarizeHandler{
		summaryService: summaryService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// Summarize handles POST /summarize. It expects a multipart form with a
// single "file" field holding a PDF or plain-text document and responds with
// {"summary": ...} on success or {"error": ...} on failure.
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "The uploaded file is too large.")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	upload := &domain.UploadedDocument{
		Content:      content,
		DeclaredType: header.Header.Get("Content-Type"),
		Filename:     header.Filename,
	}

	result, err := h.summaryService.Summarize(r.Context(), upload)
	if err != nil {
		h.logger.Warn("Summarize request failed", "filename", header.Filename, "error", err)
		writeError(w, apperrors.GetStatusCode(err), apperrors.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}
