package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// Extractor turns uploaded bytes into plain text. PDF extraction goes through
// go-fitz page by page; plain text is decoded directly.
type Extractor struct {
	logger domain.Logger
}

// NewExtractor creates a new extractor instance
func NewExtractor(logger domain.Logger) *Extractor {
	return &Extractor{
		logger: logger,
	}
}

// Extract dispatches on the declared MIME type. The returned text is trimmed
// and sanitized; an empty result is always an error, never an empty success.
func (e *Extractor) Extract(data []byte, declaredType string) (string, error) {
	switch declaredType {
	case domain.MIMETypePDF:
		return e.extractPDF(data)
	case domain.MIMETypeText:
		return e.extractPlainText(data)
	default:
		return "", apperrors.NewValidationError("Please upload a valid PDF or TXT file.")
	}
}

// extractPDF concatenates the text of every page in page order. Pages with no
// text contribute nothing; a document with no text on any page is an
// extraction error.
func (e *Extractor) extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperrors.NewExtractionError(
			"The PDF file could not be read.",
			fmt.Errorf("failed to open PDF: %w", err),
		)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			// A single unreadable page is not fatal; it contributes nothing.
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}

		text = strings.TrimSpace(sanitizeText(text))
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	result := strings.TrimSpace(strings.Join(pages, " "))
	if result == "" {
		return "", apperrors.NewExtractionError(
			"No text could be extracted from the file.",
			domain.ErrNoExtractedText,
		)
	}

	return result, nil
}

// extractPlainText decodes the bytes as UTF-8 text. Leading and trailing
// whitespace is stripped, so the content round-trips exactly only for input
// that carries none.
func (e *Extractor) extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", apperrors.NewExtractionError(
			"The text file is not valid UTF-8.",
			domain.ErrInvalidEncoding,
		)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", apperrors.NewExtractionError(
			"No text could be extracted from the file.",
			domain.ErrNoExtractedText,
		)
	}

	return text, nil
}

// sanitizeText removes NULL bytes, stray control characters, and surrogate
// code points so extracted text can be safely JSON-encoded.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		if r == 0x00 {
			continue
		}
		// Keep tab, newline, carriage return
		if r == 0x09 || r == 0x0A || r == 0x0D {
			result.WriteRune(r)
		} else if r >= 0x20 && r < 0x7F {
			result.WriteRune(r)
		} else if r >= 0x7F && r <= 0x10FFFF {
			// Exclude surrogates (0xD800-0xDFFF) which are invalid in JSON
			if r < 0xD800 || r > 0xDFFF {
				result.WriteRune(r)
			}
		}
	}

	return result.String()
}
