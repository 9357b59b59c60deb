package services

import (
	"errors"
	"fmt"
)

// Document formats reported by ParseError.
const (
	FormatPDF         = "pdf"
	FormatDOCX        = "docx"
	FormatText        = "text"
	FormatUnsupported = "unsupported"
)

var (
	ErrEmptyDocument      = errors.New("no text content found in document")
	ErrSummarizerDisabled = errors.New("summarizer not configured")
	ErrEmptySummary       = errors.New("summary contained no usable sentences")
)

// ParseError means a document could not be converted to text.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == FormatUnsupported {
		return fmt.Sprintf("unsupported document type: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError means a required input was missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ExternalServiceError wraps a failed call to a third-party collaborator.
// It never leaves the suggestion provider.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
