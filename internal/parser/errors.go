package parser

import (
	"errors"
	"fmt"

	"github.com/finassist/extrato/internal/models"
)

var (
	// ErrFormatUnrecognized means no bank signature matched; the document
	// is aborted rather than guessed at.
	ErrFormatUnrecognized = errors.New("bank format not recognized")

	// ErrResourceLimit means the document exceeded the configured size caps
	// and was aborted before processing.
	ErrResourceLimit = errors.New("document exceeds resource limits")
)

// ExtractError carries the context of a single failed line extraction:
// enough to reproduce the failure against the original page text.
type ExtractError struct {
	Format models.BankFormat
	Page   int
	Line   int
	Cause  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("[%s] page %d line %d: %v", e.Format, e.Page, e.Line, e.Cause)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
