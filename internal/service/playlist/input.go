package playlist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// DefaultMaxTextLength caps caller-supplied text when no limit is configured.
const DefaultMaxTextLength = 20000

// GenerateInput holds the parameters for one playlist generation.
type GenerateInput struct {
	// Seed makes clip selection reproducible; conventionally the session id.
	Seed string
	// Text replaces the manifest's fixed text when non-nil.
	Text *string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate(maxTextLength int) error {
	if maxTextLength <= 0 {
		maxTextLength = DefaultMaxTextLength
	}

	var errs []domain.FieldError
	if strings.TrimSpace(i.Seed) == "" {
		errs = append(errs, domain.FieldError{Field: "seed", Message: "required"})
	}
	if i.Text != nil {
		if n := utf8.RuneCountInString(*i.Text); n > maxTextLength {
			errs = append(errs, domain.FieldError{
				Field:   "text",
				Message: fmt.Sprintf("max %d characters (got %d)", maxTextLength, n),
			})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
