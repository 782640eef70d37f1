package session

import "strings"

// CreateInput holds the parameters for creating a session.
type CreateInput struct {
	// Text overrides the manifest's fixed text when non-nil.
	Text *string
}

// normalizedText treats blank text as absent.
func (i CreateInput) normalizedText() *string {
	if i.Text == nil || strings.TrimSpace(*i.Text) == "" {
		return nil
	}
	return i.Text
}
