// Package snippet persists named pieces of code.
package snippet

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/iw2rmb/codepad/internal/langdetect"
)

// Errors for snippet operations.
var (
	// ErrNotFound is returned when no snippet has the requested ID.
	ErrNotFound = errors.New("snippet not found")

	// ErrExists is returned when another snippet already uses the title.
	ErrExists = errors.New("snippet with this title already exists")

	// ErrInvalid is returned for a snippet without title or content.
	ErrInvalid = errors.New("invalid snippet")
)

// Snippet is one saved document.
type Snippet struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Language  string    `yaml:"language"`
	Content   string    `yaml:"content"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// Store saves and loads snippets.
//
// Save creates a snippet when ID is empty and updates it otherwise. Titles
// are unique, compared case-insensitively.
type Store interface {
	Save(ctx context.Context, s Snippet) (Snippet, error)
	Get(ctx context.Context, id string) (Snippet, error)
	List(ctx context.Context) ([]Snippet, error)
	Delete(ctx context.Context, id string) error
}

// Prepare normalizes s before saving: it trims the title, requires a title
// and non-blank content, and detects the language when none is set.
func Prepare(s Snippet) (Snippet, error) {
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		return Snippet{}, errors.Join(ErrInvalid, errors.New("title is required"))
	}
	if strings.TrimSpace(s.Content) == "" {
		return Snippet{}, errors.Join(ErrInvalid, errors.New("content is required"))
	}
	if s.Language == "" {
		s.Language = langdetect.Detect([]byte(s.Content))
	}
	return s, nil
}

func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return hex.EncodeToString([]byte(time.Now().Format("150405.000000")))
	}
	return hex.EncodeToString(b[:])
}

func sameTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
