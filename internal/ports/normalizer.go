package ports

import "github.com/baditaflorin/go_palindrome/internal/core/domain"

// Normalizer defines the interface for text normalization.
type Normalizer interface {
	Normalize(text string, opts domain.Options) string
}
