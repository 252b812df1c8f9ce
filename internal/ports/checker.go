package ports

import "github.com/baditaflorin/go_palindrome/internal/core/domain"

// Checker defines the interface for palindrome detection.
type Checker interface {
	// Check normalizes text with opts and reports whether the result is a palindrome.
	Check(text string, opts domain.Options) domain.CheckResult
}
