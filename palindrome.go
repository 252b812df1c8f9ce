// palindrome.go
// Package palindrome checks whether texts are palindromes under configurable
// normalization rules. Texts are compared after an optional lowercase fold, optional
// removal of spaces and punctuation, and an unconditional accent strip:
//
//	"Anita lava la tina" -> "anitalavalatina" (palindrome, phrase)
//
// The checker is safe for concurrent use.
package palindrome

import (
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/detection"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/l"
)

// Result holds the outcome of a palindrome check.
type Result = domain.CheckResult

// Options controls which differences are ignored.
type Options = domain.Options

// Category classifies a text as word, phrase or number.
type Category = domain.Category

// DefaultOptions enables every normalization step.
func DefaultOptions() Options {
	return domain.DefaultOptions()
}

// Option defines a functional option for configuring a Checker.
type Option func(*config)

type config struct {
	Logger ports.Logger
	Quiet  bool
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithoutLogging discards all log output.
func WithoutLogging() Option {
	return func(cfg *config) {
		cfg.Quiet = true
	}
}

// Checker runs palindrome checks.
type Checker struct {
	checker    *detection.Checker
	normalizer ports.Normalizer
}

// New creates a new Checker with the provided functional options.
// If no logger is provided, a default logger writing to stderr is created.
func New(opts ...Option) (*Checker, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch {
	case cfg.Quiet:
		cfg.Logger = logger.NewNop()
	case cfg.Logger == nil:
		lg, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}

	norm := normalizer.NewDefaultNormalizer()
	return &Checker{
		checker:    detection.NewChecker(norm, cfg.Logger),
		normalizer: norm,
	}, nil
}

// Check normalizes text with opts and reports whether it is a palindrome.
func (c *Checker) Check(text string, opts Options) Result {
	return c.checker.Check(text, opts)
}

// Normalize returns the canonical form of text under opts.
func (c *Checker) Normalize(text string, opts Options) string {
	return c.normalizer.Normalize(text, opts)
}

// IsPalindrome reports whether canonical text reads the same in both directions.
// Empty text is never a palindrome.
func IsPalindrome(canonical string) bool {
	return detection.IsPalindrome(canonical)
}

// DetermineCategory classifies raw, unnormalized text.
func DetermineCategory(raw string) Category {
	return detection.DetermineCategory(raw)
}

// CheckWithDefaults checks text with every normalization step enabled and no logging.
func CheckWithDefaults(text string) Result {
	c, _ := New(WithoutLogging())
	return c.Check(text, DefaultOptions())
}
