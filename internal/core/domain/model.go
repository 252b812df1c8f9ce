package domain

import "time"

// Category classifies a text by the shape of its raw form.
type Category string

const (
	CategoryWord   Category = "word"
	CategoryPhrase Category = "phrase"
	CategoryNumber Category = "number"
)

// Options controls which differences the normalizer ignores.
type Options struct {
	IgnoreSpaces      bool
	IgnoreCase        bool
	IgnorePunctuation bool
}

// DefaultOptions returns options with every normalization step enabled.
func DefaultOptions() Options {
	return Options{
		IgnoreSpaces:      true,
		IgnoreCase:        true,
		IgnorePunctuation: true,
	}
}

// Record is a palindrome accepted into the store. Records are immutable once created.
type Record struct {
	ID            int       `json:"id"`
	OriginalText  string    `json:"originalText"`
	CanonicalText string    `json:"canonicalText"`
	Length        int       `json:"length"`
	Category      Category  `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CheckResult holds the outcome of a palindrome check.
type CheckResult struct {
	OriginalText  string   `json:"originalText"`
	CanonicalText string   `json:"canonicalText"`
	IsPalindrome  bool     `json:"isPalindrome"`
	ReversedText  string   `json:"reversedText"`
	Length        int      `json:"length"`
	Category      Category `json:"category"`
	Message       string   `json:"message"`
}

// Statistics aggregates the records currently held by a store.
type Statistics struct {
	Total         int `json:"total"`
	Words         int `json:"words"`
	Phrases       int `json:"phrases"`
	Numbers       int `json:"numbers"`
	AverageLength int `json:"averageLength"`
}
