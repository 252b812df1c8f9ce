package detection

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// IsPalindrome reports whether canonical reads the same in both directions.
// Empty text is never a palindrome.
func IsPalindrome(canonical string) bool {
	if canonical == "" {
		return false
	}

	rs := []rune(canonical)
	for left, right := 0, len(rs)-1; left < right; left, right = left+1, right-1 {
		if rs[left] != rs[right] {
			return false
		}
	}
	return true
}

// Reverse returns text with its runes in reverse order.
func Reverse(text string) string {
	rs := []rune(text)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// DetermineCategory classifies raw, unnormalized text.
// Any literal space makes it a phrase; all decimal digits make it a number.
func DetermineCategory(raw string) domain.Category {
	if strings.ContainsRune(raw, ' ') {
		return domain.CategoryPhrase
	}
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			return domain.CategoryWord
		}
	}
	return domain.CategoryNumber
}

// Message returns the human-readable verdict for text.
func Message(text string, isPalindrome bool) string {
	if isPalindrome {
		return fmt.Sprintf("'%s' is a palindrome!", text)
	}
	return fmt.Sprintf("'%s' is not a palindrome.", text)
}

// Checker normalizes texts and runs the palindrome test on the result.
type Checker struct {
	normalizer ports.Normalizer
	logger     ports.Logger
}

// NewChecker creates a new palindrome checker.
func NewChecker(normalizer ports.Normalizer, logger ports.Logger) *Checker {
	return &Checker{
		normalizer: normalizer,
		logger:     logger,
	}
}

// Canonicalize normalizes text with every option enabled.
func (c *Checker) Canonicalize(text string) string {
	return c.normalizer.Normalize(text, domain.DefaultOptions())
}

// Check normalizes text with opts and reports whether it is a palindrome.
// It has no side effects beyond logging.
func (c *Checker) Check(text string, opts domain.Options) domain.CheckResult {
	canonical := c.normalizer.Normalize(text, opts)
	isPalindrome := IsPalindrome(canonical)

	c.logger.Debug("Checked palindrome",
		"original", text,
		"canonical", canonical,
		"ignore_spaces", opts.IgnoreSpaces,
		"ignore_case", opts.IgnoreCase,
		"ignore_punctuation", opts.IgnorePunctuation,
		"is_palindrome", isPalindrome,
	)

	return domain.CheckResult{
		OriginalText:  text,
		CanonicalText: canonical,
		IsPalindrome:  isPalindrome,
		ReversedText:  Reverse(canonical),
		Length:        utf8.RuneCountInString(canonical),
		Category:      DetermineCategory(text),
		Message:       Message(text, isPalindrome),
	}
}
