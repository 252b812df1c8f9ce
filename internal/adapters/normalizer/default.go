package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// punctuation matches every rune that is neither a word rune nor whitespace.
// Word runes are letters, non-spacing marks, decimal digits and connector punctuation.
var punctuation = runes.Predicate(func(r rune) bool {
	return !(unicode.IsLetter(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.IsSpace(r))
})

// DefaultNormalizer implements the default text normalization strategy.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize maps text to its canonical comparison form.
//
// The steps run in a fixed order: lowercase, drop U+0020 spaces, drop punctuation,
// then strip accents. Accent stripping always runs regardless of opts.
func (n *DefaultNormalizer) Normalize(text string, opts domain.Options) string {
	if opts.IgnoreCase {
		text = strings.ToLower(text)
	}
	if opts.IgnoreSpaces {
		text = strings.ReplaceAll(text, " ", "")
	}
	if opts.IgnorePunctuation {
		text = transformString(runes.Remove(punctuation), text)
	}
	return RemoveAccents(text)
}

// RemoveAccents decomposes text, drops combining non-spacing marks and recomposes it.
func RemoveAccents(text string) string {
	// transform.Chain keeps state, so a fresh chain is built per call.
	return transformString(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), text)
}

func transformString(t transform.Transformer, text string) string {
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}
