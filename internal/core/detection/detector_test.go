package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

func newTestChecker() *Checker {
	return NewChecker(normalizer.NewDefaultNormalizer(), logger.NewNop())
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"a", true},
		{"aa", true},
		{"ab", false},
		{"aba", true},
		{"abca", false},
		{"racecar", true},
		{"12321", true},
		{"ñoñ", true},
		{"Aa", false},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPalindrome(tc.text))
		})
	}
}

func TestIsPalindromeSymmetricUnderReverse(t *testing.T) {
	for _, text := range []string{"a", "ab", "abc", "abba", "xyzzyx", "añb", "12344321", "hello"} {
		assert.Equal(t, IsPalindrome(text), IsPalindrome(Reverse(text)), "text %q", text)
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "cba", Reverse("abc"))
	assert.Equal(t, "ñba", Reverse("abñ"))
}

func TestDetermineCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Category
	}{
		{name: "single word", raw: "radar", want: domain.CategoryWord},
		{name: "phrase", raw: "anita lava la tina", want: domain.CategoryPhrase},
		{name: "number", raw: "12321", want: domain.CategoryNumber},
		{name: "digits with space is a phrase", raw: "12 21", want: domain.CategoryPhrase},
		{name: "mixed alphanumeric", raw: "a1a", want: domain.CategoryWord},
		{name: "tab is not a space", raw: "ab\tba", want: domain.CategoryWord},
		{name: "punctuated digits", raw: "1-1", want: domain.CategoryWord},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetermineCategory(tc.raw))
		})
	}
}

func TestCheck(t *testing.T) {
	c := newTestChecker()

	tests := []struct {
		name      string
		text      string
		opts      domain.Options
		canonical string
		want      bool
		category  domain.Category
	}{
		{
			name:      "phrase",
			text:      "Anita lava la tina",
			opts:      domain.DefaultOptions(),
			canonical: "anitalavalatina",
			want:      true,
			category:  domain.CategoryPhrase,
		},
		{
			name:      "number",
			text:      "12321",
			opts:      domain.DefaultOptions(),
			canonical: "12321",
			want:      true,
			category:  domain.CategoryNumber,
		},
		{
			name:      "not a palindrome",
			text:      "hello",
			opts:      domain.DefaultOptions(),
			canonical: "hello",
			want:      false,
			category:  domain.CategoryWord,
		},
		{
			name:      "case sensitive",
			text:      "Radar",
			opts:      domain.Options{IgnoreSpaces: true, IgnorePunctuation: true},
			canonical: "Radar",
			want:      false,
			category:  domain.CategoryWord,
		},
		{
			name:      "spaces kept",
			text:      "nurses run",
			opts:      domain.Options{IgnoreCase: true, IgnorePunctuation: true},
			canonical: "nurses run",
			want:      false,
			category:  domain.CategoryPhrase,
		},
		{
			name:      "punctuation only",
			text:      "!?",
			opts:      domain.DefaultOptions(),
			canonical: "",
			want:      false,
			category:  domain.CategoryWord,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := c.Check(tc.text, tc.opts)
			assert.Equal(t, tc.text, res.OriginalText)
			assert.Equal(t, tc.canonical, res.CanonicalText)
			assert.Equal(t, tc.want, res.IsPalindrome)
			assert.Equal(t, Reverse(tc.canonical), res.ReversedText)
			assert.Equal(t, len([]rune(tc.canonical)), res.Length)
			assert.Equal(t, tc.category, res.Category)
			assert.Equal(t, Message(tc.text, tc.want), res.Message)
		})
	}
}

func TestCanonicalize(t *testing.T) {
	c := newTestChecker()
	assert.Equal(t, "amanaplanacanalpanama", c.Canonicalize("A man, a plan, a canal: Panamá"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "'ana' is a palindrome!", Message("ana", true))
	assert.Equal(t, "'hello' is not a palindrome.", Message("hello", false))
}
