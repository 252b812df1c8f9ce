// palindrome_test.go
package palindrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWithDefaults(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		canonical string
		expected  bool
		category  Category
	}{
		{
			name:      "Phrase with spaces",
			text:      "Anita lava la tina",
			canonical: "anitalavalatina",
			expected:  true,
			category:  "phrase",
		},
		{
			name:      "Number",
			text:      "12321",
			canonical: "12321",
			expected:  true,
			category:  "number",
		},
		{
			name:      "Accents and punctuation",
			text:      "¿Acaso hubo búhos acá?",
			canonical: "acasohubobuhosaca",
			expected:  true,
			category:  "phrase",
		},
		{
			name:      "Not a palindrome",
			text:      "hello",
			canonical: "hello",
			expected:  false,
			category:  "word",
		},
		{
			name:      "Only punctuation",
			text:      "...",
			canonical: "",
			expected:  false,
			category:  "word",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckWithDefaults(tc.text)
			assert.Equal(t, tc.expected, result.IsPalindrome, "result: %+v", result)
			assert.Equal(t, tc.canonical, result.CanonicalText)
			assert.Equal(t, tc.category, result.Category)
		})
	}
}

func TestCheckerOptions(t *testing.T) {
	c, err := New(WithoutLogging())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.IgnoreCase = false
	assert.False(t, c.Check("Radar", opts).IsPalindrome)
	assert.Equal(t, "Radar", c.Normalize("Ra dar!", opts))
}

func TestIsPalindrome(t *testing.T) {
	assert.False(t, IsPalindrome(""))
	assert.True(t, IsPalindrome("x"))
	assert.Equal(t, Category("phrase"), DetermineCategory("a b"))
}

func TestNewWithDefaultLogger(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.True(t, c.Check("racecar", DefaultOptions()).IsPalindrome)
}
