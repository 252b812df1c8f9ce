package client

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/baditaflorin/go_palindrome/internal/adapters/httpapi"
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/adapters/storage/memory"
	"github.com/baditaflorin/go_palindrome/internal/core/detection"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

func newTestClient(t *testing.T, samples ...string) *Client {
	t.Helper()

	log := logger.NewNop()
	checker := detection.NewChecker(normalizer.NewDefaultNormalizer(), log)
	store := memory.New(checker, log, memory.WithSamples(samples))
	server := httpapi.NewServer(httpapi.NewHandler(checker, store, log), httpapi.ServerConfig{
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		MaxRequestSize: 1 << 20,
	})

	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = server.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = server.Shutdown()
		_ = ln.Close()
	})

	return New("http://palindrome.test", WithDialer(func(string) (net.Conn, error) {
		return ln.Dial()
	}))
}

func TestClientCheck(t *testing.T) {
	c := newTestClient(t)

	res, err := c.Check("Anita lava la tina", domain.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.IsPalindrome)
	assert.Equal(t, "anitalavalatina", res.CanonicalText)

	res, err = c.Check("Anita lava la tina", domain.Options{IgnoreCase: true, IgnorePunctuation: true})
	require.NoError(t, err)
	assert.False(t, res.IsPalindrome)

	_, err = c.Check(" ", domain.DefaultOptions())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, errors.Is(err, domain.ErrRejected))
}

func TestClientQuickCheck(t *testing.T) {
	c := newTestClient(t)

	res, err := c.QuickCheck("A man, a plan, a canal: Panama")
	require.NoError(t, err)
	assert.Equal(t, "A man, a plan, a canal: Panama", res.Text)
	assert.True(t, res.IsPalindrome)
}

func TestClientCRUD(t *testing.T) {
	c := newTestClient(t, "radar", "12321")

	all, err := c.List()
	require.NoError(t, err)
	require.Len(t, all, 2)

	rec, err := c.Add("Anita lava la tina")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.ID)
	assert.Equal(t, domain.CategoryPhrase, rec.Category)

	_, err = c.Add("anita lava la tina")
	assert.ErrorIs(t, err, domain.ErrRejected)
	assert.False(t, IsNotFound(err))

	got, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, rec.CanonicalText, got.CanonicalText)

	numbers, err := c.ByCategory("number")
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, "12321", numbers[0].OriginalText)

	require.NoError(t, c.Delete(3))
	_, err = c.Get(3)
	assert.True(t, IsNotFound(err))

	err = c.Delete(3)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)

	stats, err := c.Statistics()
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{Total: 2, Words: 1, Numbers: 1, AverageLength: 5}, stats)
}

func TestAPIErrorIs(t *testing.T) {
	notFound := &APIError{StatusCode: 404, Message: "palindrome not found: id 1"}
	assert.ErrorIs(t, notFound, domain.ErrNotFound)
	assert.NotErrorIs(t, notFound, domain.ErrRejected)

	invalid := &APIError{StatusCode: 400, Message: domain.ErrInvalidInput.Error()}
	assert.ErrorIs(t, invalid, domain.ErrInvalidInput)
	assert.NotErrorIs(t, invalid, domain.ErrRejected)

	rejected := &APIError{StatusCode: 400, Message: domain.ErrDuplicate.Error()}
	assert.ErrorIs(t, rejected, domain.ErrRejected)
	assert.ErrorIs(t, rejected, domain.ErrDuplicate)
	assert.NotErrorIs(t, rejected, domain.ErrNotPalindrome)
	assert.Contains(t, rejected.Error(), "400")

	notPalindrome := &APIError{StatusCode: 400, Message: domain.ErrNotPalindrome.Error()}
	assert.ErrorIs(t, notPalindrome, domain.ErrRejected)
	assert.ErrorIs(t, notPalindrome, domain.ErrNotPalindrome)

	malformed := &APIError{StatusCode: 400, Message: "Invalid request: unexpected end of JSON input"}
	assert.NotErrorIs(t, malformed, domain.ErrRejected)
	assert.NotErrorIs(t, malformed, domain.ErrInvalidInput)
}

func TestClientQuickCheckKeepsSlashes(t *testing.T) {
	c := newTestClient(t)

	res, err := c.QuickCheck("a/../b")
	require.NoError(t, err)
	assert.Equal(t, "a/../b", res.Text)
	assert.False(t, res.IsPalindrome)

	res, err = c.QuickCheck("ab//ba")
	require.NoError(t, err)
	assert.Equal(t, "ab//ba", res.Text)
	assert.True(t, res.IsPalindrome)
}
