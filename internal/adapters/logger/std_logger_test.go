package logger

import (
	"bytes"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdLogger(t *testing.T) {
	lg, err := NewStdLogger()
	require.NoError(t, err)
	require.NotNil(t, lg)

	lg.Debug("debug record", "key", "value")
	lg.Info("info record", "key", "value")
	assert.NoError(t, lg.Close())
}

func TestNewCustomStdLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := NewCustomStdLogger(l.Config{Output: &buf, JsonFormat: true})
	require.NoError(t, err)

	lg.Info("stored palindrome", "id", 1)
	require.NoError(t, lg.Close())
	assert.Contains(t, buf.String(), "stored palindrome")
}

func TestNopLogger(t *testing.T) {
	lg := NewNop()
	lg.Error("ignored", "key", "value")
	assert.NoError(t, lg.Close())
}
