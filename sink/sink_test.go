package sink

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSink_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf)

	require.NoError(t, s.Write("first"))
	require.NoError(t, s.Write("second"))
	assert.Equal(t, "first\nsecond\n", buf.String())
	assert.NoError(t, s.Close())
}

func TestConsoleSink_FlushesBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriterSize(&buf, 4096)
	s := NewConsoleSink(w)

	require.NoError(t, s.Write("hello"))
	// Flushed immediately despite the buffered writer.
	assert.Equal(t, "hello\n", buf.String())
}

func TestConsoleSink_DefaultsToStderr(t *testing.T) {
	s := NewConsoleSink(nil)
	assert.NotNil(t, s.w)
}

func TestStringSink_CaptureAndClear(t *testing.T) {
	s := NewStringSink()

	require.NoError(t, s.Write("one"))
	require.NoError(t, s.Write("two"))
	require.NoError(t, s.Flush())

	assert.Equal(t, "one\ntwo", s.Output())
	assert.Equal(t, []string{"one", "two"}, s.Lines())

	s.Clear()
	assert.Empty(t, s.Output())
	assert.Empty(t, s.Lines())
	assert.NoError(t, s.Close())
}

func TestStringSink_LinesIsACopy(t *testing.T) {
	s := NewStringSink()
	require.NoError(t, s.Write("one"))

	lines := s.Lines()
	lines[0] = "mutated"
	assert.Equal(t, "one", s.Output())
}
