package styles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	s := Plain()
	assert.False(t, s.Enabled())
	assert.Equal(t, " - OVERDUE", s.Render(s.Error, " - OVERDUE"))
}

func TestNew_NonTerminalWriter(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)

	var buf bytes.Buffer
	s := New(&buf, p)

	assert.True(t, s.Enabled())
	// A buffer is not a terminal, so no colour codes are emitted.
	assert.NotContains(t, s.Render(s.Error, "OVERDUE"), "\x1b[")
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)

	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)
}
