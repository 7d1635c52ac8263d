package output_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vis/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_PlainWhenNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	styled := out.String("hello").Foreground(termenv.RGBColor("#FF0000"))
	_, err := out.WriteString(styled.String())

	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestRedirected(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "vis-*.log")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.True(t, output.Redirected(f))
	assert.False(t, output.Redirected(&bytes.Buffer{}))
}

func TestNew_PlainWhenRedirected(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")

	f, err := os.CreateTemp(t.TempDir(), "vis-*.log")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	out := output.New(f)
	assert.Equal(t, termenv.Ascii, out.Profile)
}
