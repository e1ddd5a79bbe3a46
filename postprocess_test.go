package twcss

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostProcessChainsInOrder(t *testing.T) {
	upper := PostProcessFunc(func(css string) (string, error) { return strings.ToUpper(css), nil })
	banner := PostProcessFunc(func(css string) (string, error) { return "/* built */\n" + css, nil })

	out, err := PostProcess(".p-4 {}", upper, banner)
	require.NoError(t, err)
	assert.Equal(t, "/* built */\n.P-4 {}", out)
}

func TestPostProcessStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	fail := PostProcessFunc(func(string) (string, error) { return "", boom })
	after := PostProcessFunc(func(css string) (string, error) { called = true; return css, nil })

	_, err := PostProcess("x", fail, after)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "post-processor 0")
	assert.False(t, called)
}

func TestPostProcessNone(t *testing.T) {
	out, err := PostProcess("x")
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}
