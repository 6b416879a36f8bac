package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/soundpost/internal/voices"
)

func TestBuildRejectsEmptyText(t *testing.T) {
	reg := voices.NewRegistry()

	cases := []string{"", " ", "\t", "\n", "  \t\n  "}
	for _, text := range cases {
		_, err := Build(reg, text, Requested("Asteria"))
		assert.ErrorIs(t, err, ErrEmptyText, "text %q should be rejected", text)
	}
}

func TestBuildResolvesRequestedVoice(t *testing.T) {
	reg := voices.NewRegistry()

	req, err := Build(reg, "hello", Requested("Zeus"))
	require.NoError(t, err)
	assert.Equal(t, "hello", req.Text)
	assert.Equal(t, "Zeus", req.Voice.Name)
	assert.Equal(t, "aura-zeus-en", req.Voice.Model)
}

func TestBuildDefaultsWhenAbsent(t *testing.T) {
	reg := voices.NewRegistry()

	req, err := Build(reg, "hello", Default())
	require.NoError(t, err)
	assert.Equal(t, voices.DefaultName, req.Voice.Name)
}

func TestBuildFallsBackOnUnknownVoice(t *testing.T) {
	reg := voices.NewRegistry()

	req, err := Build(reg, "hi", Requested("NotARealVoice"))
	require.NoError(t, err, "unknown voices fall back to the default rather than failing")
	assert.Equal(t, voices.DefaultName, req.Voice.Name)
}

func TestBuildPreservesText(t *testing.T) {
	reg := voices.NewRegistry()

	// Surrounding whitespace is preserved; only all-whitespace input is invalid.
	req, err := Build(reg, "  padded  ", Default())
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", req.Text)
}

func TestSelectionName(t *testing.T) {
	name, ok := Requested("Luna").Name()
	assert.True(t, ok)
	assert.Equal(t, "Luna", name)

	_, ok = Default().Name()
	assert.False(t, ok)
}
