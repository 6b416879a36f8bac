package voices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTrip(t *testing.T) {
	reg := NewRegistry()
	for _, want := range reg.All() {
		got, ok := reg.Lookup(want.Name)
		require.True(t, ok, "voice %q should be registered", want.Name)
		assert.Equal(t, want, got)
	}
}

func TestRegistryAll(t *testing.T) {
	reg := NewRegistry()
	all := reg.All()

	require.Len(t, all, 12)
	assert.Equal(t, Voice{Name: "Asteria", Model: "aura-asteria-en"}, all[0])
	assert.Equal(t, Voice{Name: "Zeus", Model: "aura-zeus-en"}, all[len(all)-1])
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	all := reg.All()
	all[0] = Voice{Name: "Mangled", Model: "mangled"}

	fresh := reg.All()
	assert.Equal(t, "Asteria", fresh[0].Name, "mutating the returned slice must not affect the registry")
}

func TestRegistryDefault(t *testing.T) {
	reg := NewRegistry()
	def := reg.Default()

	assert.Equal(t, DefaultName, def.Name)
	assert.Equal(t, "aura-asteria-en", def.Model)
}

func TestRegistryLookupUnknown(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Lookup("NotARealVoice")
	assert.False(t, ok)
}
