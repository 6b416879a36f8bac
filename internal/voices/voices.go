// Package voices holds the static registry of Deepgram Aura voices.
//
// The registry is built once at process start and never mutated afterwards,
// so it is safe for unsynchronized concurrent reads. It is the sole
// authority on which voice identifiers may reach the upstream provider.
package voices

// Voice pairs a human-readable display name with the upstream model
// identifier Deepgram expects.
type Voice struct {
	Name  string // display name, unique within the registry
	Model string // Aura model identifier (e.g. "aura-asteria-en")
}

// DefaultName is the display name of the voice used when a request names no
// voice, or names one the registry does not know.
const DefaultName = "Asteria"

// catalog lists every supported voice in presentation order.
var catalog = []Voice{
	{Name: "Asteria", Model: "aura-asteria-en"}, // female, American
	{Name: "Orpheus", Model: "aura-orpheus-en"}, // male, American
	{Name: "Angus", Model: "aura-angus-en"},     // male, Irish
	{Name: "Arcas", Model: "aura-arcas-en"},     // male, American
	{Name: "Athena", Model: "aura-athena-en"},   // female, British
	{Name: "Helios", Model: "aura-helios-en"},   // male, British
	{Name: "Hera", Model: "aura-hera-en"},       // female, American
	{Name: "Luna", Model: "aura-luna-en"},       // female, American
	{Name: "Orion", Model: "aura-orion-en"},     // male, American
	{Name: "Perseus", Model: "aura-perseus-en"}, // male, American
	{Name: "Stella", Model: "aura-stella-en"},   // female, American
	{Name: "Zeus", Model: "aura-zeus-en"},       // male, American
}

// Registry is an immutable name-to-voice lookup table.
type Registry struct {
	byName map[string]Voice
	order  []Voice
}

// NewRegistry builds the registry from the built-in catalog.
func NewRegistry() *Registry {
	byName := make(map[string]Voice, len(catalog))
	order := make([]Voice, len(catalog))
	for i, v := range catalog {
		byName[v.Name] = v
		order[i] = v
	}
	return &Registry{byName: byName, order: order}
}

// Lookup returns the voice registered under name. The second return value
// reports whether the name is known; an unknown name is not an error, it is
// a request for the caller to use Default.
func (r *Registry) Lookup(name string) (Voice, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// All returns every registered voice in presentation order. The returned
// slice is a copy and may be modified freely by the caller.
func (r *Registry) All() []Voice {
	out := make([]Voice, len(r.order))
	copy(out, r.order)
	return out
}

// Default returns the platform-wide default voice.
func (r *Registry) Default() Voice {
	return r.byName[DefaultName]
}
