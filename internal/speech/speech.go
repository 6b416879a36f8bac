// Package speech defines the synthesis request type and the builder that
// validates raw caller input into one.
package speech

import (
	"errors"
	"strings"

	"github.com/nadzzz/soundpost/internal/voices"
)

// ErrEmptyText is returned by Build when the text is empty or contains only
// whitespace. It is always detected locally and never reaches the upstream
// provider.
var ErrEmptyText = errors.New("speech: text is empty")

// Request is a validated synthesis request. The voice is always a registry
// entry; callers never see a request carrying an unregistered identifier.
type Request struct {
	Text  string
	Voice voices.Voice
}

// Selection names the voice a caller asked for, or records that they asked
// for none. It separates "caller said nothing" from "caller said something
// we may not know" so the fallback decision happens in Build, in one place.
type Selection struct {
	name      string
	requested bool
}

// Requested selects the voice with the given display name.
func Requested(name string) Selection {
	return Selection{name: name, requested: true}
}

// Default selects the platform-wide default voice.
func Default() Selection {
	return Selection{}
}

// Name returns the requested display name and whether one was requested.
func (s Selection) Name() (string, bool) {
	return s.name, s.requested
}

// Build validates text and resolves the voice selection against the
// registry. Unknown or absent voice names resolve to the registry default;
// this fallback is the uniform policy for every surface. Build is a pure
// transformation with no side effects.
func Build(reg *voices.Registry, text string, sel Selection) (Request, error) {
	if strings.TrimSpace(text) == "" {
		return Request{}, ErrEmptyText
	}

	voice := reg.Default()
	if sel.requested {
		if v, ok := reg.Lookup(sel.name); ok {
			voice = v
		}
	}

	return Request{Text: text, Voice: voice}, nil
}
