package server

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/nadzzz/soundpost/internal/voices"
)

// The form page is embedded from an external file so it can be edited as
// plain HTML while still shipping inside the binary.
//
//go:embed templates/index.html.tmpl
var indexTemplate string

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

// indexData is the template payload for the form page.
type indexData struct {
	Voices       []voices.Voice
	DefaultVoice string
}

// handleIndex renders the interactive form. The page drives the base64
// endpoint from client-side script; it is a convenience on top of the API,
// not part of its contract.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Voices:       s.engine.Voices(),
		DefaultVoice: s.engine.DefaultVoice().Name,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		slog.Error("rendering index page", "error", err)
	}
}
