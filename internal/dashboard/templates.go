package dashboard

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

//go:embed notfound.html
var notFoundHTML []byte

// ServeIndex serves the embedded HTML shell.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// ServeNotFound serves the HTML not-found page for unknown non-API paths.
func (d *Dashboard) ServeNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(notFoundHTML)
}
