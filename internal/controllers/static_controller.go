package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticController serves the built dashboard, falling back to index.html
// for client-side routes.
type StaticController struct {
	dir   string
	files http.Handler
}

func NewStaticController(dir string) *StaticController {
	return &StaticController{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}
}

func (sc *StaticController) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	clean := path.Clean("/" + r.URL.Path)
	info, err := os.Stat(filepath.Join(sc.dir, filepath.FromSlash(clean)))
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(sc.dir, "index.html"))
		return
	}
	sc.files.ServeHTTP(w, r)
}

// NotFound answers unknown API paths with a JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, []byte(`{"error":"Not Found"}`))
}
