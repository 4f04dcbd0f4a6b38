package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// HandleBooklet streams a single PDF from the booklet directory. Anything
// that is not an existing .pdf regular file inside the directory is a 404,
// including paths that would escape the directory.
func (h *Handler) HandleBooklet(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/booklets/")

	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(h.dir, filepath.FromSlash(filename))
	if !isWithin(h.dir, full) {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// isWithin reports whether child resolves inside root, rejecting path
// traversal.
func isWithin(root, child string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absChild)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
