package api

import (
	"encoding/json"
	"net/http"

	"github.com/docrelay/docstruct/internal/doctree"
	"github.com/docrelay/docstruct/internal/listpatch"
)

// handlePatch is the synchronous surface over the list patcher: labeled
// lines in, the same lines with numbering gaps filled out.
func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 8<<20)

	var req struct {
		Lines []doctree.Line `json:"lines"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	patched := listpatch.Patch(req.Lines)
	if patched == nil {
		patched = []doctree.Line{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"lines": patched})
}
