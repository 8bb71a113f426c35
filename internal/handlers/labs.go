package handlers

import "net/http"

type LabHandler struct {
	labStore LabStore
}

func NewLabHandler(labStore LabStore) *LabHandler {
	return &LabHandler{labStore: labStore}
}

// --- GET /labs ---

func (h *LabHandler) List(w http.ResponseWriter, r *http.Request) {
	labs, err := h.labStore.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, labs)
}
