package handlers

import (
	"net/http"
	"time"

	"labfeedback-backend/internal/catalog"
	"labfeedback-backend/internal/models"
)

type InitHandler struct {
	labStore   LabStore
	adminStore AdminStore
	adminSeed  models.Admin
}

func NewInitHandler(labStore LabStore, adminStore AdminStore, adminSeed models.Admin) *InitHandler {
	return &InitHandler{
		labStore:   labStore,
		adminStore: adminStore,
		adminSeed:  adminSeed,
	}
}

// --- POST /init ---

// Initialize seeds the static catalog and the admin credential if the
// collections are empty. Safe to call repeatedly.
func (h *InitHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	labsSeeded, err := h.labStore.Seed(r.Context(), catalog.Labs())
	if err != nil {
		writeError(w, err)
		return
	}

	admin := h.adminSeed
	adminSeeded, err := h.adminStore.Seed(r.Context(), &admin)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Database initialized successfully",
		"labsSeeded":  labsSeeded,
		"adminSeeded": adminSeeded,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
