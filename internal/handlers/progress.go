package handlers

import (
	"net/http"

	"labfeedback-backend/internal/apperr"
)

type ProgressHandler struct {
	userStore UserStore
}

func NewProgressHandler(userStore UserStore) *ProgressHandler {
	return &ProgressHandler{userStore: userStore}
}

// --- GET /progress?email= ---

// GetProgress exposes the authoritative reviewed set so clients can treat
// their locally cached progress as a cache, not a second source of truth.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, apperr.Validationf("email is required"))
		return
	}

	user, err := h.userStore.FindByEmail(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, apperr.NotFoundf("no progress recorded for %s", email))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"email":             user.Email,
		"completedFeedback": user.CompletedFeedback,
		"isCompleted":       user.Completed(),
		"completionDate":    user.CompletionDate,
	})
}
