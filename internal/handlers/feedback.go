package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"labfeedback-backend/internal/apperr"
	"labfeedback-backend/internal/catalog"
	"labfeedback-backend/internal/models"
	"labfeedback-backend/internal/notify"

	"github.com/go-playground/validator/v10"
)

type FeedbackHandler struct {
	feedbackStore FeedbackStore
	userStore     UserStore
	products      catalog.Index
	notifier      notify.Notifier
	validate      *validator.Validate
}

func NewFeedbackHandler(feedbackStore FeedbackStore, userStore UserStore, products catalog.Index, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackStore: feedbackStore,
		userStore:     userStore,
		products:      products,
		notifier:      notifier,
		validate:      validator.New(),
	}
}

type SubmitFeedbackRequest struct {
	StudentName       string `json:"studentName" validate:"required"`
	StudentEmail      string `json:"studentEmail" validate:"required,email"`
	StudentDepartment string `json:"studentDepartment" validate:"required"`
	Rating            int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment           string `json:"comment"`
	TableID           string `json:"tableId" validate:"required"`
	Timestamp         string `json:"timestamp" validate:"required"`
}

// --- POST /feedback ---

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validationf("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, apperr.Validationf("invalid field %s (%s)", verrs[0].Field(), verrs[0].Tag()))
			return
		}
		writeError(w, apperr.Validationf("invalid request body"))
		return
	}

	if !h.products.Has(req.TableID) {
		writeError(w, apperr.Validationf("unknown product id %q", req.TableID))
		return
	}

	entry := &models.FeedbackEntry{
		StudentName:       req.StudentName,
		StudentEmail:      req.StudentEmail,
		StudentDepartment: req.StudentDepartment,
		Rating:            req.Rating,
		Comment:           req.Comment,
		TableID:           req.TableID,
		Timestamp:         req.Timestamp,
	}

	if err := h.feedbackStore.Create(r.Context(), entry); err != nil {
		writeError(w, err)
		return
	}

	user, justCompleted, err := h.userStore.RecordProduct(r.Context(), req.StudentEmail, req.TableID)
	if err != nil {
		writeError(w, err)
		return
	}

	// Completion notice is best-effort and must not delay the response.
	if justCompleted {
		go func(u models.User) {
			if err := h.notifier.CompletionNotice(context.Background(), &u); err != nil {
				log.Printf("Error sending completion notice to %s: %v", u.Email, err)
			}
		}(*user)
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Feedback submitted successfully!",
		"id":      entry.ID,
	})
}

// --- GET /feedback/stats ---

func (h *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	out, err := h.feedbackStore.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
