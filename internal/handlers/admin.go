package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"labfeedback-backend/internal/apperr"
	"labfeedback-backend/internal/catalog"
	"labfeedback-backend/internal/middleware"
	"labfeedback-backend/internal/repository"
	"labfeedback-backend/internal/stats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// adminSessionTTL matches the admin panel's 12-hour session window.
const adminSessionTTL = 12 * time.Hour

type AdminHandler struct {
	adminStore    AdminStore
	feedbackStore FeedbackStore
	userStore     UserStore
	labStore      LabStore
	jwtSecret     string
}

func NewAdminHandler(adminStore AdminStore, feedbackStore FeedbackStore, userStore UserStore, labStore LabStore, jwtSecret string) *AdminHandler {
	return &AdminHandler{
		adminStore:    adminStore,
		feedbackStore: feedbackStore,
		userStore:     userStore,
		labStore:      labStore,
		jwtSecret:     jwtSecret,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- POST /admin/login ---

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validationf("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, apperr.Validationf("username and password are required"))
		return
	}

	admin, err := h.adminStore.FindByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	// The credential is a single seeded pair compared as-is.
	if admin == nil || admin.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	if err := h.adminStore.TouchLastLogin(r.Context(), admin.Username); err != nil {
		log.Printf("Error updating last login for %s: %v", admin.Username, err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username":    admin.Username,
		"permissions": admin.Permissions,
		"jti":         uuid.New().String(),
		"exp":         time.Now().Add(adminSessionTTL).Unix(),
		"iat":         time.Now().Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		log.Printf("Error signing JWT: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":       tokenString,
		"username":    admin.Username,
		"permissions": admin.Permissions,
	})
}

// --- GET /admin/feedback ---

func (h *AdminHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackStore.Find(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// --- GET /admin/feedback/export ---

// ExportFeedback streams the (optionally filtered) raw feedback as CSV, with
// product ids resolved to catalog names.
func (h *AdminHandler) ExportFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackStore.Find(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	labs, err := h.labStore.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	index := catalog.BuildIndex(labs)

	log.Printf("📤 Feedback export (%d entries) requested by %s",
		len(entries), middleware.GetAdminUser(r.Context()))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=feedback-%s.csv", time.Now().Format("2006-01-02")))

	cw := csv.NewWriter(w)
	cw.Write([]string{"Name", "Email", "Department", "Product", "Rating", "Comment", "Timestamp"})
	for _, e := range entries {
		product := e.TableID
		if info, ok := index[e.TableID]; ok {
			product = info.Product.Name
		}
		cw.Write([]string{
			e.StudentName,
			e.StudentEmail,
			e.StudentDepartment,
			product,
			strconv.Itoa(e.Rating),
			e.Comment,
			e.Timestamp,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// --- GET /admin/leaderboard ---

func (h *AdminHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.feedbackStore.Find(r.Context(), repository.FeedbackFilter{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.Leaderboard(users, entries))
}

// --- GET /admin/product-stats ---

func (h *AdminHandler) ProductStats(w http.ResponseWriter, r *http.Request) {
	labs, err := h.labStore.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.feedbackStore.Find(r.Context(), repository.FeedbackFilter{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.ProductStats(labs, entries))
}

func filterFromQuery(r *http.Request) repository.FeedbackFilter {
	return repository.FeedbackFilter{
		Email:      r.URL.Query().Get("email"),
		ProductID:  r.URL.Query().Get("productId"),
		Department: r.URL.Query().Get("department"),
	}
}
