package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labfeedback-backend/internal/catalog"
	"labfeedback-backend/internal/notify"
	"labfeedback-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackFixture() (*FeedbackHandler, *fakeFeedbackStore, *fakeUserStore, *notify.MockNotifier) {
	feedbackStore := &fakeFeedbackStore{}
	userStore := newFakeUserStore()
	notifier := notify.NewMockNotifier()
	h := NewFeedbackHandler(feedbackStore, userStore, catalog.BuildIndex(catalog.Labs()), notifier)
	return h, feedbackStore, userStore, notifier
}

func submitBody(productID string, rating int) map[string]interface{} {
	return map[string]interface{}{
		"studentName":       "Asha Rao",
		"studentEmail":      "asha@vcet.edu",
		"studentDepartment": "CSE-DS",
		"rating":            rating,
		"comment":           "works well",
		"tableId":           productID,
		"timestamp":         "2025-03-01T10:00:00.000Z",
	}
}

func postFeedback(h *FeedbackHandler, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestSubmitRoundTrip(t *testing.T) {
	h, feedbackStore, _, _ := newFeedbackFixture()

	rec := postFeedback(h, submitBody("a1", 5))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)

	// Querying by email returns the entry with every field intact.
	entries, err := feedbackStore.Find(context.Background(), repository.FeedbackFilter{Email: "asha@vcet.edu"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Asha Rao", e.StudentName)
	assert.Equal(t, "asha@vcet.edu", e.StudentEmail)
	assert.Equal(t, "CSE-DS", e.StudentDepartment)
	assert.Equal(t, 5, e.Rating)
	assert.Equal(t, "works well", e.Comment)
	assert.Equal(t, "a1", e.TableID)
	assert.Equal(t, "2025-03-01T10:00:00.000Z", e.Timestamp)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		t.Run(fmt.Sprintf("rating %d", rating), func(t *testing.T) {
			h, feedbackStore, userStore, _ := newFeedbackFixture()

			rec := postFeedback(h, submitBody("a1", rating))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, feedbackStore.entries)
			assert.Empty(t, userStore.users)
		})
	}
}

func TestSubmitRejectsUnknownProduct(t *testing.T) {
	h, feedbackStore, userStore, _ := newFeedbackFixture()

	rec := postFeedback(h, submitBody("zz99", 4))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown product id")
	// Nothing persisted on rejection.
	assert.Empty(t, feedbackStore.entries)
	assert.Empty(t, userStore.users)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	h, _, _, _ := newFeedbackFixture()

	body := submitBody("a1", 4)
	delete(body, "studentName")
	rec := postFeedback(h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	h, _, _, _ := newFeedbackFixture()

	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitStorageFailureIsMasked(t *testing.T) {
	h, feedbackStore, _, _ := newFeedbackFixture()
	feedbackStore.err = errors.New("mongo: connection reset")

	rec := postFeedback(h, submitBody("a1", 4))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "mongo")
}

func TestSubmitDuplicateProductKeepsProgressFlat(t *testing.T) {
	h, feedbackStore, userStore, _ := newFeedbackFixture()

	require.Equal(t, http.StatusCreated, postFeedback(h, submitBody("a1", 5)).Code)
	require.Equal(t, http.StatusCreated, postFeedback(h, submitBody("a1", 3)).Code)

	// Both entries stored and counted in the total volume...
	assert.Len(t, feedbackStore.entries, 2)
	// ...but the distinct reviewed-set did not grow.
	u := userStore.users["asha@vcet.edu"]
	require.NotNil(t, u)
	assert.Equal(t, []string{"a1"}, u.CompletedFeedback)
}

func TestSubmitCompletionIsMonotonicAndNotifiesOnce(t *testing.T) {
	h, _, userStore, notifier := newFeedbackFixture()

	index := catalog.BuildIndex(catalog.Labs())
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	require.Len(t, ids, 25)

	// Review 24 distinct products: not completed yet.
	for _, id := range ids[:24] {
		require.Equal(t, http.StatusCreated, postFeedback(h, submitBody(id, 4)).Code)
	}
	u := userStore.users["asha@vcet.edu"]
	require.NotNil(t, u)
	assert.Nil(t, u.CompletionDate)
	assert.Empty(t, notifier.Recipients())

	// The 25th crosses the threshold.
	require.Equal(t, http.StatusCreated, postFeedback(h, submitBody(ids[24], 4)).Code)
	require.NotNil(t, userStore.users["asha@vcet.edu"].CompletionDate)
	completedAt := *userStore.users["asha@vcet.edu"].CompletionDate

	assert.Eventually(t, func() bool {
		return len(notifier.Recipients()) == 1
	}, time.Second, 10*time.Millisecond)

	// Further submissions never revert the timestamp or re-notify.
	require.Equal(t, http.StatusCreated, postFeedback(h, submitBody(ids[0], 5)).Code)
	require.NotNil(t, userStore.users["asha@vcet.edu"].CompletionDate)
	assert.Equal(t, completedAt, *userStore.users["asha@vcet.edu"].CompletionDate)
	assert.Len(t, notifier.Recipients(), 1)
}

func TestStatsEmptyStore(t *testing.T) {
	h, _, _, _ := newFeedbackFixture()

	req := httptest.NewRequest(http.MethodGet, "/feedback/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":0,"totalFeedback":0,"averageRating":0}`, rec.Body.String())
}

func TestStatsAggregates(t *testing.T) {
	h, _, _, _ := newFeedbackFixture()

	body := submitBody("a1", 5)
	require.Equal(t, http.StatusCreated, postFeedback(h, body).Code)
	body = submitBody("a2", 4)
	body["studentEmail"] = "ravi@vcet.edu"
	require.Equal(t, http.StatusCreated, postFeedback(h, body).Code)
	body = submitBody("a3", 4)
	require.Equal(t, http.StatusCreated, postFeedback(h, body).Code)

	req := httptest.NewRequest(http.MethodGet, "/feedback/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":2,"totalFeedback":3,"averageRating":4.33}`, rec.Body.String())
}
