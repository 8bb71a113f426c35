// Package stats computes the read-side aggregations: the user leaderboard
// and the per-product rating table. Everything is recomputed from the raw
// feedback log on every call — no caches, no incremental counters. That is
// fine at this scale (a few dozen products, one event's worth of entries).
package stats

import (
	"sort"

	"labfeedback-backend/internal/models"
)

// LeaderboardEntry is a user with rating stats freshly derived from the
// feedback log. The denormalized totals on the stored user document are
// overwritten here so the board never drifts from the entries.
type LeaderboardEntry struct {
	models.User
	IsCompleted bool `json:"isCompleted"`
}

// Leaderboard ranks every known user by (1) completion status, (2) distinct
// reviewed-product count, (3) average rating, all descending. Ties beyond
// that keep their incoming order.
func Leaderboard(users []models.User, entries []models.FeedbackEntry) []LeaderboardEntry {
	byEmail := make(map[string][]models.FeedbackEntry, len(users))
	for _, e := range entries {
		byEmail[e.StudentEmail] = append(byEmail[e.StudentEmail], e)
	}

	board := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		fb := byEmail[u.Email]
		total := 0
		for _, e := range fb {
			total += e.Rating
		}
		avg := 0.0
		if len(fb) > 0 {
			avg = float64(total) / float64(len(fb))
		}
		u.TotalRating = total
		u.AverageRating = avg
		board = append(board, LeaderboardEntry{User: u, IsCompleted: u.Completed()})
	}

	sort.SliceStable(board, func(i, j int) bool {
		a, b := board[i], board[j]
		if a.IsCompleted != b.IsCompleted {
			return a.IsCompleted
		}
		if len(a.CompletedFeedback) != len(b.CompletedFeedback) {
			return len(a.CompletedFeedback) > len(b.CompletedFeedback)
		}
		return a.AverageRating > b.AverageRating
	})
	return board
}
