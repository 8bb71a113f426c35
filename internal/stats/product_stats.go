package stats

import (
	"math"
	"sort"

	"labfeedback-backend/internal/catalog"
	"labfeedback-backend/internal/models"
)

// ProductStat aggregates every rating a product has received. The rating
// distribution is keyed by the literal rating values 1–5.
type ProductStat struct {
	ProductID          string      `json:"productId"`
	ProductName        string      `json:"productName"`
	LabName            string      `json:"labName"`
	TotalRatings       int         `json:"totalRatings"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	TotalComments      int         `json:"totalComments"`
	LastRated          *string     `json:"lastRated"`
}

// ProductStats groups entries by product and accumulates the rating
// histogram, comment count and last-rated timestamp per product. Entries
// whose product id is not in the catalog are skipped silently. The average
// is derived from the histogram and rounded to two decimals. Results are
// sorted by total ratings descending, then average rating descending.
func ProductStats(labs []models.Lab, entries []models.FeedbackEntry) []ProductStat {
	index := catalog.BuildIndex(labs)
	byProduct := make(map[string]*ProductStat)

	for i := range entries {
		e := &entries[i]
		info, ok := index[e.TableID]
		if !ok {
			continue
		}

		st, ok := byProduct[e.TableID]
		if !ok {
			st = &ProductStat{
				ProductID:          e.TableID,
				ProductName:        info.Product.Name,
				LabName:            info.LabName,
				RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
			}
			byProduct[e.TableID] = st
		}

		st.TotalRatings++
		if e.Rating >= 1 && e.Rating <= 5 {
			st.RatingDistribution[e.Rating]++
		}
		if e.HasComment() {
			st.TotalComments++
		}
		// Timestamps are ISO 8601 strings, so lexicographic max is the
		// latest submission.
		if st.LastRated == nil || e.Timestamp > *st.LastRated {
			ts := e.Timestamp
			st.LastRated = &ts
		}
	}

	out := make([]ProductStat, 0, len(byProduct))
	for _, st := range byProduct {
		sum := 0
		for rating, count := range st.RatingDistribution {
			sum += rating * count
		}
		if st.TotalRatings > 0 {
			st.AverageRating = math.Round(float64(sum)/float64(st.TotalRatings)*100) / 100
		}
		out = append(out, *st)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalRatings != out[j].TotalRatings {
			return out[i].TotalRatings > out[j].TotalRatings
		}
		return out[i].AverageRating > out[j].AverageRating
	})
	return out
}
