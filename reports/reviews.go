package reports

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ReviewReport adalah analisis rating dan ulasan pelanggan.
type ReviewReport struct {
	TotalReviews int64           `json:"total_reviews"`
	AvgRating    decimal.Decimal `json:"avg_rating"`
	MostCommon   int64           `json:"most_common_rating"`

	RatingDist  []Group     `json:"rating_distribution"`
	DailyRating []DatePoint `json:"daily_rating"`
	Reviews     Table       `json:"reviews"`
}

// BuildReviewReport merangkum review dalam rentang filter. Distribusi rating
// diurutkan naik berdasarkan nilai rating seperti tampilan histogram.
func BuildReviewReport(reviews Table, f FilterState) (*ReviewReport, error) {
	filtered := f.apply(reviews)

	report := &ReviewReport{
		TotalReviews: int64(filtered.Len()),
		Reviews:      filtered,
	}

	var err error
	report.AvgRating, report.MostCommon, err = RatingStats(filtered, "rating")
	if err != nil {
		return nil, err
	}

	dist, err := GroupCount(filtered, []string{"rating"})
	if err != nil {
		return nil, err
	}
	sort.Slice(dist, func(i, j int) bool {
		ri, _ := dist[i].Key[0].(int64)
		rj, _ := dist[j].Key[0].(int64)
		return ri < rj
	})
	report.RatingDist = dist

	report.DailyRating, err = DailyAverageSeries(filtered, "review_date", "rating")
	if err != nil {
		return nil, err
	}
	return report, nil
}
