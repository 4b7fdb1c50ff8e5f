package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageOrderValue(t *testing.T) {
	// Tanpa order hasilnya nol, bukan pembagian dengan nol.
	assert.True(t, AverageOrderValue(money("100000"), 0).IsZero())
	assert.True(t, AverageOrderValue(money("100000"), -1).IsZero())

	assert.Equal(t, "33333.33", AverageOrderValue(money("100000"), 3).String())
	assert.Equal(t, "50000", AverageOrderValue(money("100000"), 2).String())
}

func TestDistinctCount(t *testing.T) {
	table := mustTable(t, FamilyOrderDetails, []Row{
		{"order_detail_id": int64(1), "order_id": int64(1)},
		{"order_detail_id": int64(2), "order_id": int64(1)},
		{"order_detail_id": int64(3), "order_id": int64(2)},
	})

	n, err := DistinctCount(table, "order_id")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = DistinctCount(table, "tidak_ada")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestRatingStats(t *testing.T) {
	table := mustTable(t, FamilyReviews, []Row{
		{"review_id": int64(1), "rating": int64(5)},
		{"review_id": int64(2), "rating": int64(4)},
		{"review_id": int64(3), "rating": int64(4)},
		{"review_id": int64(4), "rating": int64(2)},
	})

	avg, mode, err := RatingStats(table, "rating")
	assert.NoError(t, err)
	assert.Equal(t, "3.75", avg.String())
	assert.Equal(t, int64(4), mode)
}

func TestRatingStatsModeTieBreaksToLowest(t *testing.T) {
	table := mustTable(t, FamilyReviews, []Row{
		{"review_id": int64(1), "rating": int64(5)},
		{"review_id": int64(2), "rating": int64(3)},
		{"review_id": int64(3), "rating": int64(5)},
		{"review_id": int64(4), "rating": int64(3)},
	})

	_, mode, err := RatingStats(table, "rating")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), mode)
}

func TestRatingStatsEmpty(t *testing.T) {
	table := mustTable(t, FamilyReviews, nil)

	avg, mode, err := RatingStats(table, "rating")
	assert.NoError(t, err)
	assert.True(t, avg.IsZero())
	assert.Equal(t, int64(0), mode)
}

func TestExtractHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"18:30", 18},
		{"08:15:00", 8},
		{"1 days 18:30:00", 18},
		{"0 days 07:05:00", 7},
		{"", 0},
		{"bukan-jam", 0},
		{"25:00", 0},
		{"-3:00", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExtractHour(c.in), "input %q", c.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "-", FormatClock(""))
	assert.Equal(t, "18:30:00", FormatClock("18:30:00"))
	assert.Equal(t, "18:30:00", FormatClock("1 days 18:30:00"))
}

func TestDisplayName(t *testing.T) {
	name, typ := DisplayName("Budi", "")
	assert.Equal(t, "Budi", name)
	assert.Equal(t, CustomerTypeMember, typ)

	name, typ = DisplayName("", "Tamu A")
	assert.Equal(t, "Tamu A", name)
	assert.Equal(t, CustomerTypeGuest, typ)

	// Nama customer menang walaupun guest_name kebetulan terisi.
	name, typ = DisplayName("Siti", "Tamu B")
	assert.Equal(t, "Siti", name)
	assert.Equal(t, CustomerTypeMember, typ)
}
