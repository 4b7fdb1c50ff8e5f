package reports

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MaxPieSlices membatasi jumlah potongan pie/donut chart.
const MaxPieSlices = 6

// OtherLabel adalah label potongan gabungan untuk kategori yang meluber.
const OtherLabel = "Other"

// Slice adalah satu potongan pie/donut chart.
type Slice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// PieSlices menyusun potongan pie dari daftar grup. Output maksimal maxSlices
// potongan; bila grup lebih banyak, sisanya (yang terkecil) digabung menjadi
// satu potongan Other yang nilainya jumlah kategori yang digabung.
func PieSlices(groups []Group, maxSlices int) []Slice {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})

	if maxSlices <= 0 || len(sorted) <= maxSlices {
		out := make([]Slice, len(sorted))
		for i, g := range sorted {
			out[i] = Slice{Label: g.Label, Value: g.Total}
		}
		return out
	}

	out := make([]Slice, 0, maxSlices)
	for _, g := range sorted[:maxSlices-1] {
		out = append(out, Slice{Label: g.Label, Value: g.Total})
	}
	other := decimal.Zero
	for _, g := range sorted[maxSlices-1:] {
		other = other.Add(g.Total)
	}
	return append(out, Slice{Label: OtherLabel, Value: other})
}
