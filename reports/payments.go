package reports

import (
	"github.com/shopspring/decimal"
)

// PaymentReport adalah analisis revenue per metode pembayaran.
type PaymentReport struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	Revenue Table   `json:"revenue"`
	Pie     []Slice `json:"proportion"`
}

// BuildPaymentReport menjumlahkan revenue per metode pembayaran dalam rentang
// filter, urut menurun.
func BuildPaymentReport(payments Table, f FilterState) (*PaymentReport, error) {
	filtered := f.apply(payments)

	summary, err := GroupSum(filtered, []string{"method_name"}, "revenue")
	if err != nil {
		return nil, err
	}

	report := &PaymentReport{Pie: PieSlices(summary, MaxPieSlices)}
	rows := make([]Row, 0, len(summary))
	for _, g := range summary {
		report.TotalRevenue = report.TotalRevenue.Add(g.Total)
		rows = append(rows, Row{"method_name": g.Key[0], "revenue": g.Total})
	}
	report.Revenue = Table{
		Schema: Schema{
			Name: FamilyPaymentMethods,
			Key:  "method_name",
			Columns: []Column{
				{Name: "method_name", Kind: KindString},
				{Name: "revenue", Kind: KindMoney},
			},
		},
		Rows: rows,
	}
	return report, nil
}
