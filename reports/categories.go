package reports

import (
	"github.com/shopspring/decimal"
)

// CategoryReport adalah analisis penjualan per kategori menu.
type CategoryReport struct {
	TotalCategories int64           `json:"total_categories"`
	TotalSold       decimal.Decimal `json:"total_sold"`

	Sales Table   `json:"sales"`
	Pie   []Slice `json:"proportion"`
}

// BuildCategoryReport menjumlahkan kuantitas terjual per kategori dalam
// rentang filter, urut menurun.
func BuildCategoryReport(categories Table, f FilterState) (*CategoryReport, error) {
	filtered := f.apply(categories)

	summary, err := GroupSum(filtered, []string{"category_name"}, "total_qty")
	if err != nil {
		return nil, err
	}

	report := &CategoryReport{
		TotalCategories: int64(len(summary)),
		Pie:             PieSlices(summary, MaxPieSlices),
	}
	rows := make([]Row, 0, len(summary))
	for _, g := range summary {
		report.TotalSold = report.TotalSold.Add(g.Total)
		rows = append(rows, Row{"category_name": g.Key[0], "total_qty": g.Total.IntPart()})
	}
	report.Sales = Table{
		Schema: Schema{
			Name: FamilyCategories,
			Key:  "category_name",
			Columns: []Column{
				{Name: "category_name", Kind: KindString},
				{Name: "total_qty", Kind: KindInt},
			},
		},
		Rows: rows,
	}
	return report, nil
}
