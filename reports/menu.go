package reports

import (
	"github.com/shopspring/decimal"
)

// MenuReport adalah daftar menu dan performa penjualannya.
type MenuReport struct {
	TotalMenuItems int64           `json:"total_menu_items"`
	MemberAccess   int64           `json:"member_access"`
	GuestAccess    int64           `json:"guest_access"`
	TotalSold      decimal.Decimal `json:"total_sold"`

	TopItems    []Group `json:"top_items"`
	CategoryPie []Slice `json:"category_distribution"`
	Items       Table   `json:"items"`
}

// BuildMenuReport merangkum penjualan per menu dalam rentang filter. Filter
// akses (member only vs reguler) dan rentang harga berlaku sebelum agregasi.
// Member bisa mengakses seluruh menu; guest hanya menu reguler.
func BuildMenuReport(menu Table, f FilterState) (*MenuReport, error) {
	filtered := f.apply(menu)
	filtered = FilterMenuAccess(filtered, "member_only", f.Member)
	filtered = FilterPriceRange(filtered, "unit_price", f.MinPrice, f.MaxPrice)

	keys := []string{"menu_id", "item_name", "unit_price", "category_name", "member_only"}
	summary, err := GroupSum(filtered, keys, "total_ordered")
	if err != nil {
		return nil, err
	}

	report := &MenuReport{TotalMenuItems: int64(len(summary))}
	rows := make([]Row, 0, len(summary))
	var memberOnlyCount int64
	for _, g := range summary {
		report.TotalSold = report.TotalSold.Add(g.Total)
		if b, ok := g.Key[4].(bool); ok && b {
			memberOnlyCount++
		}
		rows = append(rows, Row{
			"menu_id":       g.Key[0],
			"item_name":     g.Key[1],
			"unit_price":    g.Key[2],
			"category_name": g.Key[3],
			"member_only":   g.Key[4],
			"total_ordered": g.Total.IntPart(),
		})
	}
	report.MemberAccess = report.TotalMenuItems
	report.GuestAccess = report.TotalMenuItems - memberOnlyCount

	report.Items = Table{
		Schema: Schema{
			Name: FamilyMenu,
			Key:  "menu_id",
			Columns: []Column{
				{Name: "menu_id", Kind: KindInt},
				{Name: "item_name", Kind: KindString},
				{Name: "unit_price", Kind: KindMoney},
				{Name: "category_name", Kind: KindString},
				{Name: "member_only", Kind: KindBool},
				{Name: "total_ordered", Kind: KindInt},
			},
		},
		Rows: rows,
	}

	topItems, err := GroupSum(filtered, []string{"item_name"}, "total_ordered")
	if err != nil {
		return nil, err
	}
	report.TopItems = TopN(topItems, 10)

	categories, err := GroupSum(filtered, []string{"category_name"}, "total_ordered")
	if err != nil {
		return nil, err
	}
	report.CategoryPie = PieSlices(categories, MaxPieSlices)

	return report, nil
}
