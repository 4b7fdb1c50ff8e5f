package reports

import (
	"github.com/shopspring/decimal"
)

// OrderDetailReport adalah analisis item per pesanan dan revenue.
type OrderDetailReport struct {
	TotalItems        int64           `json:"total_items"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgPerOrder       decimal.Decimal `json:"avg_per_order"`
	TotalTransactions int64           `json:"total_transactions"`

	DailyRevenue []DatePoint `json:"daily_revenue"`
	TopProducts  []Group     `json:"top_products"`
	Details      Table       `json:"details"`
}

// BuildOrderDetailReport merangkum detail pesanan dalam rentang filter.
// Subtotal per baris dihitung ulang dari quantity x unit_price.
func BuildOrderDetailReport(details Table, f FilterState) (*OrderDetailReport, error) {
	filtered := f.apply(details)

	report := &OrderDetailReport{}

	qty, err := GroupSum(filtered, nil, "quantity")
	if err != nil {
		return nil, err
	}
	report.TotalItems = qty[0].Total.IntPart()

	revenue, err := GroupSum(filtered, nil, "total_price")
	if err != nil {
		return nil, err
	}
	report.TotalRevenue = revenue[0].Total

	report.TotalTransactions, err = DistinctCount(filtered, "order_id")
	if err != nil {
		return nil, err
	}
	if filtered.Empty() {
		// Tabel kosong tetap laporan valid dengan metrik nol.
		report.TotalTransactions = 0
	}
	report.AvgPerOrder = AverageOrderValue(report.TotalRevenue, report.TotalTransactions)

	report.DailyRevenue, err = DailySeries(filtered, "order_date", "total_price")
	if err != nil {
		return nil, err
	}

	products, err := GroupSum(filtered, []string{"item_name"}, "quantity")
	if err != nil {
		return nil, err
	}
	report.TopProducts = TopN(products, 10)

	// Tabel tampilan dengan subtotal.
	rows := make([]Row, 0, filtered.Len())
	for _, row := range filtered.Rows {
		unitPrice, _ := asDecimal(row["unit_price"])
		qty, _ := asDecimal(row["quantity"])
		rows = append(rows, Row{
			"order_id":     row["order_id"],
			"item_name":    row["item_name"],
			"quantity":     row["quantity"],
			"unit_price":   row["unit_price"],
			"subtotal":     unitPrice.Mul(qty),
			"request_note": row["request_note"],
		})
	}
	report.Details = Table{
		Schema: Schema{
			Name: FamilyOrderDetails,
			Key:  "order_id",
			Columns: []Column{
				{Name: "order_id", Kind: KindInt},
				{Name: "item_name", Kind: KindString},
				{Name: "quantity", Kind: KindInt},
				{Name: "unit_price", Kind: KindMoney},
				{Name: "subtotal", Kind: KindMoney},
				{Name: "request_note", Kind: KindString},
			},
		},
		Rows: rows,
	}
	return report, nil
}
