package reports

// OrderReport adalah riwayat dan analisis pesanan.
type OrderReport struct {
	TotalOrders int64 `json:"total_orders"`
	Completed   int64 `json:"completed"`
	Cancelled   int64 `json:"cancelled"`
	DineIn      int64 `json:"dine_in"`
	TakeAway    int64 `json:"take_away"`

	DailyOrders  []DatePoint `json:"daily_orders"`
	HourlyOrders []HourCount `json:"hourly_orders"`
	ServicePie   []Slice     `json:"service_type_distribution"`
	StatusPie    []Slice     `json:"status_distribution"`
	Orders       Table       `json:"orders"`
}

// BuildOrderReport merangkum pesanan dalam rentang filter. Nama yang
// ditampilkan per order diresolusi dari customer terdaftar atau nama tamu.
func BuildOrderReport(orders Table, f FilterState) (*OrderReport, error) {
	filtered := f.apply(orders)

	report := &OrderReport{TotalOrders: int64(filtered.Len())}
	for _, row := range filtered.Rows {
		switch asString(row["order_status"]) {
		case "Completed":
			report.Completed++
		case "Cancelled":
			report.Cancelled++
		}
		switch asString(row["service_type"]) {
		case "Dine In":
			report.DineIn++
		case "Take Away":
			report.TakeAway++
		}
	}

	var err error
	report.DailyOrders, err = DailyCountSeries(filtered, "order_date")
	if err != nil {
		return nil, err
	}
	report.HourlyOrders, err = HourlyCounts(filtered, "order_time")
	if err != nil {
		return nil, err
	}

	services, err := GroupCount(filtered, []string{"service_type"})
	if err != nil {
		return nil, err
	}
	report.ServicePie = PieSlices(services, MaxPieSlices)

	statuses, err := GroupCount(filtered, []string{"order_status"})
	if err != nil {
		return nil, err
	}
	report.StatusPie = PieSlices(statuses, MaxPieSlices)

	// Tabel tampilan dengan nama dan tipe pelanggan yang sudah diresolusi.
	rows := make([]Row, 0, filtered.Len())
	for _, row := range filtered.Rows {
		name, customerType := DisplayName(asString(row["customer_name"]), asString(row["guest_name"]))
		rows = append(rows, Row{
			"order_id":      row["order_id"],
			"name":          name,
			"customer_type": customerType,
			"service_type":  row["service_type"],
			"order_status":  row["order_status"],
			"method_name":   row["method_name"],
			"order_time":    row["order_time"],
		})
	}
	report.Orders = Table{
		Schema: Schema{
			Name: FamilyOrders,
			Key:  "order_id",
			Columns: []Column{
				{Name: "order_id", Kind: KindInt},
				{Name: "name", Kind: KindString},
				{Name: "customer_type", Kind: KindString},
				{Name: "service_type", Kind: KindString},
				{Name: "order_status", Kind: KindString},
				{Name: "method_name", Kind: KindString},
				{Name: "order_time", Kind: KindDateTime},
			},
		},
		Rows: rows,
	}
	return report, nil
}
