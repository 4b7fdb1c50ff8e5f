package reports

import (
	"github.com/shopspring/decimal"
)

// DashboardReport adalah ringkasan performa restoran di halaman utama.
type DashboardReport struct {
	TotalOrders       int64           `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgOrderValue     decimal.Decimal `json:"avg_order_value"`
	TotalReservations int64           `json:"total_reservations"`
	TotalCustomers    int64           `json:"total_customers"`
	TotalMenuItems    int64           `json:"total_menu_items"`
	TotalTables       int64           `json:"total_tables"`
	AvgRating         decimal.Decimal `json:"avg_rating"`

	TopMenuItems   []Group     `json:"top_menu_items"`
	DailyRevenue   []DatePoint `json:"daily_revenue"`
	ServiceTypes   []Slice     `json:"service_type_distribution"`
	PaymentMethods []Slice     `json:"payment_method_distribution"`
}

// BuildDashboard menghitung ringkasan dashboard dari tabel yang sudah
// dimaterialisasi. Filter tanggal diterapkan pada orders, order details dan
// menu; metrik populasi (customer, meja, reservasi, rating) memakai seluruh
// data, mengikuti tampilan dashboard lama.
func BuildDashboard(orders, details, menu, reservations, customers, tables, reviews Table, f FilterState) (*DashboardReport, error) {
	ordersF := f.apply(orders)
	detailsF := f.apply(details)
	menuF := f.apply(menu)

	report := &DashboardReport{
		TotalOrders:       int64(ordersF.Len()),
		TotalReservations: int64(reservations.Len()),
		TotalCustomers:    int64(customers.Len()),
		TotalTables:       int64(tables.Len()),
	}

	revenue, err := GroupSum(detailsF, nil, "total_price")
	if err != nil {
		return nil, err
	}
	report.TotalRevenue = revenue[0].Total
	report.AvgOrderValue = AverageOrderValue(report.TotalRevenue, report.TotalOrders)

	report.TotalMenuItems, err = DistinctCount(menu, "menu_id")
	if err != nil {
		return nil, err
	}

	report.AvgRating, _, err = RatingStats(reviews, "rating")
	if err != nil {
		return nil, err
	}

	topMenu, err := GroupSum(menuF, []string{"item_name"}, "total_ordered")
	if err != nil {
		return nil, err
	}
	report.TopMenuItems = TopN(topMenu, 5)

	report.DailyRevenue, err = DailySeries(detailsF, "order_date", "total_price")
	if err != nil {
		return nil, err
	}

	services, err := GroupCount(ordersF, []string{"service_type"})
	if err != nil {
		return nil, err
	}
	report.ServiceTypes = PieSlices(services, MaxPieSlices)

	payments, err := GroupCount(ordersF, []string{"method_name"})
	if err != nil {
		return nil, err
	}
	report.PaymentMethods = PieSlices(payments, MaxPieSlices)

	return report, nil
}
