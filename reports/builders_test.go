package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func seedOrders(t *testing.T) Table {
	return mustTable(t, FamilyOrders, []Row{
		{"order_id": int64(1), "customer_id": int64(10), "customer_name": "Budi", "guest_name": "", "service_type": "Dine In", "order_status": "Completed", "method_name": "Cash", "order_time": time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), "order_date": day("2024-05-01")},
		{"order_id": int64(2), "customer_id": nil, "customer_name": nil, "guest_name": "Tamu A", "service_type": "Take Away", "order_status": "Completed", "method_name": "QRIS", "order_time": time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC), "order_date": day("2024-05-01")},
		{"order_id": int64(3), "customer_id": int64(11), "customer_name": "Siti", "guest_name": "", "service_type": "Dine In", "order_status": "Cancelled", "method_name": "Cash", "order_time": time.Date(2024, 5, 2, 13, 0, 0, 0, time.UTC), "order_date": day("2024-05-02")},
	})
}

func seedDetails(t *testing.T) Table {
	return mustTable(t, FamilyOrderDetails, []Row{
		{"order_detail_id": int64(1), "order_id": int64(1), "menu_id": int64(5), "quantity": int64(2), "total_price": money("70000"), "item_name": "Nasi Goreng", "unit_price": money("35000"), "request_note": "", "order_date": day("2024-05-01")},
		{"order_detail_id": int64(2), "order_id": int64(1), "menu_id": int64(6), "quantity": int64(1), "total_price": money("10000"), "item_name": "Teh", "unit_price": money("10000"), "request_note": "", "order_date": day("2024-05-01")},
		{"order_detail_id": int64(3), "order_id": int64(3), "menu_id": int64(5), "quantity": int64(1), "total_price": money("35000"), "item_name": "Nasi Goreng", "unit_price": money("35000"), "request_note": "pedas", "order_date": day("2024-05-02")},
	})
}

func TestBuildOrderReport(t *testing.T) {
	report, err := BuildOrderReport(seedOrders(t), DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalOrders)
	assert.Equal(t, int64(2), report.Completed)
	assert.Equal(t, int64(1), report.Cancelled)
	assert.Equal(t, int64(2), report.DineIn)
	assert.Equal(t, int64(1), report.TakeAway)

	assert.Len(t, report.DailyOrders, 2)
	assert.Equal(t, int64(2), report.DailyOrders[0].Count)

	// Nama tampilan: customer terdaftar jadi Member, sisanya Guest.
	assert.Equal(t, "Budi", report.Orders.Rows[0]["name"])
	assert.Equal(t, CustomerTypeMember, report.Orders.Rows[0]["customer_type"])
	assert.Equal(t, "Tamu A", report.Orders.Rows[1]["name"])
	assert.Equal(t, CustomerTypeGuest, report.Orders.Rows[1]["customer_type"])
}

func TestBuildOrderReportDateFilter(t *testing.T) {
	f := DefaultFilterState().WithDateRange(day("2024-05-02"), day("2024-05-02"))
	report, err := BuildOrderReport(seedOrders(t), f)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), report.TotalOrders)
	assert.Equal(t, int64(1), report.Cancelled)
}

func TestBuildOrderDetailReport(t *testing.T) {
	report, err := BuildOrderDetailReport(seedDetails(t), DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(4), report.TotalItems)
	assert.Equal(t, "115000", report.TotalRevenue.String())
	assert.Equal(t, int64(2), report.TotalTransactions)
	assert.Equal(t, "57500", report.AvgPerOrder.String())

	assert.Equal(t, "Nasi Goreng", report.TopProducts[0].Label)
	assert.Equal(t, "3", report.TopProducts[0].Total.String())

	// Subtotal dihitung ulang dari quantity x unit_price.
	subtotal := report.Details.Rows[0]["subtotal"].(decimal.Decimal)
	assert.Equal(t, "70000", subtotal.String())
}

func TestBuildOrderDetailReportEmpty(t *testing.T) {
	report, err := BuildOrderDetailReport(mustTable(t, FamilyOrderDetails, nil), DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(0), report.TotalItems)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.AvgPerOrder.IsZero())
}

func TestBuildDashboard(t *testing.T) {
	datasets := joinDatasets(t)
	reservations := mustTable(t, FamilyReservations, []Row{
		{"reservation_id": int64(1), "party_size": int64(4), "check_in": "18:00:00"},
	})
	tables := mustTable(t, FamilyTables, []Row{
		{"table_id": int64(1), "table_number": int64(1), "capacity": int64(4)},
		{"table_id": int64(2), "table_number": int64(2), "capacity": int64(2)},
	})
	reviews := mustTable(t, FamilyReviews, []Row{
		{"review_id": int64(1), "order_id": int64(1), "rating": int64(5), "review_date": day("2024-05-02")},
		{"review_id": int64(2), "order_id": int64(3), "rating": int64(4), "review_date": day("2024-05-03")},
	})

	report, err := BuildDashboard(
		seedOrders(t), seedDetails(t), datasets[FamilyMenu],
		reservations, datasets[FamilyCustomers], tables, reviews,
		DefaultFilterState(),
	)
	assert.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalOrders)
	assert.Equal(t, "115000", report.TotalRevenue.String())
	assert.Equal(t, "38333.33", report.AvgOrderValue.String())
	assert.Equal(t, int64(1), report.TotalReservations)
	assert.Equal(t, int64(2), report.TotalCustomers)
	assert.Equal(t, int64(2), report.TotalMenuItems)
	assert.Equal(t, int64(2), report.TotalTables)
	assert.Equal(t, "4.5", report.AvgRating.String())

	assert.NotEmpty(t, report.TopMenuItems)
	assert.Len(t, report.DailyRevenue, 2)
	assert.Len(t, report.ServiceTypes, 2)
}

func TestBuildCustomerReport(t *testing.T) {
	customers := mustTable(t, FamilyCustomers, []Row{
		{"customer_id": int64(10), "customer_name": "Budi", "email": "budi@mail.com", "phone": "0811", "total_spending": money("300000")},
		{"customer_id": int64(11), "customer_name": "Siti", "email": "siti@mail.com", "phone": "0822", "total_spending": money("150000")},
		{"customer_id": int64(12), "customer_name": "Andi", "email": "andi@mail.com", "phone": "0833", "total_spending": money("0")},
	})

	report, err := BuildCustomerReport(customers, seedOrders(t), seedDetails(t), DefaultFilterState())
	assert.NoError(t, err)

	// Budi: order 1 = 80000; Siti: order 3 = 35000; Andi tidak aktif.
	assert.Equal(t, int64(2), report.ActiveCustomers)
	assert.Equal(t, "115000", report.TotalSpending.String())
	assert.Equal(t, "57500", report.AvgSpending.String())

	assert.Equal(t, "Budi", report.TopSpenders[0].Label)
	assert.Equal(t, "80000", report.TopSpenders[0].Total.String())

	// Kedua pembelanja aktif jatuh ke kelas < 100rb.
	assert.Equal(t, "< 100rb", report.Buckets[0].Label)
	assert.Equal(t, int64(2), report.Buckets[0].Count)

	// Order tamu (order 2) tidak menaikkan pengeluaran siapa pun.
	assert.Equal(t, 3, report.Customers.Len())
}

func TestBuildCustomerReportSearch(t *testing.T) {
	customers := mustTable(t, FamilyCustomers, []Row{
		{"customer_id": int64(10), "customer_name": "Budi", "email": "budi@mail.com", "phone": "0811", "total_spending": money("300000")},
		{"customer_id": int64(11), "customer_name": "Siti", "email": "siti@mail.com", "phone": "0822", "total_spending": money("150000")},
	})

	f := DefaultFilterState().WithSearch("siti")
	report, err := BuildCustomerReport(customers, seedOrders(t), seedDetails(t), f)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Customers.Len())
	assert.Equal(t, "Siti", report.Customers.Rows[0]["customer_name"])
}

func TestBuildMenuReport(t *testing.T) {
	menu := mustTable(t, FamilyMenu, []Row{
		{"menu_id": int64(5), "item_name": "Nasi Goreng", "unit_price": money("35000"), "member_only": false, "category_name": "Makanan", "total_ordered": int64(2), "order_date": day("2024-05-01")},
		{"menu_id": int64(5), "item_name": "Nasi Goreng", "unit_price": money("35000"), "member_only": false, "category_name": "Makanan", "total_ordered": int64(1), "order_date": day("2024-05-02")},
		{"menu_id": int64(7), "item_name": "Paket Member", "unit_price": money("50000"), "member_only": true, "category_name": "Makanan", "total_ordered": int64(4), "order_date": day("2024-05-01")},
	})

	report, err := BuildMenuReport(menu, DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(2), report.TotalMenuItems)
	assert.Equal(t, "7", report.TotalSold.String())
	// Member mengakses semua menu, guest hanya menu reguler.
	assert.Equal(t, int64(2), report.MemberAccess)
	assert.Equal(t, int64(1), report.GuestAccess)

	assert.Equal(t, "Paket Member", report.TopItems[0].Label)

	// Filter akses reguler menyisakan satu item.
	regular, err := BuildMenuReport(menu, DefaultFilterState().WithMember(MemberRegular))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), regular.TotalMenuItems)
	assert.Equal(t, "Nasi Goreng", regular.TopItems[0].Label)
}

func TestBuildMenuReportPriceFilter(t *testing.T) {
	menu := mustTable(t, FamilyMenu, []Row{
		{"menu_id": int64(5), "item_name": "Teh", "unit_price": money("10000"), "member_only": false, "category_name": "Minuman", "total_ordered": int64(3), "order_date": day("2024-05-01")},
		{"menu_id": int64(6), "item_name": "Steak", "unit_price": money("120000"), "member_only": false, "category_name": "Makanan", "total_ordered": int64(1), "order_date": day("2024-05-01")},
	})

	max := money("50000")
	report, err := BuildMenuReport(menu, DefaultFilterState().WithPriceRange(nil, &max))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalMenuItems)
	assert.Equal(t, "Teh", report.TopItems[0].Label)
}

func TestBuildReservationReport(t *testing.T) {
	reservations := mustTable(t, FamilyReservations, []Row{
		{"reservation_id": int64(1), "customer_name": "Budi", "table_number": int64(3), "reservation_date": day("2024-05-01"), "check_in": "18:00:00", "check_out": "20:00:00", "party_size": int64(4), "status": "Completed"},
		{"reservation_id": int64(2), "customer_name": "Siti", "table_number": int64(3), "reservation_date": day("2024-05-02"), "check_in": "18:30:00", "check_out": "1 days 21:00:00", "party_size": int64(2), "status": "Completed"},
		{"reservation_id": int64(3), "customer_name": "Andi", "table_number": int64(1), "reservation_date": day("2024-05-03"), "check_in": "12:00:00", "check_out": "13:00:00", "party_size": int64(3), "status": "Cancelled"},
	})

	report, err := BuildReservationReport(reservations, DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalReservations)
	assert.Equal(t, "3", report.FavoriteTable)
	assert.Equal(t, 18, report.PopularHour)
	assert.Equal(t, "3", report.AvgPartySize.String())

	// Waktu check-out berkualifikasi hari dinormalkan untuk tampilan.
	assert.Equal(t, "21:00:00", report.Reservations.Rows[1]["check_out"])
}

func TestBuildReviewReport(t *testing.T) {
	reviews := mustTable(t, FamilyReviews, []Row{
		{"review_id": int64(1), "order_id": int64(1), "rating": int64(5), "comment": "Mantap", "review_date": day("2024-05-01")},
		{"review_id": int64(2), "order_id": int64(2), "rating": int64(4), "comment": "", "review_date": day("2024-05-01")},
		{"review_id": int64(3), "order_id": int64(3), "rating": int64(4), "comment": "", "review_date": day("2024-05-02")},
	})

	report, err := BuildReviewReport(reviews, DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalReviews)
	assert.Equal(t, "4.33", report.AvgRating.String())
	assert.Equal(t, int64(4), report.MostCommon)

	// Distribusi rating urut naik berdasarkan nilainya.
	assert.Equal(t, int64(4), report.RatingDist[0].Key[0])
	assert.Equal(t, int64(5), report.RatingDist[1].Key[0])

	assert.Len(t, report.DailyRating, 2)
	assert.Equal(t, "4.5", report.DailyRating[0].Total.String())
}

func TestBuildTableReport(t *testing.T) {
	tables := mustTable(t, FamilyTables, []Row{
		{"table_id": int64(1), "table_number": int64(1), "capacity": int64(4), "location": "Indoor", "status": "available"},
		{"table_id": int64(2), "table_number": int64(2), "capacity": int64(6), "location": "Outdoor", "status": "occupied"},
	})
	usage := mustTable(t, FamilyTableUsage, []Row{
		{"table_id": int64(1), "table_number": int64(1), "capacity": int64(4), "times_used": int64(5), "order_date": day("2024-05-01")},
		{"table_id": int64(2), "table_number": int64(2), "capacity": int64(6), "times_used": int64(2), "order_date": day("2024-05-01")},
	})

	report, err := BuildTableReport(tables, usage, DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(2), report.TotalTables)
	assert.Equal(t, int64(10), report.TotalCapacity)
	assert.Equal(t, "1", report.FavoriteTable)
}

func TestBuildCategoryReport(t *testing.T) {
	report, err := BuildCategoryReport(seedCategories(t), DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalCategories)
	assert.Equal(t, "24", report.TotalSold.String())
	assert.Equal(t, "Coffee", report.Pie[0].Label)
	assert.Equal(t, int64(14), report.Sales.Rows[0]["total_qty"])
}

func TestBuildPaymentReport(t *testing.T) {
	payments := mustTable(t, FamilyPaymentMethods, []Row{
		{"payment_id": int64(1), "method_name": "Cash", "revenue": money("80000"), "order_date": day("2024-05-01")},
		{"payment_id": int64(2), "method_name": "QRIS", "revenue": money("10000"), "order_date": day("2024-05-01")},
		{"payment_id": int64(1), "method_name": "Cash", "revenue": money("35000"), "order_date": day("2024-05-02")},
	})

	report, err := BuildPaymentReport(payments, DefaultFilterState())
	assert.NoError(t, err)

	assert.Equal(t, "125000", report.TotalRevenue.String())
	assert.Equal(t, "Cash", report.Revenue.Rows[0]["method_name"])
	assert.Equal(t, "115000", report.Pie[0].Value.String())
}

func TestBuildCustomView(t *testing.T) {
	f := DefaultFilterState().
		WithRecipe("orders_customers").
		WithColumns([]string{"order_id", "email"})

	view, err := BuildCustomView(joinDatasets(t), f)
	assert.NoError(t, err)

	assert.Equal(t, 3, view.Len())
	assert.Equal(t, []string{"order_id", "email"}, view.Schema.ColumnNames())
}

func TestBuildCustomViewSearchAfterJoin(t *testing.T) {
	f := DefaultFilterState().
		WithRecipe("orders_customers").
		WithSearch("budi@mail.com")

	view, err := BuildCustomView(joinDatasets(t), f)
	assert.NoError(t, err)
	assert.Equal(t, 1, view.Len())
	assert.Equal(t, int64(1), view.Rows[0]["order_id"])
}

func TestBuildCustomViewUnknownRecipe(t *testing.T) {
	_, err := BuildCustomView(joinDatasets(t), DefaultFilterState().WithRecipe("tidak_ada"))
	assert.ErrorIs(t, err, ErrUnknownRecipe)
}
