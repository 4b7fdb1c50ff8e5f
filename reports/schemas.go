package reports

// Nama report family. Dipakai sebagai kunci dataset pada katalog join
// dan sebagai path segment pada endpoint laporan.
const (
	FamilyCustomers      = "customers"
	FamilyCategories     = "categories"
	FamilyPaymentMethods = "payment_methods"
	FamilyTables         = "tables"
	FamilyTableUsage     = "table_usage"
	FamilyMenu           = "menu"
	FamilyOrders         = "orders"
	FamilyOrderDetails   = "order_details"
	FamilyReservations   = "reservations"
	FamilyReviews        = "reviews"
)

// Schemas adalah katalog schema untuk semua report family. Data access layer
// wajib menghasilkan baris yang lolos validasi schema ini.
var Schemas = map[string]Schema{
	FamilyCustomers: {
		Name: FamilyCustomers,
		Key:  "customer_id",
		Columns: []Column{
			{Name: "customer_id", Kind: KindInt},
			{Name: "customer_name", Kind: KindString},
			{Name: "email", Kind: KindString},
			{Name: "phone", Kind: KindString},
			{Name: "total_spending", Kind: KindMoney},
		},
	},
	FamilyCategories: {
		Name:       FamilyCategories,
		Key:        "category_id",
		DateColumn: "order_date",
		Columns: []Column{
			{Name: "category_id", Kind: KindInt},
			{Name: "category_name", Kind: KindString},
			{Name: "total_qty", Kind: KindInt},
			{Name: "order_date", Kind: KindDate},
		},
	},
	FamilyPaymentMethods: {
		Name:       FamilyPaymentMethods,
		Key:        "payment_id",
		DateColumn: "order_date",
		Columns: []Column{
			{Name: "payment_id", Kind: KindInt},
			{Name: "method_name", Kind: KindString},
			{Name: "revenue", Kind: KindMoney},
			{Name: "order_date", Kind: KindDate},
		},
	},
	FamilyTables: {
		Name: FamilyTables,
		Key:  "table_id",
		Columns: []Column{
			{Name: "table_id", Kind: KindInt},
			{Name: "table_number", Kind: KindInt},
			{Name: "capacity", Kind: KindInt},
			{Name: "location", Kind: KindString},
			{Name: "status", Kind: KindString},
		},
	},
	FamilyTableUsage: {
		Name:       FamilyTableUsage,
		Key:        "table_id",
		DateColumn: "order_date",
		Columns: []Column{
			{Name: "table_id", Kind: KindInt},
			{Name: "table_number", Kind: KindInt},
			{Name: "capacity", Kind: KindInt},
			{Name: "times_used", Kind: KindInt},
			{Name: "order_date", Kind: KindDate},
		},
	},
	FamilyMenu: {
		Name:       FamilyMenu,
		Key:        "menu_id",
		DateColumn: "order_date",
		Columns: []Column{
			{Name: "menu_id", Kind: KindInt},
			{Name: "item_name", Kind: KindString},
			{Name: "unit_price", Kind: KindMoney},
			{Name: "member_only", Kind: KindBool},
			{Name: "category_id", Kind: KindInt},
			{Name: "category_name", Kind: KindString},
			{Name: "total_ordered", Kind: KindInt},
			{Name: "order_date", Kind: KindDate},
		},
	},
	FamilyOrders: {
		Name:       FamilyOrders,
		Key:        "order_id",
		DateColumn: "order_date",
		Columns: []Column{
			{Name: "order_id", Kind: KindInt},
			{Name: "customer_id", Kind: KindInt},
			{Name: "guest_name", Kind: KindString},
			{Name: "service_type", Kind: KindString},
			{Name: "table_id", Kind: KindInt},
			{Name: "payment_id", Kind: KindInt},
			{Name: "order_status", Kind: KindString},
			{Name: "order_time", Kind: KindDateTime},
			{Name: "method_name", Kind: KindString},
			{Name: "table_number", Kind: KindInt},
			{Name: "customer_name", Kind: KindString},
			{Name: "order_date", Kind: KindDate},
		},
	},
	FamilyOrderDetails: {
		Name:       FamilyOrderDetails,
		Key:        "order_detail_id",
		DateColumn: "order_date",
		Columns: []Column{
			{Name: "order_detail_id", Kind: KindInt},
			{Name: "order_id", Kind: KindInt},
			{Name: "menu_id", Kind: KindInt},
			{Name: "quantity", Kind: KindInt},
			{Name: "total_price", Kind: KindMoney},
			{Name: "request_note", Kind: KindString},
			{Name: "item_name", Kind: KindString},
			{Name: "unit_price", Kind: KindMoney},
			{Name: "order_date", Kind: KindDate},
		},
	},
	FamilyReservations: {
		Name:       FamilyReservations,
		Key:        "reservation_id",
		DateColumn: "reservation_date",
		Columns: []Column{
			{Name: "reservation_id", Kind: KindInt},
			{Name: "customer_id", Kind: KindInt},
			{Name: "table_id", Kind: KindInt},
			{Name: "reservation_date", Kind: KindDate},
			{Name: "check_in", Kind: KindString},
			{Name: "check_out", Kind: KindString},
			{Name: "party_size", Kind: KindInt},
			{Name: "status", Kind: KindString},
			{Name: "special_request", Kind: KindString},
			{Name: "table_number", Kind: KindInt},
			{Name: "capacity", Kind: KindInt},
			{Name: "customer_name", Kind: KindString},
		},
	},
	FamilyReviews: {
		Name:       FamilyReviews,
		Key:        "review_id",
		DateColumn: "review_date",
		Columns: []Column{
			{Name: "review_id", Kind: KindInt},
			{Name: "order_id", Kind: KindInt},
			{Name: "rating", Kind: KindInt},
			{Name: "comment", Kind: KindString},
			{Name: "review_date", Kind: KindDate},
			{Name: "customer_name", Kind: KindString},
		},
	},
}
