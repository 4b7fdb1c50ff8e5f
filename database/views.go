// Package database adalah data access layer dashboard: sembilan view query
// tetap yang memproyeksikan tabel transaksional menjadi row set per report
// family. Hasil query divalidasi terhadap schema family sebelum diserahkan ke
// mesin laporan, sehingga sumber data bisa diganti (MySQL di produksi, SQLite
// in-memory di test) tanpa menyentuh logika agregasi.
package database

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chikoci/Restaurant-Orders/reports"
)

// Store membungkus koneksi gorm untuk semua view query laporan.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// dateValue menormalkan hasil DATE(...) dari driver: NULL menjadi nil,
// string tanggal yang valid menjadi time.Time, sisanya dibiarkan string
// supaya dibuang saat filter (satu baris rusak tidak menggagalkan laporan).
func dateValue(raw *string) any {
	if raw == nil {
		return nil
	}
	if ts, err := time.Parse("2006-01-02", *raw); err == nil {
		return ts
	}
	return *raw
}

func strValue(raw *string) any {
	if raw == nil {
		return nil
	}
	return *raw
}

func intValue(raw *int64) any {
	if raw == nil {
		return nil
	}
	return *raw
}

func newTable(family string, rows []reports.Row) (reports.Table, error) {
	t, err := reports.NewTable(reports.Schemas[family], rows)
	if err != nil {
		return reports.Table{}, fmt.Errorf("materialize %s: %w", family, err)
	}
	return t, nil
}

// Customers mengembalikan daftar customer dengan total pengeluaran seumur
// hidup, urut menurun.
func (s *Store) Customers() (reports.Table, error) {
	var scanned []struct {
		CustomerID    int64
		CustomerName  string
		Email         string
		Phone         string
		TotalSpending decimal.Decimal
	}
	err := s.DB.Raw(`
		SELECT c.id AS customer_id, c.customer_name, c.email, c.phone,
		       COALESCE(SUM(od.total_price), 0) AS total_spending
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		LEFT JOIN order_details od ON od.order_id = o.id
		GROUP BY c.id, c.customer_name, c.email, c.phone
		ORDER BY total_spending DESC, c.id ASC`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch customers: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"customer_id":    r.CustomerID,
			"customer_name":  r.CustomerName,
			"email":          r.Email,
			"phone":          r.Phone,
			"total_spending": r.TotalSpending,
		}
	}
	return newTable(reports.FamilyCustomers, rows)
}

// Categories mengembalikan kuantitas terjual per kategori per tanggal order.
func (s *Store) Categories() (reports.Table, error) {
	var scanned []struct {
		CategoryID   int64
		CategoryName string
		TotalQty     int64
		OrderDate    *string
	}
	err := s.DB.Raw(`
		SELECT c.id AS category_id, c.category_name,
		       COALESCE(SUM(od.quantity), 0) AS total_qty,
		       DATE(o.order_time) AS order_date
		FROM categories c
		LEFT JOIN menus m ON m.category_id = c.id
		LEFT JOIN order_details od ON od.menu_id = m.id
		LEFT JOIN orders o ON o.id = od.order_id
		GROUP BY c.id, c.category_name, DATE(o.order_time)`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch categories: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"category_id":   r.CategoryID,
			"category_name": r.CategoryName,
			"total_qty":     r.TotalQty,
			"order_date":    dateValue(r.OrderDate),
		}
	}
	return newTable(reports.FamilyCategories, rows)
}

// PaymentMethods mengembalikan revenue per metode pembayaran per tanggal.
func (s *Store) PaymentMethods() (reports.Table, error) {
	var scanned []struct {
		PaymentID  int64
		MethodName string
		Revenue    decimal.Decimal
		OrderDate  *string
	}
	err := s.DB.Raw(`
		SELECT p.id AS payment_id, p.method_name,
		       COALESCE(SUM(od.total_price), 0) AS revenue,
		       DATE(o.order_time) AS order_date
		FROM payment_methods p
		LEFT JOIN orders o ON o.payment_id = p.id
		LEFT JOIN order_details od ON od.order_id = o.id
		GROUP BY p.id, p.method_name, DATE(o.order_time)`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch payment methods: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"payment_id":  r.PaymentID,
			"method_name": r.MethodName,
			"revenue":     r.Revenue,
			"order_date":  dateValue(r.OrderDate),
		}
	}
	return newTable(reports.FamilyPaymentMethods, rows)
}

// Tables mengembalikan daftar meja.
func (s *Store) Tables() (reports.Table, error) {
	var scanned []struct {
		TableID     int64
		TableNumber int64
		Capacity    int64
		Location    string
		Status      string
	}
	err := s.DB.Raw(`
		SELECT t.id AS table_id, t.table_number, t.capacity, t.location, t.status
		FROM tables t
		ORDER BY t.id ASC`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch tables: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"table_id":     r.TableID,
			"table_number": r.TableNumber,
			"capacity":     r.Capacity,
			"location":     r.Location,
			"status":       r.Status,
		}
	}
	return newTable(reports.FamilyTables, rows)
}

// TableUsage mengembalikan frekuensi pemakaian meja per tanggal order.
func (s *Store) TableUsage() (reports.Table, error) {
	var scanned []struct {
		TableID     int64
		TableNumber int64
		Capacity    int64
		TimesUsed   int64
		OrderDate   *string
	}
	err := s.DB.Raw(`
		SELECT t.id AS table_id, t.table_number, t.capacity,
		       COUNT(o.id) AS times_used,
		       DATE(o.order_time) AS order_date
		FROM tables t
		LEFT JOIN orders o ON o.table_id = t.id
		GROUP BY t.id, t.table_number, t.capacity, DATE(o.order_time)`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch table usage: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"table_id":     r.TableID,
			"table_number": r.TableNumber,
			"capacity":     r.Capacity,
			"times_used":   r.TimesUsed,
			"order_date":   dateValue(r.OrderDate),
		}
	}
	return newTable(reports.FamilyTableUsage, rows)
}

// Menu mengembalikan menu beserta total terjual per tanggal order.
func (s *Store) Menu() (reports.Table, error) {
	var scanned []struct {
		MenuID       int64
		ItemName     string
		UnitPrice    decimal.Decimal
		MemberOnly   bool
		CategoryID   int64
		CategoryName *string
		TotalOrdered int64
		OrderDate    *string
	}
	err := s.DB.Raw(`
		SELECT m.id AS menu_id, m.item_name, m.unit_price, m.member_only,
		       m.category_id, c.category_name,
		       COALESCE(SUM(od.quantity), 0) AS total_ordered,
		       DATE(o.order_time) AS order_date
		FROM menus m
		LEFT JOIN categories c ON c.id = m.category_id
		LEFT JOIN order_details od ON od.menu_id = m.id
		LEFT JOIN orders o ON o.id = od.order_id
		GROUP BY m.id, m.item_name, m.unit_price, m.member_only,
		         m.category_id, c.category_name, DATE(o.order_time)`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch menu: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"menu_id":       r.MenuID,
			"item_name":     r.ItemName,
			"unit_price":    r.UnitPrice,
			"member_only":   r.MemberOnly,
			"category_id":   r.CategoryID,
			"category_name": strValue(r.CategoryName),
			"total_ordered": r.TotalOrdered,
			"order_date":    dateValue(r.OrderDate),
		}
	}
	return newTable(reports.FamilyMenu, rows)
}

// Orders mengembalikan order lengkap dengan metode pembayaran, nomor meja dan
// nama customer, urut waktu terbaru.
func (s *Store) Orders() (reports.Table, error) {
	var scanned []struct {
		OrderID      int64
		CustomerID   *int64
		GuestName    string
		ServiceType  string
		TableID      int64
		PaymentID    int64
		OrderStatus  string
		OrderTime    time.Time
		MethodName   *string
		TableNumber  *int64
		CustomerName *string
		OrderDate    *string
	}
	err := s.DB.Raw(`
		SELECT o.id AS order_id, o.customer_id, o.guest_name, o.service_type,
		       o.table_id, o.payment_id, o.order_status, o.order_time,
		       p.method_name, t.table_number, c.customer_name,
		       DATE(o.order_time) AS order_date
		FROM orders o
		LEFT JOIN payment_methods p ON p.id = o.payment_id
		LEFT JOIN tables t ON t.id = o.table_id
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.order_time DESC`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch orders: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"order_id":      r.OrderID,
			"customer_id":   intValue(r.CustomerID),
			"guest_name":    r.GuestName,
			"service_type":  r.ServiceType,
			"table_id":      r.TableID,
			"payment_id":    r.PaymentID,
			"order_status":  r.OrderStatus,
			"order_time":    r.OrderTime,
			"method_name":   strValue(r.MethodName),
			"table_number":  intValue(r.TableNumber),
			"customer_name": strValue(r.CustomerName),
			"order_date":    dateValue(r.OrderDate),
		}
	}
	return newTable(reports.FamilyOrders, rows)
}

// OrderDetails mengembalikan detail order beserta nama item dan harga satuan.
func (s *Store) OrderDetails() (reports.Table, error) {
	var scanned []struct {
		OrderDetailID int64
		OrderID       int64
		MenuID        int64
		Quantity      int64
		TotalPrice    decimal.Decimal
		RequestNote   string
		ItemName      string
		UnitPrice     decimal.Decimal
		OrderDate     *string
	}
	err := s.DB.Raw(`
		SELECT od.id AS order_detail_id, od.order_id, od.menu_id, od.quantity,
		       od.total_price, od.request_note, m.item_name, m.unit_price,
		       DATE(o.order_time) AS order_date
		FROM order_details od
		JOIN menus m ON m.id = od.menu_id
		JOIN orders o ON o.id = od.order_id
		ORDER BY o.order_time DESC`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch order details: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"order_detail_id": r.OrderDetailID,
			"order_id":        r.OrderID,
			"menu_id":         r.MenuID,
			"quantity":        r.Quantity,
			"total_price":     r.TotalPrice,
			"request_note":    r.RequestNote,
			"item_name":       r.ItemName,
			"unit_price":      r.UnitPrice,
			"order_date":      dateValue(r.OrderDate),
		}
	}
	return newTable(reports.FamilyOrderDetails, rows)
}

// Reservations mengembalikan reservasi lengkap dengan meja dan customer.
func (s *Store) Reservations() (reports.Table, error) {
	var scanned []struct {
		ReservationID   int64
		CustomerID      int64
		TableID         int64
		ReservationDate time.Time
		CheckIn         string
		CheckOut        string
		PartySize       int64
		Status          string
		SpecialRequest  string
		TableNumber     int64
		Capacity        int64
		CustomerName    string
	}
	err := s.DB.Raw(`
		SELECT r.id AS reservation_id, r.customer_id, r.table_id,
		       r.reservation_date, r.check_in, r.check_out, r.party_size,
		       r.status, r.special_request,
		       t.table_number, t.capacity, c.customer_name
		FROM reservations r
		JOIN tables t ON t.id = r.table_id
		JOIN customers c ON c.id = r.customer_id
		ORDER BY r.reservation_date DESC`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch reservations: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"reservation_id":   r.ReservationID,
			"customer_id":      r.CustomerID,
			"table_id":         r.TableID,
			"reservation_date": r.ReservationDate,
			"check_in":         r.CheckIn,
			"check_out":        r.CheckOut,
			"party_size":       r.PartySize,
			"status":           r.Status,
			"special_request":  r.SpecialRequest,
			"table_number":     r.TableNumber,
			"capacity":         r.Capacity,
			"customer_name":    r.CustomerName,
		}
	}
	return newTable(reports.FamilyReservations, rows)
}

// Reviews mengembalikan review beserta nama customer (lewat order; order tamu
// menghasilkan customer_name nil).
func (s *Store) Reviews() (reports.Table, error) {
	var scanned []struct {
		ReviewID     int64
		OrderID      int64
		Rating       int64
		Comment      string
		ReviewDate   time.Time
		CustomerName *string
	}
	err := s.DB.Raw(`
		SELECT r.id AS review_id, r.order_id, r.rating, r.comment,
		       r.review_date, c.customer_name
		FROM reviews r
		JOIN orders o ON o.id = r.order_id
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY r.review_date DESC`).Scan(&scanned).Error
	if err != nil {
		return reports.Table{}, fmt.Errorf("fetch reviews: %w", err)
	}

	rows := make([]reports.Row, len(scanned))
	for i, r := range scanned {
		rows[i] = reports.Row{
			"review_id":     r.ReviewID,
			"order_id":      r.OrderID,
			"rating":        r.Rating,
			"comment":       r.Comment,
			"review_date":   r.ReviewDate,
			"customer_name": strValue(r.CustomerName),
		}
	}
	return newTable(reports.FamilyReviews, rows)
}

func (s *Store) loaders() map[string]func() (reports.Table, error) {
	return map[string]func() (reports.Table, error){
		reports.FamilyCustomers:      s.Customers,
		reports.FamilyCategories:     s.Categories,
		reports.FamilyPaymentMethods: s.PaymentMethods,
		reports.FamilyTables:         s.Tables,
		reports.FamilyTableUsage:     s.TableUsage,
		reports.FamilyMenu:           s.Menu,
		reports.FamilyOrders:         s.Orders,
		reports.FamilyOrderDetails:   s.OrderDetails,
		reports.FamilyReservations:   s.Reservations,
		reports.FamilyReviews:        s.Reviews,
	}
}

// Dataset memuat satu report family berdasarkan nama view-nya.
func (s *Store) Dataset(family string) (reports.Table, error) {
	load, ok := s.loaders()[family]
	if !ok {
		return reports.Table{}, fmt.Errorf("unknown report family %q", family)
	}
	return load()
}

// Datasets memuat seluruh report family sekaligus, dipakai custom view join.
func (s *Store) Datasets() (map[string]reports.Table, error) {
	loaders := s.loaders()
	out := make(map[string]reports.Table, len(loaders))
	for family, load := range loaders {
		t, err := load()
		if err != nil {
			return nil, err
		}
		out[family] = t
	}
	return out, nil
}
