package reports

import (
	"github.com/shopspring/decimal"
)

// Bucket adalah satu kelas histogram dengan label tetap.
type Bucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// Kelas pengeluaran customer (Rupiah) untuk histogram distribusi.
var spendingBuckets = []struct {
	Label string
	Max   decimal.Decimal
}{
	{"< 100rb", decimal.NewFromInt(100_000)},
	{"100rb-500rb", decimal.NewFromInt(500_000)},
	{"500rb-1jt", decimal.NewFromInt(1_000_000)},
	{"1jt-5jt", decimal.NewFromInt(5_000_000)},
	{"> 5jt", decimal.Decimal{}}, // tanpa batas atas
}

// CustomerReport adalah analisis pengeluaran pelanggan pada rentang filter.
type CustomerReport struct {
	ActiveCustomers int64           `json:"active_customers"`
	TotalSpending   decimal.Decimal `json:"total_spending"`
	AvgSpending     decimal.Decimal `json:"avg_spending"`

	TopSpenders []Group  `json:"top_spenders"`
	Buckets     []Bucket `json:"spending_distribution"`
	Customers   Table    `json:"customers"`
}

// BuildCustomerReport menghitung pengeluaran per customer dalam rentang
// tanggal filter: orders digabung dengan order details, dijumlahkan per
// customer, lalu ditempel ke tabel customers sebagai kolom filtered_spending.
// Pencarian teks berlaku pada nama, email dan telepon.
func BuildCustomerReport(customers, orders, details Table, f FilterState) (*CustomerReport, error) {
	ordersF := f.apply(orders)
	detailsF := f.apply(details)

	joined, err := joinStep(ordersF, detailsF, JoinStep{
		Right:   FamilyOrderDetails,
		On:      "order_id",
		Columns: []string{"total_price"},
	})
	if err != nil {
		return nil, err
	}
	perCustomer, err := GroupSum(joined, []string{"customer_id"}, "total_price")
	if err != nil {
		return nil, err
	}
	spendingByID := make(map[string]decimal.Decimal, len(perCustomer))
	for _, g := range perCustomer {
		if g.Key[0] == nil {
			// Order tamu tidak punya customer terdaftar.
			continue
		}
		spendingByID[asString(g.Key[0])] = g.Total
	}

	// Tabel tampilan: customers + kolom filtered_spending.
	schema := customers.Schema
	schema.Columns = append(append([]Column{}, customers.Schema.Columns...),
		Column{Name: "filtered_spending", Kind: KindMoney})
	rows := make([]Row, 0, customers.Len())
	for _, row := range customers.Rows {
		nr := make(Row, len(row)+1)
		for k, v := range row {
			nr[k] = v
		}
		spending, ok := spendingByID[asString(row["customer_id"])]
		if !ok {
			spending = decimal.Zero
		}
		nr["filtered_spending"] = spending
		rows = append(rows, nr)
	}
	table := Table{Schema: schema, Rows: rows}
	table = FilterByText(table, []string{"customer_name", "email", "phone"}, f.Search)

	report := &CustomerReport{Customers: table}

	spenders, err := GroupSum(table, []string{"customer_name"}, "filtered_spending")
	if err != nil {
		return nil, err
	}
	active := make([]Group, 0, len(spenders))
	for _, g := range spenders {
		if g.Total.IsPositive() {
			active = append(active, g)
		}
	}
	report.TopSpenders = TopN(active, 10)

	report.Buckets = make([]Bucket, len(spendingBuckets))
	for i, b := range spendingBuckets {
		report.Buckets[i] = Bucket{Label: b.Label}
	}
	for _, row := range table.Rows {
		spending, _ := asDecimal(row["filtered_spending"])
		if !spending.IsPositive() {
			continue
		}
		report.ActiveCustomers++
		report.TotalSpending = report.TotalSpending.Add(spending)
		for i, b := range spendingBuckets {
			if b.Max.IsZero() || spending.LessThanOrEqual(b.Max) {
				report.Buckets[i].Count++
				break
			}
		}
	}
	if report.ActiveCustomers > 0 {
		report.AvgSpending = report.TotalSpending.DivRound(decimal.NewFromInt(report.ActiveCustomers), 2)
	}

	return report, nil
}
