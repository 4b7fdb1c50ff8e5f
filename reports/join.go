package reports

import (
	"fmt"
	"sort"
)

// JoinStep menggabungkan satu dataset kanan ke hasil join berjalan dengan
// left-outer join pada kolom On.
type JoinStep struct {
	// Right adalah nama report family di map datasets.
	Right string
	// On adalah kolom kunci join, harus ada di kedua sisi.
	On string
	// Columns adalah kolom sisi kanan yang dibawa; kosong berarti semua kolom
	// selain kunci join. Kolom yang namanya bentrok dengan sisi kiri diberi
	// akhiran "_<family>".
	Columns []string
	// Dedupe menyisakan satu baris kanan per nilai kunci (baris pertama).
	Dedupe bool
}

// Recipe adalah satu resep join pada katalog custom view: daftar tabel yang
// terlibat, kunci join, dan kolom tanggal untuk filter rentang pasca-join.
// Semua join bersemantik left-outer: baris kiri tidak pernah hilang.
type Recipe struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tables      []string   `json:"tables"`
	Left        string     `json:"-"`
	Steps       []JoinStep `json:"-"`
	DateColumn  string     `json:"date_column,omitempty"`
}

// Catalog adalah daftar resep join yang tersedia di halaman custom view.
var Catalog = map[string]Recipe{
	"orders_customers": {
		ID:          "orders_customers",
		Title:       "Orders + Customers",
		Description: "Data order dengan info kontak customer",
		Tables:      []string{FamilyOrders, FamilyCustomers},
		Left:        FamilyOrders,
		Steps: []JoinStep{
			{Right: FamilyCustomers, On: "customer_id", Columns: []string{"email", "phone"}},
		},
		DateColumn: "order_date",
	},
	"orders_details_menu": {
		ID:          "orders_details_menu",
		Title:       "Orders + Order Details + Menu",
		Description: "Detail order lengkap dengan info menu",
		Tables:      []string{FamilyOrders, FamilyOrderDetails, FamilyMenu},
		Left:        FamilyOrders,
		Steps: []JoinStep{
			{Right: FamilyOrderDetails, On: "order_id"},
			{Right: FamilyMenu, On: "menu_id", Columns: []string{"item_name", "unit_price", "category_name"}, Dedupe: true},
		},
		DateColumn: "order_date",
	},
	"orders_payment_methods": {
		ID:          "orders_payment_methods",
		Title:       "Orders + Payment Methods",
		Description: "Data order dengan metode pembayaran",
		Tables:      []string{FamilyOrders, FamilyPaymentMethods},
		Left:        FamilyOrders,
		Steps: []JoinStep{
			{Right: FamilyPaymentMethods, On: "payment_id", Columns: []string{"method_name"}, Dedupe: true},
		},
		DateColumn: "order_date",
	},
	"reservations_customers_tables": {
		ID:          "reservations_customers_tables",
		Title:       "Reservations + Customers + Tables",
		Description: "Reservasi dengan info customer dan meja",
		Tables:      []string{FamilyReservations, FamilyCustomers, FamilyTables},
		Left:        FamilyReservations,
		Steps: []JoinStep{
			{Right: FamilyCustomers, On: "customer_id", Columns: []string{"email", "phone"}},
			{Right: FamilyTables, On: "table_id", Columns: []string{"location", "status"}},
		},
		DateColumn: "reservation_date",
	},
	"reviews_orders_customers": {
		ID:          "reviews_orders_customers",
		Title:       "Reviews + Orders + Customers",
		Description: "Review dengan info order dan customer",
		Tables:      []string{FamilyReviews, FamilyOrders, FamilyCustomers},
		Left:        FamilyReviews,
		Steps: []JoinStep{
			{Right: FamilyOrders, On: "order_id", Columns: []string{"customer_id", "order_date", "service_type"}},
			{Right: FamilyCustomers, On: "customer_id", Columns: []string{"email", "phone"}},
		},
		DateColumn: "review_date",
	},
	"menu_categories": {
		ID:          "menu_categories",
		Title:       "Menu + Categories",
		Description: "Menu dengan info kategori",
		Tables:      []string{FamilyMenu, FamilyCategories},
		Left:        FamilyMenu,
		Steps: []JoinStep{
			{Right: FamilyCategories, On: "category_name", Columns: []string{"category_id"}, Dedupe: true},
		},
		DateColumn: "order_date",
	},
	"full_order_report": {
		ID:          "full_order_report",
		Title:       "Full Order Report",
		Description: "Laporan order lengkap (semua informasi)",
		Tables:      []string{FamilyOrders, FamilyCustomers, FamilyOrderDetails, FamilyMenu},
		Left:        FamilyOrders,
		Steps: []JoinStep{
			{Right: FamilyCustomers, On: "customer_id", Columns: []string{"email", "phone"}},
			{Right: FamilyOrderDetails, On: "order_id", Columns: []string{"menu_id", "quantity", "total_price", "request_note"}},
			{Right: FamilyMenu, On: "menu_id", Columns: []string{"item_name", "category_name"}, Dedupe: true},
		},
		DateColumn: "order_date",
	},
}

// Recipes mengembalikan isi katalog terurut berdasarkan id.
func Recipes() []Recipe {
	out := make([]Recipe, 0, len(Catalog))
	for _, r := range Catalog {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ApplyJoin mengeksekusi satu resep dari katalog terhadap dataset yang sudah
// dimaterialisasi. Urutan baris kiri dipertahankan; relasi satu-ke-banyak
// mengulang baris kiri sekali per pasangan kanan, berdampingan, mengikuti
// urutan kemunculan sisi kanan. Baris kiri tanpa pasangan tetap keluar dengan
// kolom kanan nil. Join yang sukses dengan nol baris cocok tetap valid.
func ApplyJoin(recipeID string, datasets map[string]Table) (Table, error) {
	recipe, ok := Catalog[recipeID]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownRecipe, recipeID)
	}

	current, ok := datasets[recipe.Left]
	if !ok {
		return Table{}, fmt.Errorf("join recipe %q: dataset %q not supplied", recipeID, recipe.Left)
	}
	// Salin baris kiri supaya input tidak pernah termutasi.
	rows := make([]Row, len(current.Rows))
	for i, r := range current.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		rows[i] = nr
	}
	current = Table{Schema: current.Schema, Rows: rows}

	for _, step := range recipe.Steps {
		right, ok := datasets[step.Right]
		if !ok {
			return Table{}, fmt.Errorf("join recipe %q: dataset %q not supplied", recipeID, step.Right)
		}
		if !current.Schema.HasColumn(step.On) {
			return Table{}, &JoinKeyMissingError{Recipe: recipeID, Dataset: current.Schema.Name, Key: step.On}
		}
		if !right.Schema.HasColumn(step.On) {
			return Table{}, &JoinKeyMissingError{Recipe: recipeID, Dataset: step.Right, Key: step.On}
		}

		var err error
		current, err = joinStep(current, right, step)
		if err != nil {
			return Table{}, err
		}
	}

	current.Schema.Name = recipe.ID
	current.Schema.DateColumn = recipe.DateColumn
	if !current.Schema.HasColumn(recipe.DateColumn) {
		current.Schema.DateColumn = ""
	}
	return current, nil
}

func joinStep(left, right Table, step JoinStep) (Table, error) {
	// Tentukan kolom kanan yang dibawa (kunci join tidak diduplikasi).
	carry := step.Columns
	if len(carry) == 0 {
		carry = make([]string, 0, len(right.Schema.Columns))
		for _, c := range right.Schema.Columns {
			if c.Name != step.On {
				carry = append(carry, c.Name)
			}
		}
	}
	for _, name := range carry {
		if !right.Schema.HasColumn(name) {
			return Table{}, fmt.Errorf("%w: %q in dataset %q", ErrUnknownColumn, name, step.Right)
		}
	}

	// Nama kolom hasil; bentrok dengan sisi kiri diberi akhiran nama family.
	outNames := make(map[string]string, len(carry))
	outSchema := left.Schema
	outSchema.Columns = append([]Column{}, left.Schema.Columns...)
	for _, name := range carry {
		outName := name
		if outSchema.HasColumn(outName) {
			outName = name + "_" + right.Schema.Name
		}
		outNames[name] = outName
		kind, _ := right.Schema.ColumnKind(name)
		outSchema.Columns = append(outSchema.Columns, Column{Name: outName, Kind: kind})
	}

	// Index sisi kanan per nilai kunci; baris dengan kunci nil tidak pernah
	// cocok dan hanya berperan sebagai sisi kanan yang hilang.
	index := make(map[string][]Row)
	for _, row := range right.Rows {
		if row[step.On] == nil {
			continue
		}
		k := asString(row[step.On])
		if step.Dedupe && len(index[k]) > 0 {
			continue
		}
		index[k] = append(index[k], row)
	}

	out := Table{Schema: outSchema, Rows: make([]Row, 0, len(left.Rows))}
	for _, lrow := range left.Rows {
		var matches []Row
		if lrow[step.On] != nil {
			matches = index[asString(lrow[step.On])]
		}
		if len(matches) == 0 {
			nr := make(Row, len(lrow)+len(carry))
			for k, v := range lrow {
				nr[k] = v
			}
			for _, name := range carry {
				nr[outNames[name]] = nil
			}
			out.Rows = append(out.Rows, nr)
			continue
		}
		for _, rrow := range matches {
			nr := make(Row, len(lrow)+len(carry))
			for k, v := range lrow {
				nr[k] = v
			}
			for _, name := range carry {
				nr[outNames[name]] = rrow[name]
			}
			out.Rows = append(out.Rows, nr)
		}
	}
	return out, nil
}
