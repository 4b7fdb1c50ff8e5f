package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportCSVAllColumns(t *testing.T) {
	table := mustTable(t, FamilyCustomers, []Row{
		{"customer_id": int64(1), "customer_name": "Budi", "email": "budi@mail.com", "phone": "0811", "total_spending": money("1234567.80")},
		{"customer_id": int64(2), "customer_name": "Siti", "email": "siti@mail.com", "phone": "0822", "total_spending": nil},
	})

	data, err := ExportCSV(table, nil)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "customer_id,customer_name,email,phone,total_spending", lines[0])
	// Kolom uang diformat Rupiah, nil menjadi string kosong.
	assert.Contains(t, lines[1], "Rp 1.234.568")
	assert.Equal(t, "2,Siti,siti@mail.com,0822,", lines[2])
}

func TestExportCSVSelectedColumns(t *testing.T) {
	table := mustTable(t, FamilyCategories, []Row{
		categoryRow(1, "Coffee", 10, day("2024-05-01")),
	})

	data, err := ExportCSV(table, []string{"order_date", "category_name"})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "order_date,category_name", lines[0])
	assert.Equal(t, "2024-05-01,Coffee", lines[1])
}

func TestExportCSVUnknownColumn(t *testing.T) {
	table := mustTable(t, FamilyCategories, nil)

	_, err := ExportCSV(table, []string{"tidak_ada"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestSelectColumnsReordersAndDropsDateColumn(t *testing.T) {
	table := mustTable(t, FamilyCategories, []Row{
		categoryRow(1, "Coffee", 10, day("2024-05-01")),
	})

	got, err := table.SelectColumns([]string{"total_qty", "category_name"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"total_qty", "category_name"}, got.Schema.ColumnNames())
	// Kolom tanggal ikut terbuang sehingga filter tanggal menjadi no-op.
	assert.Equal(t, "", got.Schema.DateColumn)

	// Daftar kosong berarti semua kolom.
	all, err := table.SelectColumns(nil)
	assert.NoError(t, err)
	assert.Equal(t, table.Schema.ColumnNames(), all.Schema.ColumnNames())
}
