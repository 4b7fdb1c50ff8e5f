package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// mustTable membangun tabel dari schema family; gagal validasi = bug test.
func mustTable(t *testing.T, family string, rows []Row) Table {
	t.Helper()
	table, err := NewTable(Schemas[family], rows)
	if err != nil {
		t.Fatalf("seed table %s: %v", family, err)
	}
	return table
}

func money(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func day(v string) time.Time {
	ts, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return ts
}

// categoryRow adalah baris family categories untuk seed test.
func categoryRow(id int64, name string, qty int64, date any) Row {
	return Row{
		"category_id":   id,
		"category_name": name,
		"total_qty":     qty,
		"order_date":    date,
	}
}
