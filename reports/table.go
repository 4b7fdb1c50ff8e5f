// Package reports berisi mesin agregasi dashboard: filter tabel, group-sum,
// top-N, katalog join antar tabel, metrik turunan dan ekspor CSV. Semua fungsi
// di package ini murni: input yang sama selalu menghasilkan output yang sama.
package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Row adalah satu baris hasil query. Nilai yang diizinkan:
// nil, string, int64, bool, decimal.Decimal, time.Time.
type Row map[string]any

// Kind menandai tipe semantik sebuah kolom.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindMoney
	KindDate
	KindDateTime
)

type Column struct {
	Name string
	Kind Kind
}

// Schema mendeskripsikan satu report family: nama, primary key, kolom tanggal
// yang dipakai filter rentang waktu (boleh kosong), dan daftar kolom berurut.
type Schema struct {
	Name       string
	Key        string
	DateColumn string
	Columns    []Column
}

type Table struct {
	Schema Schema
	Rows   []Row
}

func (s Schema) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s Schema) ColumnKind(name string) (Kind, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return 0, false
}

func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate memastikan setiap baris hanya memuat kolom yang dideklarasikan
// dengan tipe nilai yang sesuai. Dipanggil di batas data access layer supaya
// mesin laporan tidak pernah menerima baris liar.
func (s Schema) Validate(rows []Row) error {
	for i, row := range rows {
		for name, val := range row {
			kind, ok := s.ColumnKind(name)
			if !ok {
				return fmt.Errorf("schema %s: row %d has undeclared column %q", s.Name, i, name)
			}
			if val == nil {
				continue
			}
			if err := checkKind(kind, val); err != nil {
				return fmt.Errorf("schema %s: row %d column %q: %w", s.Name, i, name, err)
			}
		}
	}
	return nil
}

func checkKind(kind Kind, val any) error {
	switch kind {
	case KindString:
		if _, ok := val.(string); !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
	case KindInt:
		if _, ok := val.(int64); !ok {
			return fmt.Errorf("expected int64, got %T", val)
		}
	case KindBool:
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", val)
		}
	case KindMoney:
		if _, ok := val.(decimal.Decimal); !ok {
			return fmt.Errorf("expected decimal, got %T", val)
		}
	case KindDate, KindDateTime:
		switch val.(type) {
		case time.Time, string:
		default:
			return fmt.Errorf("expected time or string, got %T", val)
		}
	}
	return nil
}

// NewTable memvalidasi rows terhadap schema lalu membungkusnya sebagai Table.
func NewTable(s Schema, rows []Row) (Table, error) {
	if err := s.Validate(rows); err != nil {
		return Table{}, err
	}
	return Table{Schema: s, Rows: rows}, nil
}

// MarshalJSON menyajikan tabel sebagai {name, columns, rows} untuk API.
func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Rows    []Row    `json:"rows"`
	}{
		Name:    t.Schema.Name,
		Columns: t.Schema.ColumnNames(),
		Rows:    t.Rows,
	})
}

func (t Table) Len() int { return len(t.Rows) }

func (t Table) Empty() bool { return len(t.Rows) == 0 }

// SelectColumns menyusun ulang tabel hanya dengan kolom terpilih, urutan
// mengikuti cols. Kolom yang tidak ada di schema menghasilkan ErrUnknownColumn.
func (t Table) SelectColumns(cols []string) (Table, error) {
	if len(cols) == 0 {
		return t, nil
	}
	selected := make([]Column, 0, len(cols))
	for _, name := range cols {
		kind, ok := t.Schema.ColumnKind(name)
		if !ok {
			return Table{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		selected = append(selected, Column{Name: name, Kind: kind})
	}

	out := Table{
		Schema: Schema{
			Name:       t.Schema.Name,
			Key:        t.Schema.Key,
			DateColumn: t.Schema.DateColumn,
			Columns:    selected,
		},
		Rows: make([]Row, 0, len(t.Rows)),
	}
	if !out.Schema.HasColumn(out.Schema.DateColumn) {
		out.Schema.DateColumn = ""
	}
	for _, row := range t.Rows {
		nr := make(Row, len(cols))
		for _, name := range cols {
			nr[name] = row[name]
		}
		out.Rows = append(out.Rows, nr)
	}
	return out, nil
}

// asString menstandarkan nilai sel untuk pencarian teks dan tampilan.
func asString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return fmt.Sprintf("%d", v)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case decimal.Decimal:
		return v.String()
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// asDecimal mengubah nilai sel menjadi decimal; nil dihitung nol.
func asDecimal(val any) (decimal.Decimal, bool) {
	switch v := val.(type) {
	case nil:
		return decimal.Zero, true
	case decimal.Decimal:
		return v, true
	case int64:
		return decimal.NewFromInt(v), true
	default:
		return decimal.Zero, false
	}
}

// asDate mengubah nilai sel menjadi tanggal kalender. String dicoba di-parse
// dengan beberapa layout umum; gagal parse berarti (zero, false).
func asDate(val any) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02", time.RFC3339} {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
