package reports

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// sameDay membandingkan dua nilai waktu pada level tanggal kalender.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterByDate menyaring baris yang kolom tanggalnya jatuh pada rentang
// [start, end] inklusif. Perbandingan memakai tanggal kalender; jam diabaikan.
// start/end bernilai zero berarti tidak dibatasi di sisi itu. Kolom yang tidak
// ada di schema (atau kosong) berarti tabel lolos apa adanya, karena tidak
// semua report family punya kolom tanggal. Baris dengan tanggal nil atau tidak
// bisa di-parse dibuang.
func FilterByDate(t Table, col string, start, end time.Time) Table {
	if col == "" || !t.Schema.HasColumn(col) {
		return t
	}
	if start.IsZero() && end.IsZero() {
		return t
	}

	out := Table{Schema: t.Schema, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		ts, ok := asDate(row[col])
		if !ok {
			continue
		}
		day := dateOnly(ts)
		if !start.IsZero() && day.Before(dateOnly(start)) {
			continue
		}
		if !end.IsZero() && day.After(dateOnly(end)) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// FilterByText menyaring baris yang salah satu kolomnya mengandung query
// (case-insensitive). Query kosong berarti tidak ada penyaringan.
func FilterByText(t Table, cols []string, query string) Table {
	query = strings.TrimSpace(query)
	if query == "" {
		return t
	}
	needle := strings.ToLower(query)

	out := Table{Schema: t.Schema, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		for _, col := range cols {
			if !t.Schema.HasColumn(col) {
				continue
			}
			if strings.Contains(strings.ToLower(asString(row[col])), needle) {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}

// FilterAnyText seperti FilterByText tetapi mencocokkan ke semua kolom tabel.
// Dipakai pencarian bebas pada hasil join custom view.
func FilterAnyText(t Table, query string) Table {
	return FilterByText(t, t.Schema.ColumnNames(), query)
}

// MemberFilter memilih menu berdasarkan aksesnya.
type MemberFilter string

const (
	MemberAll     MemberFilter = "all"
	MemberOnly    MemberFilter = "member_only"
	MemberRegular MemberFilter = "regular"
)

// FilterMenuAccess menyaring menu paket (member only) atau menu reguler.
func FilterMenuAccess(t Table, col string, mf MemberFilter) Table {
	if mf == "" || mf == MemberAll || !t.Schema.HasColumn(col) {
		return t
	}
	want := mf == MemberOnly

	out := Table{Schema: t.Schema, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		b, ok := row[col].(bool)
		if !ok {
			continue
		}
		if b == want {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// FilterPriceRange menyaring baris dengan harga pada rentang [min, max]
// inklusif. min/max nil berarti tidak dibatasi di sisi itu.
func FilterPriceRange(t Table, col string, min, max *decimal.Decimal) Table {
	if (min == nil && max == nil) || !t.Schema.HasColumn(col) {
		return t
	}

	out := Table{Schema: t.Schema, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		price, ok := asDecimal(row[col])
		if !ok || row[col] == nil {
			continue
		}
		if min != nil && price.LessThan(*min) {
			continue
		}
		if max != nil && price.GreaterThan(*max) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
