package reports

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/chikoci/Restaurant-Orders/utils"
)

// ExportCSV menserialisasi tabel menjadi CSV: baris header berisi nama kolom,
// satu record per baris data. Kolom uang diformat dengan pemisah ribuan
// Rupiah, tanggal memakai format 2006-01-02, nil menjadi string kosong.
// cols membatasi kolom yang diekspor dan harus subset schema; kosong berarti
// seluruh kolom sesuai urutan schema.
func ExportCSV(t Table, cols []string) ([]byte, error) {
	selected, err := t.SelectColumns(cols)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(selected.Schema.ColumnNames()); err != nil {
		return nil, err
	}
	for _, row := range selected.Rows {
		record := make([]string, len(selected.Schema.Columns))
		for i, col := range selected.Schema.Columns {
			record[i] = formatCell(col.Kind, row[col.Name])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatCell(kind Kind, val any) string {
	if val == nil {
		return ""
	}
	switch kind {
	case KindMoney:
		if d, ok := asDecimal(val); ok {
			return utils.FormatCurrency(d)
		}
	case KindDate:
		if ts, ok := asDate(val); ok {
			return ts.Format("2006-01-02")
		}
	case KindDateTime:
		if ts, ok := val.(time.Time); ok {
			return ts.Format("2006-01-02 15:04:05")
		}
	}
	return asString(val)
}
