package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DatePoint adalah satu titik pada deret harian.
type DatePoint struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// DailySeries menjumlahkan kolom measure per tanggal kalender, urut naik.
// Baris dengan tanggal nil/tidak valid dibuang per baris, bukan menggagalkan
// seluruh laporan.
func DailySeries(t Table, dateCol, measure string) ([]DatePoint, error) {
	if !t.Schema.HasColumn(dateCol) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, dateCol)
	}
	if !t.Schema.HasColumn(measure) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, measure)
	}

	totals := make(map[time.Time]*DatePoint)
	for _, row := range t.Rows {
		ts, ok := asDate(row[dateCol])
		if !ok {
			continue
		}
		val, ok := asDecimal(row[measure])
		if !ok {
			continue
		}
		if val.IsNegative() {
			return nil, &IntegrityError{Table: t.Schema.Name, Column: measure, Value: val.String()}
		}
		day := dateOnly(ts)
		p, seen := totals[day]
		if !seen {
			p = &DatePoint{Date: day}
			totals[day] = p
		}
		p.Total = p.Total.Add(val)
		p.Count++
	}
	return sortPoints(totals), nil
}

// DailyCountSeries menghitung jumlah baris per tanggal kalender, urut naik.
func DailyCountSeries(t Table, dateCol string) ([]DatePoint, error) {
	if !t.Schema.HasColumn(dateCol) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, dateCol)
	}

	totals := make(map[time.Time]*DatePoint)
	for _, row := range t.Rows {
		ts, ok := asDate(row[dateCol])
		if !ok {
			continue
		}
		day := dateOnly(ts)
		p, seen := totals[day]
		if !seen {
			p = &DatePoint{Date: day}
			totals[day] = p
		}
		p.Count++
		p.Total = decimal.NewFromInt(p.Count)
	}
	return sortPoints(totals), nil
}

// DailyAverageSeries menghitung rata-rata kolom measure per tanggal kalender
// (dipakai trend rating harian), urut naik. Total berisi rata-rata.
func DailyAverageSeries(t Table, dateCol, measure string) ([]DatePoint, error) {
	sums, err := DailySeries(t, dateCol, measure)
	if err != nil {
		return nil, err
	}
	for i := range sums {
		sums[i].Total = sums[i].Total.DivRound(decimal.NewFromInt(sums[i].Count), 2)
	}
	return sums, nil
}

func sortPoints(totals map[time.Time]*DatePoint) []DatePoint {
	out := make([]DatePoint, 0, len(totals))
	for _, p := range totals {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// HourCount adalah satu titik pada histogram jam 0-23.
type HourCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

// HourlyCounts menghitung distribusi baris per jam dari kolom waktu. Kolom
// bertipe waktu penuh diambil komponen jamnya; kolom string jam di-parse
// dengan ExtractHour (nilai rusak jatuh ke jam 0). Hasil urut naik per jam,
// hanya jam yang muncul yang disertakan.
func HourlyCounts(t Table, col string) ([]HourCount, error) {
	if !t.Schema.HasColumn(col) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}

	counts := make(map[int]int64)
	for _, row := range t.Rows {
		var hour int
		switch v := row[col].(type) {
		case time.Time:
			hour = v.Hour()
		case string:
			hour = ExtractHour(v)
		default:
			hour = 0
		}
		counts[hour]++
	}

	out := make([]HourCount, 0, len(counts))
	for h, n := range counts {
		out = append(out, HourCount{Hour: h, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out, nil
}
