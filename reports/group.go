package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Group adalah satu partisi hasil pengelompokan.
type Group struct {
	// Key berisi nilai tuple kolom pengelompokan, urut sesuai group keys.
	Key []any `json:"key,omitempty"`
	// Label adalah representasi tampilan key (bagian digabung " / ").
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// groupKey membangun kunci map yang membedakan nil dari string kosong.
func groupKey(parts []any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(0x00)
		}
		if p == nil {
			b.WriteByte(0x01)
			continue
		}
		b.WriteString(asString(p))
	}
	return b.String()
}

func groupLabel(parts []any) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = asString(p)
	}
	return strings.Join(out, " / ")
}

// GroupSum mempartisi baris berdasarkan tuple kolom keys lalu menjumlahkan
// kolom measure per partisi. Nilai key nil membentuk grup sendiri, tidak
// dibuang. Nilai measure nil dihitung nol; nilai negatif adalah pelanggaran
// integritas data dan dikembalikan sebagai error, bukan di-clamp. Tanpa keys,
// hasilnya satu grup berisi grand total. Hasil diurutkan menurun berdasarkan
// total; seri mempertahankan urutan kemunculan pertama di input.
func GroupSum(t Table, keys []string, measure string) ([]Group, error) {
	if !t.Schema.HasColumn(measure) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, measure)
	}
	for _, k := range keys {
		if !t.Schema.HasColumn(k) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, k)
		}
	}

	groups := make([]Group, 0)
	index := make(map[string]int)
	if len(keys) == 0 {
		groups = append(groups, Group{Label: ""})
		index[""] = 0
	}

	for _, row := range t.Rows {
		val, ok := asDecimal(row[measure])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, measure)
		}
		if val.IsNegative() {
			return nil, &IntegrityError{Table: t.Schema.Name, Column: measure, Value: val.String()}
		}

		parts := make([]any, len(keys))
		for i, k := range keys {
			parts[i] = row[k]
		}
		gk := groupKey(parts)
		idx, seen := index[gk]
		if !seen {
			idx = len(groups)
			index[gk] = idx
			groups = append(groups, Group{Key: parts, Label: groupLabel(parts)})
		}
		groups[idx].Total = groups[idx].Total.Add(val)
		groups[idx].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups, nil
}

// GroupCount adalah varian GroupSum yang hanya menghitung jumlah baris
// per partisi. Hasil diurutkan menurun berdasarkan count, seri stabil.
func GroupCount(t Table, keys []string) ([]Group, error) {
	for _, k := range keys {
		if !t.Schema.HasColumn(k) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, k)
		}
	}

	groups := make([]Group, 0)
	index := make(map[string]int)
	if len(keys) == 0 {
		groups = append(groups, Group{Label: ""})
		index[""] = 0
	}

	for _, row := range t.Rows {
		parts := make([]any, len(keys))
		for i, k := range keys {
			parts[i] = row[k]
		}
		gk := groupKey(parts)
		idx, seen := index[gk]
		if !seen {
			idx = len(groups)
			index[gk] = idx
			groups = append(groups, Group{Key: parts, Label: groupLabel(parts)})
		}
		groups[idx].Count++
		groups[idx].Total = decimal.NewFromInt(groups[idx].Count)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups, nil
}

// TopN mengambil n entri pertama dari daftar grup yang sudah terurut menurun.
// Bila grup lebih sedikit dari n, semuanya dikembalikan. n <= 0 berarti kosong.
func TopN(groups []Group, n int) []Group {
	if n <= 0 {
		return []Group{}
	}
	if n > len(groups) {
		n = len(groups)
	}
	out := make([]Group, n)
	copy(out, groups[:n])
	return out
}
