package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AverageOrderValue membagi total revenue dengan jumlah order distinct.
// Tanpa order hasilnya nol, bukan pembagian dengan nol.
func AverageOrderValue(revenue decimal.Decimal, orderCount int64) decimal.Decimal {
	if orderCount <= 0 {
		return decimal.Zero
	}
	return revenue.DivRound(decimal.NewFromInt(orderCount), 2)
}

// DistinctCount menghitung jumlah nilai unik pada satu kolom (nil ikut
// dihitung sebagai satu nilai bila muncul).
func DistinctCount(t Table, col string) (int64, error) {
	if !t.Schema.HasColumn(col) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		k := "\x01"
		if row[col] != nil {
			k = asString(row[col])
		}
		seen[k] = struct{}{}
	}
	return int64(len(seen)), nil
}

// RatingStats menghitung rata-rata aritmetika rating dan rating yang paling
// sering muncul. Seri frekuensi dipecah deterministik ke nilai rating terendah.
func RatingStats(t Table, col string) (avg decimal.Decimal, mostCommon int64, err error) {
	if !t.Schema.HasColumn(col) {
		return decimal.Zero, 0, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}

	var sum, count int64
	freq := make(map[int64]int64)
	for _, row := range t.Rows {
		r, ok := row[col].(int64)
		if !ok {
			continue
		}
		sum += r
		count++
		freq[r]++
	}
	if count == 0 {
		return decimal.Zero, 0, nil
	}

	avg = decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 2)
	var bestN int64
	for rating, n := range freq {
		if n > bestN || (n == bestN && rating < mostCommon) {
			mostCommon = rating
			bestN = n
		}
	}
	return avg, mostCommon, nil
}

// ExtractHour mengambil komponen jam dari nilai waktu check-in/check-out.
// Format yang dikenali: "HH:MM", "HH:MM:SS", dan string durasi berkualifikasi
// hari seperti "1 days 18:30:00". Nilai yang tidak bisa di-parse jatuh ke jam 0;
// perilaku lossy ini dipertahankan dari sumber data lama supaya distribusi
// yang dilaporkan tidak berubah.
func ExtractHour(val string) int {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	if strings.Contains(val, "days") {
		fields := strings.Fields(val)
		val = fields[len(fields)-1]
	}
	parts := strings.Split(val, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// FormatClock menormalkan nilai check-in/check-out untuk tampilan tabel:
// durasi berkualifikasi hari dipangkas menjadi "HH:MM:SS", kosong menjadi "-".
func FormatClock(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return "-"
	}
	if strings.Contains(val, "days") {
		fields := strings.Fields(val)
		val = fields[len(fields)-1]
	}
	return val
}

// Tipe pelanggan hasil resolusi nama order.
const (
	CustomerTypeMember = "Member"
	CustomerTypeGuest  = "Guest"
)

// DisplayName menentukan nama yang ditampilkan untuk satu order: nama customer
// terdaftar bila ada, kalau tidak nama tamu. Order member tetap Member
// walaupun kolom guest_name kebetulan terisi.
func DisplayName(customerName, guestName string) (name, customerType string) {
	if strings.TrimSpace(customerName) != "" {
		return customerName, CustomerTypeMember
	}
	return guestName, CustomerTypeGuest
}
