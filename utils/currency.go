package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency memformat nilai decimal ke format mata uang Rupiah
// dengan pemisah ribuan, contoh: 1234567.5 -> "Rp 1.234.568"
func FormatCurrency(amount decimal.Decimal) string {
	// Bulatkan ke rupiah penuh seperti tampilan dashboard
	rounded := amount.Round(0).StringFixed(0)

	negative := strings.HasPrefix(rounded, "-")
	digits := strings.TrimPrefix(rounded, "-")

	// Tambahkan pemisah ribuan
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}

	out := "Rp " + strings.Join(parts, ".")
	if negative {
		out = "Rp -" + strings.Join(parts, ".")
	}
	return out
}
