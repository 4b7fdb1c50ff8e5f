package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterState adalah pilihan filter satu request render. Nilai ini immutable:
// setiap With* mengembalikan salinan baru, tidak ada state global yang
// dimutasi, sehingga satu state bisa dipakai ulang untuk beberapa builder.
type FilterState struct {
	// StartDate/EndDate membatasi rentang tanggal inklusif; zero berarti
	// tidak dibatasi.
	StartDate time.Time
	EndDate   time.Time
	// Search adalah query teks bebas; kosong berarti tanpa pencarian.
	Search string
	// Member memilih akses menu (all, member_only, regular).
	Member MemberFilter
	// MinPrice/MaxPrice membatasi harga satuan menu, inklusif; nil berarti
	// tidak dibatasi.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// RecipeID memilih resep join custom view.
	RecipeID string
	// Columns membatasi kolom yang ditampilkan/diekspor; kosong berarti semua.
	Columns []string
}

// DefaultFilterState adalah state awal sekaligus hasil aksi reset: tanpa
// rentang tanggal, tanpa pencarian, semua menu, semua kolom.
func DefaultFilterState() FilterState {
	return FilterState{Member: MemberAll}
}

func (f FilterState) WithDateRange(start, end time.Time) FilterState {
	f.StartDate = start
	f.EndDate = end
	return f
}

func (f FilterState) WithSearch(q string) FilterState {
	f.Search = q
	return f
}

func (f FilterState) WithMember(m MemberFilter) FilterState {
	f.Member = m
	return f
}

func (f FilterState) WithPriceRange(min, max *decimal.Decimal) FilterState {
	f.MinPrice = min
	f.MaxPrice = max
	return f
}

func (f FilterState) WithRecipe(id string) FilterState {
	f.RecipeID = id
	return f
}

func (f FilterState) WithColumns(cols []string) FilterState {
	f.Columns = append([]string(nil), cols...)
	return f
}

// Reset mengembalikan state default; fungsi murni, receiver tidak berubah.
func (f FilterState) Reset() FilterState {
	return DefaultFilterState()
}

// apply menjalankan filter tanggal tabel sesuai state (kolom tanggal diambil
// dari schema tabel itu sendiri).
func (f FilterState) apply(t Table) Table {
	return FilterByDate(t, t.Schema.DateColumn, f.StartDate, f.EndDate)
}
