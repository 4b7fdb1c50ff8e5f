package reports

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRecipe dikembalikan ApplyJoin saat recipe_id tidak ada di katalog.
	ErrUnknownRecipe = errors.New("unknown join recipe")

	// ErrUnknownColumn dikembalikan saat kolom yang diminta tidak ada di schema.
	ErrUnknownColumn = errors.New("unknown column")
)

// JoinKeyMissingError menandai pelanggaran kontrak schema: kolom kunci join
// yang dideklarasikan recipe tidak ada pada dataset yang diberikan. Ini bukan
// kondisi "tidak ada baris yang cocok".
type JoinKeyMissingError struct {
	Recipe  string
	Dataset string
	Key     string
}

func (e *JoinKeyMissingError) Error() string {
	return fmt.Sprintf("join recipe %q: dataset %q is missing join key column %q", e.Recipe, e.Dataset, e.Key)
}

// IntegrityError menandai data transaksional yang tidak valid, misalnya
// kuantitas atau harga negatif. Nilai seperti ini tidak boleh di-clamp diam-diam.
type IntegrityError struct {
	Table  string
	Column string
	Value  string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("data integrity: table %q column %q has invalid value %s", e.Table, e.Column, e.Value)
}
