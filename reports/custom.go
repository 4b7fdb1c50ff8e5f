package reports

// BuildCustomView menjalankan satu resep join lalu menerapkan filter state:
// rentang tanggal pada kolom tanggal resep, pencarian bebas ke semua kolom,
// dan pemilihan kolom tampilan.
func BuildCustomView(datasets map[string]Table, f FilterState) (Table, error) {
	joined, err := ApplyJoin(f.RecipeID, datasets)
	if err != nil {
		return Table{}, err
	}

	joined = FilterByDate(joined, joined.Schema.DateColumn, f.StartDate, f.EndDate)
	joined = FilterAnyText(joined, f.Search)
	return joined.SelectColumns(f.Columns)
}
