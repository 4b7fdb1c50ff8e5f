package reports

// TableReport adalah informasi meja dan frekuensi penggunaannya.
type TableReport struct {
	TotalTables   int64  `json:"total_tables"`
	TotalCapacity int64  `json:"total_capacity"`
	FavoriteTable string `json:"favorite_table,omitempty"`

	Usage  []Group `json:"usage"`
	Tables Table   `json:"tables"`
}

// BuildTableReport menghitung frekuensi penggunaan per meja dalam rentang
// filter. Info meja (kapasitas, lokasi, status) selalu menampilkan seluruh
// meja, terpakai ataupun tidak.
func BuildTableReport(tables, usage Table, f FilterState) (*TableReport, error) {
	usageF := f.apply(usage)

	summary, err := GroupSum(usageF, []string{"table_number"}, "times_used")
	if err != nil {
		return nil, err
	}

	report := &TableReport{
		TotalTables: int64(tables.Len()),
		Usage:       summary,
		Tables:      tables,
	}
	if len(summary) > 0 {
		report.FavoriteTable = summary[0].Label
	}

	capacity, err := GroupSum(tables, nil, "capacity")
	if err != nil {
		return nil, err
	}
	report.TotalCapacity = capacity[0].Total.IntPart()

	return report, nil
}
