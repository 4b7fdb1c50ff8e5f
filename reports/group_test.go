package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSumPartitionsPreserveGrandTotal(t *testing.T) {
	table := seedCategories(t)

	groups, err := GroupSum(table, []string{"category_name"}, "total_qty")
	assert.NoError(t, err)
	assert.Len(t, groups, 3)

	grand, err := GroupSum(table, nil, "total_qty")
	assert.NoError(t, err)
	assert.Len(t, grand, 1)

	// Jumlah total semua partisi harus sama dengan grand total.
	sum := grand[0].Total.Neg()
	for _, g := range groups {
		sum = sum.Add(g.Total)
	}
	assert.True(t, sum.IsZero(), "partitions drift from grand total by %s", sum)
}

func TestGroupSumSortedDescending(t *testing.T) {
	table := seedCategories(t)

	groups, err := GroupSum(table, []string{"category_name"}, "total_qty")
	assert.NoError(t, err)

	assert.Equal(t, "Coffee", groups[0].Label)
	assert.Equal(t, "14", groups[0].Total.String())
	for i := 1; i < len(groups); i++ {
		assert.False(t, groups[i].Total.GreaterThan(groups[i-1].Total))
	}
}

func TestGroupSumTiesKeepFirstSeenOrder(t *testing.T) {
	table := mustTable(t, FamilyCategories, []Row{
		categoryRow(1, "Zebra", 5, day("2024-05-01")),
		categoryRow(2, "Alpha", 5, day("2024-05-01")),
	})

	groups, err := GroupSum(table, []string{"category_name"}, "total_qty")
	assert.NoError(t, err)
	// Seri total: yang muncul lebih dulu di input tetap di depan.
	assert.Equal(t, "Zebra", groups[0].Label)
	assert.Equal(t, "Alpha", groups[1].Label)
}

func TestGroupSumNilKeyFormsOwnGroup(t *testing.T) {
	table := mustTable(t, FamilyOrders, []Row{
		{"order_id": int64(1), "customer_id": int64(7), "customer_name": "Budi"},
		{"order_id": int64(2), "customer_id": nil, "customer_name": nil},
		{"order_id": int64(3), "customer_id": nil, "customer_name": nil},
	})

	groups, err := GroupCount(table, []string{"customer_id"})
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	var nilGroup *Group
	for i := range groups {
		if groups[i].Key[0] == nil {
			nilGroup = &groups[i]
		}
	}
	assert.NotNil(t, nilGroup, "nil key should form its own group")
	assert.Equal(t, int64(2), nilGroup.Count)
}

func TestGroupSumNilKeyDistinctFromEmptyString(t *testing.T) {
	table := mustTable(t, FamilyOrders, []Row{
		{"order_id": int64(1), "customer_name": ""},
		{"order_id": int64(2), "customer_name": nil},
	})

	groups, err := GroupCount(table, []string{"customer_name"})
	assert.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestGroupSumNegativeMeasureIsIntegrityError(t *testing.T) {
	table := mustTable(t, FamilyCategories, []Row{
		categoryRow(1, "Coffee", -3, day("2024-05-01")),
	})

	_, err := GroupSum(table, []string{"category_name"}, "total_qty")
	assert.Error(t, err)
	var ie *IntegrityError
	assert.ErrorAs(t, err, &ie)
	assert.Equal(t, "total_qty", ie.Column)
}

func TestGroupSumUnknownColumn(t *testing.T) {
	table := seedCategories(t)

	_, err := GroupSum(table, []string{"tidak_ada"}, "total_qty")
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = GroupSum(table, []string{"category_name"}, "tidak_ada")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestGroupSumNilMeasureCountsAsZero(t *testing.T) {
	table := mustTable(t, FamilyPaymentMethods, []Row{
		{"payment_id": int64(1), "method_name": "Cash", "revenue": money("50000")},
		{"payment_id": int64(1), "method_name": "Cash", "revenue": nil},
	})

	groups, err := GroupSum(table, []string{"method_name"}, "revenue")
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "50000", groups[0].Total.String())
	assert.Equal(t, int64(2), groups[0].Count)
}

func TestTopN(t *testing.T) {
	table := seedCategories(t)
	groups, err := GroupSum(table, []string{"category_name"}, "total_qty")
	assert.NoError(t, err)

	top := TopN(groups, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "Coffee", top[0].Label)

	// n melebihi jumlah grup mengembalikan semuanya.
	assert.Len(t, TopN(groups, 100), len(groups))
	// n nol atau negatif mengembalikan kosong.
	assert.Empty(t, TopN(groups, 0))
	assert.Empty(t, TopN(groups, -1))

	// Hasil TopN adalah salinan, bukan alias slice input.
	top[0].Label = "diubah"
	assert.Equal(t, "Coffee", groups[0].Label)
}
