package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripweave/tripweave/schema"
)

func assertConsistent(t *testing.T, b *schema.Budget) {
	t.Helper()
	assert.Equal(t, b.Total, b.CategoryTotal(),
		"total must equal the sum of category amounts")
}

func TestParseRedistributesUnreliableParts(t *testing.T) {
	t.Parallel()

	// category figures sum to 450, less than half the reported 1000 total,
	// so they are discarded and the total split 40/25/20/10/5
	b := New().Parse("Accommodation: $300\nFood: $150\nTotal: $1000")
	assert.Equal(t, 400.0, b.Accommodation)
	assert.Equal(t, 250.0, b.Food)
	assert.Equal(t, 200.0, b.Activities)
	assert.Equal(t, 100.0, b.Transportation)
	assert.Equal(t, 50.0, b.Miscellaneous)
	assert.Equal(t, 1000.0, b.Total)
	assertConsistent(t, b)
}

func TestParseFallbackWhenNothingExtracted(t *testing.T) {
	t.Parallel()

	b := New().Parse("We will figure out costs later.")
	assert.Equal(t, 420.0, b.Accommodation)
	assert.Equal(t, 280.0, b.Food)
	assert.Equal(t, 210.0, b.Activities)
	assert.Equal(t, 70.0, b.Transportation)
	assert.Equal(t, 70.0, b.Miscellaneous)
	assert.Equal(t, 1050.0, b.Total)
	assert.Equal(t, "USD", b.Currency)
	assertConsistent(t, b)
}

func TestReconcileMissingTotal(t *testing.T) {
	t.Parallel()

	b := New().Reconcile(map[string]float64{
		CategoryAccommodation: 400,
		CategoryFood:          200,
	})
	assert.Equal(t, 600.0, b.Total)
	assertConsistent(t, b)
}

func TestReconcileReliablePartsWin(t *testing.T) {
	t.Parallel()

	// parts sum to 900, more than half of the reported 1000, so the parts
	// stand and the total is re-anchored to their sum
	b := New().Reconcile(map[string]float64{
		CategoryAccommodation: 500,
		CategoryFood:          250,
		CategoryActivities:    150,
		CategoryTotal:         1000,
	})
	assert.Equal(t, 500.0, b.Accommodation)
	assert.Equal(t, 900.0, b.Total)
	assertConsistent(t, b)
}

func TestReconcileRemainderGoesToAccommodation(t *testing.T) {
	t.Parallel()

	// 40/25/20/10/5 of 999 rounds to 400+250+200+100+50 = 1000; the -1
	// remainder lands on accommodation
	b := New().Reconcile(map[string]float64{
		CategoryAccommodation: 60,
		CategoryTotal:         999,
	})
	assert.Equal(t, 999.0, b.Total)
	assert.Equal(t, 399.0, b.Accommodation)
	assertConsistent(t, b)
}

func TestReconcileInvariantAcrossBranches(t *testing.T) {
	t.Parallel()

	inputs := []map[string]float64{
		{},
		{CategoryTotal: 2000},
		{CategoryAccommodation: 300},
		{CategoryAccommodation: 300, CategoryTotal: 400},
		{CategoryAccommodation: 800, CategoryFood: 300, CategoryTotal: 5000},
	}
	r := New()
	for _, found := range inputs {
		assertConsistent(t, r.Reconcile(found))
	}
}

func TestReconcileOptions(t *testing.T) {
	t.Parallel()

	custom := schema.Budget{
		Accommodation: 100, Food: 50, Activities: 30,
		Transportation: 10, Miscellaneous: 10, Total: 200, Currency: "EUR",
	}
	b := New(WithFallback(custom), WithCurrency("EUR")).Reconcile(nil)
	require.Equal(t, custom, *b)
	assertConsistent(t, b)
}
