package order

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  Totals
	}{
		{
			name: "Two lines",
			items: []OrderItem{
				{Price: 699.0, Quantity: 2},
				{Price: 299.0, Quantity: 1},
			},
			want: Totals{Subtotal: 1697.0, Tax: 84.85, Total: 1781.85},
		},
		{
			name:  "Empty",
			items: nil,
			want:  Totals{Subtotal: 0, Tax: 0, Total: 0},
		},
		{
			name:  "Tax rounds half away from zero",
			items: []OrderItem{{Price: 0.1, Quantity: 1}},
			want:  Totals{Subtotal: 0.1, Tax: 0.01, Total: 0.11},
		},
		{
			name:  "No float drift in subtotal",
			items: []OrderItem{{Price: 0.1, Quantity: 3}},
			want:  Totals{Subtotal: 0.3, Tax: 0.02, Total: 0.32},
		},
		{
			name:  "Free item",
			items: []OrderItem{{Price: 0, Quantity: 5}},
			want:  Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(tt.items))
		})
	}
}

func TestComputeTotals_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		items := make([]OrderItem, rng.Intn(6))
		for j := range items {
			items[j] = OrderItem{
				Price:    float64(rng.Intn(200000)) / 100,
				Quantity: 1 + rng.Intn(10),
			}
		}

		got := ComputeTotals(items)

		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		sub := decimal.NewFromFloat(got.Subtotal)
		tax := decimal.NewFromFloat(got.Tax)
		total := decimal.NewFromFloat(got.Total)

		assert.True(t, sub.Equal(sum), "subtotal %v != %v", sub, sum)
		assert.True(t, tax.Equal(sum.Mul(TaxRate).Round(2)), "tax %v", tax)
		assert.True(t, total.Equal(sub.Add(tax).Round(2)), "total %v", total)
	}
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := []OrderItem{{Price: 459, Quantity: 3}, {Price: 1299, Quantity: 1}, {Price: 229, Quantity: 2}}
	b := []OrderItem{a[2], a[0], a[1]}

	assert.Equal(t, ComputeTotals(a), ComputeTotals(b))
}
