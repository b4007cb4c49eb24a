package order

import "github.com/shopspring/decimal"

// TaxRate is the flat tax applied to every order.
var TaxRate = decimal.RequireFromString("0.05")

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals returns subtotal = Σ price×quantity, tax = subtotal×TaxRate
// and total = subtotal+tax, with tax and total rounded half away from zero
// to 2 places. An empty list yields all zeros.
func ComputeTotals(items []OrderItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
