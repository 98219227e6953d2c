package cart

// PricedLine pairs a cart quantity with the product's current price, the
// shape produced by joining cart_items with products.
type PricedLine struct {
	Quantity  float64
	UnitPrice float64
}

// Totals summarizes a cart for display and checkout. TotalItems is the sum of
// quantities (kilograms plus unit counts), not the row count.
type Totals struct {
	TotalItems float64
	TotalPrice float64
}

// ComputeTotals sums quantities and quantity × price over the given lines.
// Pure function; the result does not depend on line order.
func ComputeTotals(lines []PricedLine) Totals {
	var t Totals
	for _, line := range lines {
		t.TotalItems += line.Quantity
		t.TotalPrice += line.Quantity * line.UnitPrice
	}
	return t
}
