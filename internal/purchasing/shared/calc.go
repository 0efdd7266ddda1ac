// Package shared holds the pieces common to every purchasing entity:
// derived-value computation, repository error wrapping, and the generic
// single-row CRUD repository.
package shared

// LineTotal computes a detail line's extended price. The stored value is
// never trusted; callers recompute it whenever quantity or price changes.
func LineTotal(orderQty int32, unitPrice float64) float64 {
	return float64(orderQty) * unitPrice
}

// StockedQty is the default stocked quantity when the caller does not
// supply one explicitly.
func StockedQty(receivedQty, rejectedQty float64) float64 {
	return receivedQty - rejectedQty
}

// TotalDue computes the order total. Always recomputed on create and
// update; a caller-supplied total is ignored.
func TotalDue(subTotal, taxAmt, freight float64) float64 {
	return subTotal + taxAmt + freight
}
