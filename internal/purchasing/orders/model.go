// Package orders persists the purchase order aggregate: one header row
// owning a variable-length set of detail rows, kept consistent inside a
// single transaction per write.
package orders

import "time"

// PurchaseOrder is the aggregate root. ShipMethod, Vendor, and Employee
// are read-only projections resolved from their foreign keys; the keys
// themselves stay authoritative. A nil Details slice means the detail
// list was not loaded (or, on update, not supplied), not that the
// order has no lines.
type PurchaseOrder struct {
	ID           int64                 `json:"id"`
	Status       int16                 `json:"status"`
	EmployeeID   int64                 `json:"employee_id"`
	VendorID     int64                 `json:"vendor_id"`
	ShipMethodID int64                 `json:"ship_method_id"`
	OrderDate    time.Time             `json:"order_date"`
	ShipDate     *time.Time            `json:"ship_date,omitempty"`
	SubTotal     float64               `json:"sub_total"`
	TaxAmt       float64               `json:"tax_amt"`
	Freight      float64               `json:"freight"`
	TotalDue     float64               `json:"total_due"`
	ModifiedDate time.Time             `json:"modified_date"`
	ShipMethod   *ShipMethodRef        `json:"ship_method,omitempty"`
	Vendor       *VendorRef            `json:"vendor,omitempty"`
	Employee     *EmployeeRef          `json:"employee,omitempty"`
	Details      []PurchaseOrderDetail `json:"details,omitempty"`
}

// PurchaseOrderDetail is a line item owned by its header. LineTotal and
// StockedQty are derived and must always be re-derivable from the other
// fields.
type PurchaseOrderDetail struct {
	ID              int64     `json:"id"`
	PurchaseOrderID int64     `json:"purchase_order_id"`
	DueDate         time.Time `json:"due_date"`
	OrderQty        int32     `json:"order_qty"`
	ProductID       int64     `json:"product_id"`
	UnitPrice       float64   `json:"unit_price"`
	LineTotal       float64   `json:"line_total"`
	ReceivedQty     float64   `json:"received_qty"`
	RejectedQty     float64   `json:"rejected_qty"`
	StockedQty      float64   `json:"stocked_qty"`
	ModifiedDate    time.Time `json:"modified_date"`
}

// ShipMethodRef is the resolved ship method summary on a loaded order.
type ShipMethodRef struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ShipBase float64 `json:"ship_base"`
	ShipRate float64 `json:"ship_rate"`
}

// VendorRef is the resolved vendor summary on a loaded order.
type VendorRef struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
}

// EmployeeRef is the resolved employee summary on a loaded order.
type EmployeeRef struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`
}
