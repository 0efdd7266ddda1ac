package orders

import "time"

type CreatePurchaseOrderRequest struct {
	Status       int16                   `json:"status" validate:"gte=0"`
	EmployeeID   int64                   `json:"employee_id" validate:"required,gt=0"`
	VendorID     int64                   `json:"vendor_id" validate:"required,gt=0"`
	ShipMethodID int64                   `json:"ship_method_id" validate:"required,gt=0"`
	OrderDate    time.Time               `json:"order_date" validate:"required"`
	ShipDate     *time.Time              `json:"ship_date,omitempty"`
	SubTotal     float64                 `json:"sub_total" validate:"gte=0"`
	TaxAmt       float64                 `json:"tax_amt" validate:"gte=0"`
	Freight      float64                 `json:"freight" validate:"gte=0"`
	TotalDue     float64                 `json:"total_due"` // ignored, recomputed
	Details      []CreateOrderDetailLine `json:"details,omitempty" validate:"omitempty,dive"`
}

// CreateOrderDetailLine is one incoming line item. LineTotal is accepted
// but recomputed; StockedQty defaults to received minus rejected when
// absent.
type CreateOrderDetailLine struct {
	DueDate     time.Time `json:"due_date" validate:"required"`
	OrderQty    int32     `json:"order_qty" validate:"required,gt=0"`
	ProductID   int64     `json:"product_id" validate:"required,gt=0"`
	UnitPrice   float64   `json:"unit_price" validate:"gte=0"`
	LineTotal   float64   `json:"line_total"` // ignored, recomputed
	ReceivedQty float64   `json:"received_qty" validate:"gte=0"`
	RejectedQty float64   `json:"rejected_qty" validate:"gte=0"`
	StockedQty  *float64  `json:"stocked_qty,omitempty" validate:"omitempty,gte=0"`
}

// UpdatePurchaseOrderRequest carries apply-if-present fields. A non-nil
// Details slice replaces the entire detail set; nil leaves it untouched.
type UpdatePurchaseOrderRequest struct {
	Status       *int16                   `json:"status,omitempty"`
	EmployeeID   *int64                   `json:"employee_id,omitempty" validate:"omitempty,gt=0"`
	VendorID     *int64                   `json:"vendor_id,omitempty" validate:"omitempty,gt=0"`
	ShipMethodID *int64                   `json:"ship_method_id,omitempty" validate:"omitempty,gt=0"`
	OrderDate    *time.Time               `json:"order_date,omitempty"`
	ShipDate     *time.Time               `json:"ship_date,omitempty"`
	SubTotal     *float64                 `json:"sub_total,omitempty" validate:"omitempty,gte=0"`
	TaxAmt       *float64                 `json:"tax_amt,omitempty" validate:"omitempty,gte=0"`
	Freight      *float64                 `json:"freight,omitempty" validate:"omitempty,gte=0"`
	Details      *[]CreateOrderDetailLine `json:"details,omitempty" validate:"omitempty,dive"`
}

// CreateDetailRequest creates a single line outside the aggregate path.
type CreateDetailRequest struct {
	PurchaseOrderID int64     `json:"purchase_order_id" validate:"required,gt=0"`
	DueDate         time.Time `json:"due_date" validate:"required"`
	OrderQty        int32     `json:"order_qty" validate:"required,gt=0"`
	ProductID       int64     `json:"product_id" validate:"required,gt=0"`
	UnitPrice       float64   `json:"unit_price" validate:"gte=0"`
	ReceivedQty     float64   `json:"received_qty" validate:"gte=0"`
	RejectedQty     float64   `json:"rejected_qty" validate:"gte=0"`
	StockedQty      *float64  `json:"stocked_qty,omitempty" validate:"omitempty,gte=0"`
}

type UpdateDetailRequest struct {
	DueDate     *time.Time `json:"due_date,omitempty"`
	OrderQty    *int32     `json:"order_qty,omitempty" validate:"omitempty,gt=0"`
	ProductID   *int64     `json:"product_id,omitempty" validate:"omitempty,gt=0"`
	UnitPrice   *float64   `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	LineTotal   *float64   `json:"line_total,omitempty"` // ignored, recomputed
	ReceivedQty *float64   `json:"received_qty,omitempty" validate:"omitempty,gte=0"`
	RejectedQty *float64   `json:"rejected_qty,omitempty" validate:"omitempty,gte=0"`
	StockedQty  *float64   `json:"stocked_qty,omitempty" validate:"omitempty,gte=0"`
}
