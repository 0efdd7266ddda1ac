package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/adventureworks/purchasing/internal/platform/httpx"
	"github.com/adventureworks/purchasing/internal/purchasing/shared"
)

// Service translates transport DTOs into fully formed aggregates before
// handing them to the repository. The repository replaces whole objects,
// so partial update payloads are merged with the persisted state here
// and every derived field is re-derived from the merged values.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]PurchaseOrder, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*PurchaseOrder, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrder, error) {
	now := time.Now()
	po := PurchaseOrder{
		Status:       req.Status,
		EmployeeID:   req.EmployeeID,
		VendorID:     req.VendorID,
		ShipMethodID: req.ShipMethodID,
		OrderDate:    req.OrderDate,
		ShipDate:     req.ShipDate,
		SubTotal:     req.SubTotal,
		TaxAmt:       req.TaxAmt,
		Freight:      req.Freight,
		TotalDue:     shared.TotalDue(req.SubTotal, req.TaxAmt, req.Freight),
		ModifiedDate: now,
	}
	if req.Details != nil {
		po.Details = buildDetailLines(req.Details, now)
	}
	return s.repo.Create(ctx, po)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePurchaseOrderRequest) (*PurchaseOrder, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	po := PurchaseOrder{
		ID:           id,
		Status:       existing.Status,
		EmployeeID:   existing.EmployeeID,
		VendorID:     existing.VendorID,
		ShipMethodID: existing.ShipMethodID,
		OrderDate:    existing.OrderDate,
		ShipDate:     existing.ShipDate,
		SubTotal:     existing.SubTotal,
		TaxAmt:       existing.TaxAmt,
		Freight:      existing.Freight,
		ModifiedDate: time.Now(),
	}
	if req.Status != nil {
		po.Status = *req.Status
	}
	if req.EmployeeID != nil {
		po.EmployeeID = *req.EmployeeID
	}
	if req.VendorID != nil {
		po.VendorID = *req.VendorID
	}
	if req.ShipMethodID != nil {
		po.ShipMethodID = *req.ShipMethodID
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}
	if req.ShipDate != nil {
		po.ShipDate = req.ShipDate
	}
	if req.SubTotal != nil {
		po.SubTotal = *req.SubTotal
	}
	if req.TaxAmt != nil {
		po.TaxAmt = *req.TaxAmt
	}
	if req.Freight != nil {
		po.Freight = *req.Freight
	}
	po.TotalDue = shared.TotalDue(po.SubTotal, po.TaxAmt, po.Freight)

	// nil keeps the stored detail rows untouched; a supplied list
	// replaces them wholesale.
	if req.Details != nil {
		po.Details = buildDetailLines(*req.Details, po.ModifiedDate)
	}

	return s.repo.Update(ctx, po)
}

// Delete reports whether anything was removed so transport can answer
// not-found for a missing identity.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (s *Service) ListDetails(ctx context.Context) ([]PurchaseOrderDetail, error) {
	return s.repo.ListDetails(ctx)
}

func (s *Service) ListDetailsByOrder(ctx context.Context, purchaseOrderID int64) ([]PurchaseOrderDetail, error) {
	return s.repo.ListDetailsByOrder(ctx, purchaseOrderID)
}

func (s *Service) GetDetail(ctx context.Context, id int64) (*PurchaseOrderDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *Service) CreateDetail(ctx context.Context, req CreateDetailRequest) (*PurchaseOrderDetail, error) {
	if req.PurchaseOrderID <= 0 {
		return nil, fmt.Errorf("purchase order id is required: %w", httpx.ErrValidation)
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("due date is required: %w", httpx.ErrValidation)
	}

	stocked := shared.StockedQty(req.ReceivedQty, req.RejectedQty)
	if req.StockedQty != nil {
		stocked = *req.StockedQty
	}
	return s.repo.CreateDetail(ctx, PurchaseOrderDetail{
		PurchaseOrderID: req.PurchaseOrderID,
		DueDate:         req.DueDate,
		OrderQty:        req.OrderQty,
		ProductID:       req.ProductID,
		UnitPrice:       req.UnitPrice,
		LineTotal:       shared.LineTotal(req.OrderQty, req.UnitPrice),
		ReceivedQty:     req.ReceivedQty,
		RejectedQty:     req.RejectedQty,
		StockedQty:      stocked,
		ModifiedDate:    time.Now(),
	})
}

func (s *Service) UpdateDetail(ctx context.Context, id int64, req UpdateDetailRequest) (*PurchaseOrderDetail, error) {
	existing, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	d := *existing
	d.ModifiedDate = time.Now()
	if req.DueDate != nil {
		d.DueDate = *req.DueDate
	}
	if req.OrderQty != nil {
		d.OrderQty = *req.OrderQty
	}
	if req.ProductID != nil {
		d.ProductID = *req.ProductID
	}
	if req.UnitPrice != nil {
		d.UnitPrice = *req.UnitPrice
	}
	if req.ReceivedQty != nil {
		d.ReceivedQty = *req.ReceivedQty
	}
	if req.RejectedQty != nil {
		d.RejectedQty = *req.RejectedQty
	}

	// Derived fields come from the merged values, never from the
	// payload or a stale stored copy.
	d.LineTotal = shared.LineTotal(d.OrderQty, d.UnitPrice)
	if req.StockedQty != nil {
		d.StockedQty = *req.StockedQty
	} else {
		d.StockedQty = shared.StockedQty(d.ReceivedQty, d.RejectedQty)
	}

	if err := s.repo.UpdateDetail(ctx, d); err != nil {
		return nil, err
	}
	return s.repo.GetDetail(ctx, id)
}

func (s *Service) DeleteDetail(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.DeleteDetail(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func buildDetailLines(lines []CreateOrderDetailLine, now time.Time) []PurchaseOrderDetail {
	details := make([]PurchaseOrderDetail, 0, len(lines))
	for _, line := range lines {
		stocked := shared.StockedQty(line.ReceivedQty, line.RejectedQty)
		if line.StockedQty != nil {
			stocked = *line.StockedQty
		}
		details = append(details, PurchaseOrderDetail{
			DueDate:      line.DueDate,
			OrderQty:     line.OrderQty,
			ProductID:    line.ProductID,
			UnitPrice:    line.UnitPrice,
			LineTotal:    shared.LineTotal(line.OrderQty, line.UnitPrice),
			ReceivedQty:  line.ReceivedQty,
			RejectedQty:  line.RejectedQty,
			StockedQty:   stocked,
			ModifiedDate: now,
		})
	}
	return details
}
