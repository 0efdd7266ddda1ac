package vendors

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Vendor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Vendor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateVendorRequest) (Vendor, error) {
	account := req.AccountNumber
	if account == "" {
		account = generateAccountNumber()
	}
	v := Vendor{
		AccountNumber:           account,
		Name:                    req.Name,
		CreditRating:            req.CreditRating,
		PreferredVendorStatus:   boolOr(req.PreferredVendorStatus, true),
		ActiveFlag:              boolOr(req.ActiveFlag, true),
		PurchasingWebServiceURL: req.PurchasingWebServiceURL,
		ModifiedDate:            time.Now(),
	}
	return s.repo.Create(ctx, v)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVendorRequest) (Vendor, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Vendor{}, err
	}

	v := existing
	v.ModifiedDate = time.Now()
	if req.AccountNumber != nil {
		v.AccountNumber = *req.AccountNumber
	}
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.CreditRating != nil {
		v.CreditRating = *req.CreditRating
	}
	if req.PreferredVendorStatus != nil {
		v.PreferredVendorStatus = *req.PreferredVendorStatus
	}
	if req.ActiveFlag != nil {
		v.ActiveFlag = *req.ActiveFlag
	}
	if req.PurchasingWebServiceURL != nil {
		v.PurchasingWebServiceURL = req.PurchasingWebServiceURL
	}

	if err := s.repo.Update(ctx, id, v); err != nil {
		return Vendor{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// generateAccountNumber produces an AW-style account number for vendors
// created without one.
func generateAccountNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return "VEND" + suffix
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
