package shipmethods

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]ShipMethod, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (ShipMethod, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateShipMethodRequest) (ShipMethod, error) {
	return s.repo.Create(ctx, ShipMethod{
		Name:         req.Name,
		ShipBase:     req.ShipBase,
		ShipRate:     req.ShipRate,
		ModifiedDate: time.Now(),
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateShipMethodRequest) (ShipMethod, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return ShipMethod{}, err
	}

	sm := existing
	sm.ModifiedDate = time.Now()
	if req.Name != nil {
		sm.Name = *req.Name
	}
	if req.ShipBase != nil {
		sm.ShipBase = *req.ShipBase
	}
	if req.ShipRate != nil {
		sm.ShipRate = *req.ShipRate
	}

	if err := s.repo.Update(ctx, id, sm); err != nil {
		return ShipMethod{}, err
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
