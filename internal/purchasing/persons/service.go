package persons

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

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Person, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreatePersonRequest) (Person, error) {
	p := Person{
		PersonType:   req.PersonType,
		Title:        req.Title,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Suffix:       req.Suffix,
		ModifiedDate: time.Now(),
	}
	if req.NameStyle != nil {
		p.NameStyle = *req.NameStyle
	}
	if req.EmailPromotion != nil {
		p.EmailPromotion = *req.EmailPromotion
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePersonRequest) (Person, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Person{}, err
	}

	p := existing
	p.ModifiedDate = time.Now()
	if req.PersonType != nil {
		p.PersonType = *req.PersonType
	}
	if req.NameStyle != nil {
		p.NameStyle = *req.NameStyle
	}
	if req.Title != nil {
		p.Title = req.Title
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		p.MiddleName = req.MiddleName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Suffix != nil {
		p.Suffix = req.Suffix
	}
	if req.EmailPromotion != nil {
		p.EmailPromotion = *req.EmailPromotion
	}

	if err := s.repo.Update(ctx, id, p); err != nil {
		return Person{}, err
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
