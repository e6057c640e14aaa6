package service

import (
	"context"
	"fmt"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

func (s *propertyService) CreateProperty(ctx context.Context, p *domain.Property) error {
	if p.Title == "" {
		return fmt.Errorf("property title is required")
	}
	if p.Status == "" {
		p.Status = domain.PropertyStatusDraft
	}
	return s.propertyRepo.Create(ctx, p)
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) UpdateProperty(ctx context.Context, p *domain.Property) error {
	if p.Title == "" {
		return fmt.Errorf("property title is required")
	}
	return s.propertyRepo.Update(ctx, p)
}

func (s *propertyService) ListProperties(ctx context.Context, filter domain.PropertyFilter, page, pageSize int32) ([]domain.Property, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.propertyRepo.List(ctx, filter, page, pageSize)
}

func (s *propertyService) TrashProperty(ctx context.Context, id int32) error {
	return s.propertyRepo.Trash(ctx, id)
}

func (s *propertyService) RestoreProperty(ctx context.Context, id int32) error {
	return s.propertyRepo.Restore(ctx, id)
}

func (s *propertyService) PurgeProperty(ctx context.Context, id int32) error {
	return s.propertyRepo.Purge(ctx, id)
}
