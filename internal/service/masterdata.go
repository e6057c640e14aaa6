package service

import (
	"context"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

type masterDataService struct {
	masterRepo repository.MasterDataRepository
}

func NewMasterDataService(masterRepo repository.MasterDataRepository) MasterDataService {
	return &masterDataService{masterRepo: masterRepo}
}

func (s *masterDataService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.masterRepo.ListProjects(ctx)
}

func (s *masterDataService) ListZones(ctx context.Context, projectID int32) ([]domain.Zone, error) {
	return s.masterRepo.ListZones(ctx, projectID)
}

func (s *masterDataService) ListBlocks(ctx context.Context, zoneID int32) ([]domain.Block, error) {
	return s.masterRepo.ListBlocks(ctx, zoneID)
}

func (s *masterDataService) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	return s.masterRepo.ListPropertyTypes(ctx)
}

func (s *masterDataService) ListFloorRanges(ctx context.Context) ([]domain.FloorRange, error) {
	return s.masterRepo.ListFloorRanges(ctx)
}

func (s *masterDataService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.masterRepo.ListCurrencies(ctx)
}
