package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"estatedesk-backend/internal/domain"
)

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) CreateBatch(ctx context.Context, properties []*domain.Property) error {
	args := m.Called(ctx, properties)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) List(ctx context.Context, filter domain.PropertyFilter, page, pageSize int32) ([]domain.Property, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Property), args.Get(1).(int32), args.Error(2)
}
func (m *MockPropertyRepo) Trash(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) Restore(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) Purge(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockMasterDataRepo
type MockMasterDataRepo struct {
	mock.Mock
}

func (m *MockMasterDataRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockMasterDataRepo) ListZones(ctx context.Context, projectID int32) ([]domain.Zone, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Zone), args.Error(1)
}
func (m *MockMasterDataRepo) ListBlocks(ctx context.Context, zoneID int32) ([]domain.Block, error) {
	args := m.Called(ctx, zoneID)
	return args.Get(0).([]domain.Block), args.Error(1)
}
func (m *MockMasterDataRepo) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PropertyType), args.Error(1)
}
func (m *MockMasterDataRepo) ListFloorRanges(ctx context.Context) ([]domain.FloorRange, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FloorRange), args.Error(1)
}
func (m *MockMasterDataRepo) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockMasterDataRepo) GetProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockMasterDataRepo) GetZoneByName(ctx context.Context, projectID int32, name string) (*domain.Zone, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}
func (m *MockMasterDataRepo) GetBlockByName(ctx context.Context, zoneID int32, name string) (*domain.Block, error) {
	args := m.Called(ctx, zoneID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Block), args.Error(1)
}
func (m *MockMasterDataRepo) GetPropertyTypeByName(ctx context.Context, name string) (*domain.PropertyType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyType), args.Error(1)
}
func (m *MockMasterDataRepo) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// MockUploadRepo
type MockUploadRepo struct {
	mock.Mock
}

func (m *MockUploadRepo) Create(ctx context.Context, record *domain.UploadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockUploadRepo) GetCommittedByHash(ctx context.Context, hash string, txType domain.TransactionType) (*domain.UploadRecord, error) {
	args := m.Called(ctx, hash, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadRecord), args.Error(1)
}
func (m *MockUploadRepo) ListRecent(ctx context.Context, limit int32) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}
func (m *MockUploadRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]string), args.Error(1)
}

// MockArchiveStore
type MockArchiveStore struct {
	mock.Mock
}

func (m *MockArchiveStore) Save(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}
func (m *MockArchiveStore) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockArchiveStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockInquiryRepo
type MockInquiryRepo struct {
	mock.Mock
}

func (m *MockInquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}
func (m *MockInquiryRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Inquiry, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Inquiry), args.Get(1).(int32), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInquiryNotification(ctx context.Context, inquiry *domain.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}
