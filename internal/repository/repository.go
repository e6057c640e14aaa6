package repository

import (
	"context"
	"time"

	"estatedesk-backend/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	CreateBatch(ctx context.Context, properties []*domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	List(ctx context.Context, filter domain.PropertyFilter, page, pageSize int32) ([]domain.Property, int32, error)

	// Trash lifecycle: soft delete, restore, permanent removal.
	Trash(ctx context.Context, id int32) error
	Restore(ctx context.Context, id int32) error
	Purge(ctx context.Context, id int32) error
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type MasterDataRepository interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListZones(ctx context.Context, projectID int32) ([]domain.Zone, error)
	ListBlocks(ctx context.Context, zoneID int32) ([]domain.Block, error)
	ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error)
	ListFloorRanges(ctx context.Context) ([]domain.FloorRange, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// Name lookups used to resolve bulk upload cells onto IDs.
	GetProjectByName(ctx context.Context, name string) (*domain.Project, error)
	GetZoneByName(ctx context.Context, projectID int32, name string) (*domain.Zone, error)
	GetBlockByName(ctx context.Context, zoneID int32, name string) (*domain.Block, error)
	GetPropertyTypeByName(ctx context.Context, name string) (*domain.PropertyType, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
}

type ContentRepository interface {
	CreatePost(ctx context.Context, post *domain.BlogPost) error
	GetPostByID(ctx context.Context, id int32) (*domain.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, post *domain.BlogPost) error
	DeletePost(ctx context.Context, id int32) error
	ListPosts(ctx context.Context, publishedOnly bool, categoryID int32, page, pageSize int32) ([]domain.BlogPost, int32, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int32) error

	CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error
	ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int32) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Inquiry, int32, error)
}

type UploadRepository interface {
	Create(ctx context.Context, record *domain.UploadRecord) error
	GetCommittedByHash(ctx context.Context, hash string, txType domain.TransactionType) (*domain.UploadRecord, error)
	ListRecent(ctx context.Context, limit int32) ([]domain.UploadRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}
