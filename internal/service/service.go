package service

import (
	"context"

	"estatedesk-backend/internal/domain"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, property *domain.Property) error
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	UpdateProperty(ctx context.Context, property *domain.Property) error
	ListProperties(ctx context.Context, filter domain.PropertyFilter, page, pageSize int32) ([]domain.Property, int32, error)
	TrashProperty(ctx context.Context, id int32) error
	RestoreProperty(ctx context.Context, id int32) error
	PurgeProperty(ctx context.Context, id int32) error
}

type BulkUploadService interface {
	// Upload runs one pass of the two-phase protocol: validateOnly=true
	// checks rows without persisting, validateOnly=false re-validates and
	// inserts the valid subset.
	Upload(ctx context.Context, csvData string, txType domain.TransactionType, validateOnly bool) (*BulkUploadResult, error)
	ListRecentUploads(ctx context.Context, limit int32) ([]domain.UploadRecord, error)
}

type MasterDataService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListZones(ctx context.Context, projectID int32) ([]domain.Zone, error)
	ListBlocks(ctx context.Context, zoneID int32) ([]domain.Block, error)
	ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error)
	ListFloorRanges(ctx context.Context) ([]domain.FloorRange, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

type ContentService interface {
	CreatePost(ctx context.Context, post *domain.BlogPost) error
	GetPost(ctx context.Context, id int32) (*domain.BlogPost, error)
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

type InquiryService interface {
	SubmitInquiry(ctx context.Context, inquiry *domain.Inquiry) error
	ListInquiries(ctx context.Context, page, pageSize int32) ([]domain.Inquiry, int32, error)
}

type EmailService interface {
	SendInquiryNotification(ctx context.Context, inquiry *domain.Inquiry) error
}
