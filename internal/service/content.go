package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	if post.Title == "" {
		return fmt.Errorf("post title is required")
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.Published && post.PublishedOn == nil {
		now := time.Now()
		post.PublishedOn = &now
	}
	return s.contentRepo.CreatePost(ctx, post)
}

func (s *contentService) GetPost(ctx context.Context, id int32) (*domain.BlogPost, error) {
	return s.contentRepo.GetPostByID(ctx, id)
}

func (s *contentService) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.contentRepo.GetPostBySlug(ctx, slug)
}

func (s *contentService) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	if post.Published && post.PublishedOn == nil {
		now := time.Now()
		post.PublishedOn = &now
	}
	return s.contentRepo.UpdatePost(ctx, post)
}

func (s *contentService) DeletePost(ctx context.Context, id int32) error {
	return s.contentRepo.DeletePost(ctx, id)
}

func (s *contentService) ListPosts(ctx context.Context, publishedOnly bool, categoryID int32, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return s.contentRepo.ListPosts(ctx, publishedOnly, categoryID, page, pageSize)
}

func (s *contentService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.contentRepo.ListCategories(ctx)
}

func (s *contentService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return s.contentRepo.CreateCategory(ctx, category)
}

func (s *contentService) DeleteCategory(ctx context.Context, id int32) error {
	return s.contentRepo.DeleteCategory(ctx, id)
}

func (s *contentService) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	if t.Author == "" || t.Quote == "" {
		return fmt.Errorf("testimonial author and quote are required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}
	return s.contentRepo.CreateTestimonial(ctx, t)
}

func (s *contentService) ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	return s.contentRepo.ListTestimonials(ctx, publishedOnly)
}

func (s *contentService) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	return s.contentRepo.UpdateTestimonial(ctx, t)
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id int32) error {
	return s.contentRepo.DeleteTestimonial(ctx, id)
}

// Slugify collapses a title into a URL-safe slug.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
