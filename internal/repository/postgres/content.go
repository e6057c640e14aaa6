package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	query := `INSERT INTO blog_posts (category_id, title, slug, excerpt, body, published, published_on, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		post.CategoryID, post.Title, post.Slug, post.Excerpt, post.Body,
		post.Published, post.PublishedOn, time.Now()).Scan(&post.ID)
}

func (r *contentRepository) GetPostByID(ctx context.Context, id int32) (*domain.BlogPost, error) {
	return r.getPost(ctx, `WHERE id = $1`, id)
}

func (r *contentRepository) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.getPost(ctx, `WHERE slug = $1`, slug)
}

func (r *contentRepository) getPost(ctx context.Context, where string, arg interface{}) (*domain.BlogPost, error) {
	p := &domain.BlogPost{}
	query := `SELECT id, category_id, title, slug, COALESCE(excerpt, ''), body, published, published_on, created_on, updated_on
	          FROM blog_posts ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Excerpt, &p.Body,
		&p.Published, &p.PublishedOn, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *contentRepository) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	query := `UPDATE blog_posts SET category_id=$1, title=$2, slug=$3, excerpt=$4, body=$5, published=$6, published_on=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		post.CategoryID, post.Title, post.Slug, post.Excerpt, post.Body,
		post.Published, post.PublishedOn, time.Now(), post.ID)
	return err
}

func (r *contentRepository) DeletePost(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	return err
}

func (r *contentRepository) ListPosts(ctx context.Context, publishedOnly bool, categoryID int32, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	where := "1=1"
	args := []interface{}{}
	argIdx := 1
	if publishedOnly {
		where += " AND published = TRUE"
	}
	if categoryID > 0 {
		where += fmt.Sprintf(" AND category_id = $%d", argIdx)
		args = append(args, categoryID)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM blog_posts WHERE `+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT id, category_id, title, slug, COALESCE(excerpt, ''), body, published, published_on, created_on, updated_on
	          FROM blog_posts WHERE %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Excerpt, &p.Body,
			&p.Published, &p.PublishedOn, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	return posts, count, nil
}

func (r *contentRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *contentRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, category.Name, category.Slug).Scan(&category.ID)
}

func (r *contentRepository) DeleteCategory(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *contentRepository) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	query := `INSERT INTO testimonials (author, role, quote, rating, published, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.Author, t.Role, t.Quote, t.Rating, t.Published, time.Now()).Scan(&t.ID)
}

func (r *contentRepository) ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	query := `SELECT id, author, COALESCE(role, ''), quote, rating, published, created_on FROM testimonials`
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Role, &t.Quote, &t.Rating, &t.Published, &t.CreatedOn); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, nil
}

func (r *contentRepository) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	query := `UPDATE testimonials SET author=$1, role=$2, quote=$3, rating=$4, published=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, t.Author, t.Role, t.Quote, t.Rating, t.Published, t.ID)
	return err
}

func (r *contentRepository) DeleteTestimonial(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	return err
}
