package postgres

import (
	"context"
	"database/sql"
	"time"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

type inquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, i *domain.Inquiry) error {
	query := `INSERT INTO inquiries (name, email, phone, subject, message, property_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		i.Name, i.Email, i.Phone, i.Subject, i.Message, i.PropertyID, time.Now()).Scan(&i.ID)
}

func (r *inquiryRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Inquiry, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM inquiries`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, email, COALESCE(phone, ''), COALESCE(subject, ''), message, property_id, created_on
	          FROM inquiries ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		var i domain.Inquiry
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Subject, &i.Message, &i.PropertyID, &i.CreatedOn); err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, count, nil
}
