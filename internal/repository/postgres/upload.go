package postgres

import (
	"context"
	"database/sql"
	"time"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

type uploadRepository struct {
	db *sql.DB
}

func NewUploadRepository(db *sql.DB) repository.UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, rec *domain.UploadRecord) error {
	query := `INSERT INTO upload_records (reference, transaction_type, content_hash, status, total, successful, failed, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rec.Reference, rec.TransactionType, rec.ContentHash, rec.Status,
		rec.Total, rec.Successful, rec.Failed, time.Now()).Scan(&rec.ID)
}

// GetCommittedByHash finds a prior committed pass of the identical payload,
// used to answer commit retries idempotently.
func (r *uploadRepository) GetCommittedByHash(ctx context.Context, hash string, txType domain.TransactionType) (*domain.UploadRecord, error) {
	rec := &domain.UploadRecord{}
	query := `SELECT id, reference, transaction_type, content_hash, status, total, successful, failed, created_on
	          FROM upload_records WHERE content_hash = $1 AND transaction_type = $2 AND status = $3
	          ORDER BY created_on DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, hash, txType, domain.UploadStatusCommitted).Scan(
		&rec.ID, &rec.Reference, &rec.TransactionType, &rec.ContentHash, &rec.Status,
		&rec.Total, &rec.Successful, &rec.Failed, &rec.CreatedOn)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *uploadRepository) ListRecent(ctx context.Context, limit int32) ([]domain.UploadRecord, error) {
	query := `SELECT id, reference, transaction_type, content_hash, status, total, successful, failed, created_on
	          FROM upload_records ORDER BY created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.UploadRecord
	for rows.Next() {
		var rec domain.UploadRecord
		if err := rows.Scan(&rec.ID, &rec.Reference, &rec.TransactionType, &rec.ContentHash, &rec.Status,
			&rec.Total, &rec.Successful, &rec.Failed, &rec.CreatedOn); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteOlderThan removes expired audit records and returns their archive
// references so the caller can delete the archived CSV files too.
func (r *uploadRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `DELETE FROM upload_records WHERE created_on < $1 RETURNING reference`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
