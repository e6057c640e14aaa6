package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

const propertyColumns = `id, project_id, zone_id, block_id, property_number, property_type_id, transaction_type,
	bedrooms, bathrooms, unit_size, COALESCE(furnishing, ''), COALESCE(view, ''), title, COALESCE(description, ''),
	price, currency_code, available_from, status, created_on, updated_on, deleted_on`

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (project_id, zone_id, block_id, property_number, property_type_id, transaction_type,
	          bedrooms, bathrooms, unit_size, furnishing, view, title, description, price, currency_code, available_from, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.ProjectID, p.ZoneID, p.BlockID, p.PropertyNumber, p.PropertyTypeID, p.TransactionType,
		p.Bedrooms, p.Bathrooms, p.UnitSize, p.Furnishing, p.View, p.Title, p.Description,
		p.Price, p.CurrencyCode, p.AvailableFrom, p.Status, time.Now()).Scan(&p.ID)
}

// CreateBatch inserts all properties inside one transaction so a commit pass
// is all-or-nothing at the storage level.
func (r *propertyRepository) CreateBatch(ctx context.Context, properties []*domain.Property) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO properties (project_id, zone_id, block_id, property_number, property_type_id, transaction_type,
	          bedrooms, bathrooms, unit_size, furnishing, view, title, description, price, currency_code, available_from, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18) RETURNING id`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, p := range properties {
		if err := stmt.QueryRowContext(ctx,
			p.ProjectID, p.ZoneID, p.BlockID, p.PropertyNumber, p.PropertyTypeID, p.TransactionType,
			p.Bedrooms, p.Bathrooms, p.UnitSize, p.Furnishing, p.View, p.Title, p.Description,
			p.Price, p.CurrencyCode, p.AvailableFrom, p.Status, now).Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to insert property %q: %w", p.PropertyNumber, err)
		}
	}
	return tx.Commit()
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ProjectID, &p.ZoneID, &p.BlockID, &p.PropertyNumber, &p.PropertyTypeID, &p.TransactionType,
		&p.Bedrooms, &p.Bathrooms, &p.UnitSize, &p.Furnishing, &p.View, &p.Title, &p.Description,
		&p.Price, &p.CurrencyCode, &p.AvailableFrom, &p.Status, &p.CreatedOn, &p.UpdatedOn, &p.DeletedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET project_id=$1, zone_id=$2, block_id=$3, property_number=$4, property_type_id=$5,
	          transaction_type=$6, bedrooms=$7, bathrooms=$8, unit_size=$9, furnishing=$10, view=$11, title=$12,
	          description=$13, price=$14, currency_code=$15, available_from=$16, status=$17, updated_on=$18 WHERE id=$19`
	_, err := r.db.ExecContext(ctx, query,
		p.ProjectID, p.ZoneID, p.BlockID, p.PropertyNumber, p.PropertyTypeID, p.TransactionType,
		p.Bedrooms, p.Bathrooms, p.UnitSize, p.Furnishing, p.View, p.Title, p.Description,
		p.Price, p.CurrencyCode, p.AvailableFrom, p.Status, time.Now(), p.ID)
	return err
}

func (r *propertyRepository) List(ctx context.Context, filter domain.PropertyFilter, page, pageSize int32) ([]domain.Property, int32, error) {
	where := "deleted_on IS NULL"
	if filter.Trashed {
		where = "deleted_on IS NOT NULL"
	}

	args := []interface{}{}
	argIdx := 1
	if filter.TransactionType != "" {
		where += fmt.Sprintf(" AND transaction_type = $%d", argIdx)
		args = append(args, filter.TransactionType)
		argIdx++
	}
	if filter.ProjectID > 0 {
		where += fmt.Sprintf(" AND project_id = $%d", argIdx)
		args = append(args, filter.ProjectID)
		argIdx++
	}
	if filter.ZoneID > 0 {
		where += fmt.Sprintf(" AND zone_id = $%d", argIdx)
		args = append(args, filter.ZoneID)
		argIdx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var count int32
	countQuery := `SELECT count(*) FROM properties WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		propertyColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(
			&p.ID, &p.ProjectID, &p.ZoneID, &p.BlockID, &p.PropertyNumber, &p.PropertyTypeID, &p.TransactionType,
			&p.Bedrooms, &p.Bathrooms, &p.UnitSize, &p.Furnishing, &p.View, &p.Title, &p.Description,
			&p.Price, &p.CurrencyCode, &p.AvailableFrom, &p.Status, &p.CreatedOn, &p.UpdatedOn, &p.DeletedOn); err != nil {
			return nil, 0, err
		}
		properties = append(properties, p)
	}
	return properties, count, nil
}

func (r *propertyRepository) Trash(ctx context.Context, id int32) error {
	query := `UPDATE properties SET deleted_on = $1 WHERE id = $2 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *propertyRepository) Restore(ctx context.Context, id int32) error {
	query := `UPDATE properties SET deleted_on = NULL WHERE id = $1 AND deleted_on IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *propertyRepository) Purge(ctx context.Context, id int32) error {
	query := `DELETE FROM properties WHERE id = $1 AND deleted_on IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *propertyRepository) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM properties WHERE deleted_on IS NOT NULL AND deleted_on < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
