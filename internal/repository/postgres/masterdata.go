package postgres

import (
	"context"
	"database/sql"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/repository"
)

type masterDataRepository struct {
	db *sql.DB
}

func NewMasterDataRepository(db *sql.DB) repository.MasterDataRepository {
	return &masterDataRepository{db: db}
}

func (r *masterDataRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *masterDataRepository) ListZones(ctx context.Context, projectID int32) ([]domain.Zone, error) {
	query := `SELECT id, project_id, name FROM zones WHERE ($1 = 0 OR project_id = $1) ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		var z domain.Zone
		if err := rows.Scan(&z.ID, &z.ProjectID, &z.Name); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (r *masterDataRepository) ListBlocks(ctx context.Context, zoneID int32) ([]domain.Block, error) {
	query := `SELECT id, zone_id, name FROM blocks WHERE ($1 = 0 OR zone_id = $1) ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, zoneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.Block
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.ID, &b.ZoneID, &b.Name); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (r *masterDataRepository) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM property_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.PropertyType
	for rows.Next() {
		var t domain.PropertyType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func (r *masterDataRepository) ListFloorRanges(ctx context.Context) ([]domain.FloorRange, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label FROM floor_ranges ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranges []domain.FloorRange
	for rows.Next() {
		var f domain.FloorRange
		if err := rows.Scan(&f.ID, &f.Label); err != nil {
			return nil, err
		}
		ranges = append(ranges, f)
	}
	return ranges, nil
}

func (r *masterDataRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, COALESCE(name, '') FROM currencies ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, nil
}

func (r *masterDataRepository) GetProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	p := &domain.Project{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM projects WHERE name = $1`, name).Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *masterDataRepository) GetZoneByName(ctx context.Context, projectID int32, name string) (*domain.Zone, error) {
	z := &domain.Zone{}
	query := `SELECT id, project_id, name FROM zones WHERE project_id = $1 AND name = $2`
	err := r.db.QueryRowContext(ctx, query, projectID, name).Scan(&z.ID, &z.ProjectID, &z.Name)
	if err != nil {
		return nil, err
	}
	return z, nil
}

func (r *masterDataRepository) GetBlockByName(ctx context.Context, zoneID int32, name string) (*domain.Block, error) {
	b := &domain.Block{}
	query := `SELECT id, zone_id, name FROM blocks WHERE zone_id = $1 AND name = $2`
	err := r.db.QueryRowContext(ctx, query, zoneID, name).Scan(&b.ID, &b.ZoneID, &b.Name)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *masterDataRepository) GetPropertyTypeByName(ctx context.Context, name string) (*domain.PropertyType, error) {
	t := &domain.PropertyType{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM property_types WHERE name = $1`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *masterDataRepository) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	c := &domain.Currency{}
	query := `SELECT id, code, COALESCE(name, '') FROM currencies WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		return nil, err
	}
	return c, nil
}
