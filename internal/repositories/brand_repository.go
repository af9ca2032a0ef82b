package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leaflane/storefront-platform/internal/models"
	"github.com/leaflane/storefront-platform/internal/utils"
)

type BrandRepository interface {
	ListActiveBrands(ctx context.Context) ([]*models.Brand, error)
	GetBrandByID(ctx context.Context, id string) (*models.Brand, error)
}

type brandRepository struct {
	DB *sql.DB
}

func NewBrandRepo(db *sql.DB) BrandRepository {
	return &brandRepository{DB: db}
}

const brandColumns = `id, name, logo_url, is_active, created_at, updated_at`

func (r *brandRepository) ListActiveBrands(ctx context.Context) ([]*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + brandColumns + ` FROM brands WHERE is_active = TRUE ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var brands []*models.Brand

	for rows.Next() {
		brand := &models.Brand{}

		err := rows.Scan(&brand.ID, &brand.Name, &brand.LogoURL, &brand.IsActive, &brand.CreatedAt, &brand.UpdatedAt)
		if err != nil {
			return nil, err
		}

		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}

func (r *brandRepository) GetBrandByID(ctx context.Context, id string) (*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`

	brand := &models.Brand{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&brand.ID, &brand.Name, &brand.LogoURL, &brand.IsActive, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return brand, nil
}
