package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leaflane/storefront-platform/internal/models"
	"github.com/leaflane/storefront-platform/internal/utils"
)

type VIPRepository interface {
	GetPassByCode(ctx context.Context, code string) (*models.VIPPass, error)
}

type vipRepository struct {
	DB *sql.DB
}

func NewVIPRepo(db *sql.DB) VIPRepository {
	return &vipRepository{DB: db}
}

func (r *vipRepository) GetPassByCode(ctx context.Context, code string) (*models.VIPPass, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT code, active, expires_at FROM vip_passes WHERE code = $1`

	pass := &models.VIPPass{}

	err := r.DB.QueryRowContext(dbCtx, query, code).Scan(&pass.Code, &pass.Active, &pass.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return pass, nil
}
