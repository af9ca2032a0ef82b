package repository

import (
	"context"
	"database/sql"

	"github.com/leaflane/storefront-platform/internal/models"
	"github.com/leaflane/storefront-platform/internal/utils"
)

type WaitlistRepository interface {
	Insert(ctx context.Context, entry *models.WaitlistEntry) error
}

type waitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepo(db *sql.DB) WaitlistRepository {
	return &waitlistRepository{DB: db}
}

func (r *waitlistRepository) Insert(ctx context.Context, entry *models.WaitlistEntry) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO waitlist (name, email, instagram, ref_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, entry.Name, entry.Email, entry.Instagram, entry.RefCode).Scan(&entry.ID, &entry.CreatedAt)
}
