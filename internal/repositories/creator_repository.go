package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/leaflane/storefront-platform/internal/models"
	"github.com/leaflane/storefront-platform/internal/utils"
)

type CreatorRepository interface {
	GetByHandle(ctx context.Context, handle string) (*models.Creator, error)
	HandleExists(ctx context.Context, handle string) (bool, error)
	ReserveHandle(ctx context.Context, email, handle string) (string, error)
	UpdateProfile(ctx context.Context, email string, profile *models.CreatorProfile) error
}

type creatorRepository struct {
	DB *sql.DB
}

func NewCreatorRepo(db *sql.DB) CreatorRepository {
	return &creatorRepository{DB: db}
}

func (r *creatorRepository) GetByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, handle, display_name, bio, avatar_url, links, created_at, updated_at
		FROM creators
		WHERE handle = $1
	`

	creator := &models.Creator{}

	var linksJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, handle).Scan(
		&creator.ID, &creator.Email, &creator.Handle, &creator.DisplayName,
		&creator.Bio, &creator.AvatarURL, &linksJSON, &creator.CreatedAt, &creator.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if len(linksJSON) > 0 {
		if err := json.Unmarshal(linksJSON, &creator.Links); err != nil {
			return nil, fmt.Errorf("failed to unmarshal creator links: %w", err)
		}
	}

	return creator, nil
}

func (r *creatorRepository) HandleExists(ctx context.Context, handle string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM creators WHERE handle = $1)`

	var exists bool

	err := r.DB.QueryRowContext(dbCtx, query, handle).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("querying database: %w", err)
	}

	return exists, nil
}

// ReserveHandle upserts keyed by email, so a creator re-reserving under the
// same email just moves to the new handle.
func (r *creatorRepository) ReserveHandle(ctx context.Context, email, handle string) (string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO creators (email, handle)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET handle = EXCLUDED.handle, updated_at = NOW()
		RETURNING handle
	`

	var reserved string

	err := r.DB.QueryRowContext(dbCtx, query, email, handle).Scan(&reserved)
	if err != nil {
		return "", fmt.Errorf("failed to reserve handle: %w", err)
	}

	return reserved, nil
}

func (r *creatorRepository) UpdateProfile(ctx context.Context, email string, profile *models.CreatorProfile) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	linksJSON, err := json.Marshal(profile.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal creator links: %w", err)
	}

	query := `
		UPDATE creators
		SET display_name = $1, bio = $2, avatar_url = $3, links = $4, updated_at = NOW()
		WHERE email = $5
	`

	result, err := r.DB.ExecContext(dbCtx, query, profile.DisplayName, profile.Bio, profile.AvatarURL, linksJSON, email)
	if err != nil {
		return fmt.Errorf("failed to update the profile: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
