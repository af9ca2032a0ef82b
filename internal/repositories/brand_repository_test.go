package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewBrandRepo(db)
	ctx := t.Context()

	brandCols := []string{"id", "name", "logo_url", "is_active", "created_at", "updated_at"}

	t.Run("ListActiveBrands", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, logo_url, is_active, created_at, updated_at FROM brands WHERE is_active = TRUE ORDER BY name`)

		t.Run("Success", func(t *testing.T) {
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WillReturnRows(sqlmock.NewRows(brandCols).
					AddRow(uuid.New(), "Emerald Fields", nil, true, now, now).
					AddRow(uuid.New(), "Green Valley", nil, true, now, now))

			brands, err := repo.ListActiveBrands(ctx)

			require.NoError(t, err)
			require.Len(t, brands, 2)
			assert.Equal(t, "Emerald Fields", brands[0].Name)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - No Active Brands", func(t *testing.T) {
			mock.ExpectQuery(expectedSQL).
				WillReturnRows(sqlmock.NewRows(brandCols))

			brands, err := repo.ListActiveBrands(ctx)

			require.NoError(t, err)
			assert.Empty(t, brands)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetBrandByID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, logo_url, is_active, created_at, updated_at FROM brands WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			brandID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(brandID.String()).
				WillReturnRows(sqlmock.NewRows(brandCols).
					AddRow(brandID, "Emerald Fields", nil, true, now, now))

			brand, err := repo.GetBrandByID(ctx, brandID.String())

			require.NoError(t, err)
			assert.Equal(t, brandID, brand.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			brandID := uuid.New()

			mock.ExpectQuery(expectedSQL).
				WithArgs(brandID.String()).
				WillReturnError(sql.ErrNoRows)

			brand, err := repo.GetBrandByID(ctx, brandID.String())

			require.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, brand)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
