package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leaflane/storefront-platform/internal/models"
	"github.com/leaflane/storefront-platform/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, query models.CatalogQuery) ([]*models.Product, int, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, brand_id, name, description, category, price, image_url, is_available, thc_percentage, cbd_percentage, strain_type, weight_grams, created_at, updated_at`

func scanProduct(s interface{ Scan(dest ...any) error }) (*models.Product, error) {
	product := &models.Product{}

	err := s.Scan(
		&product.ID, &product.BrandID, &product.Name, &product.Description,
		&product.Category, &product.Price, &product.ImageURL, &product.IsAvailable,
		&product.THCPercentage, &product.CBDPercentage, &product.StrainType,
		&product.WeightGrams, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts runs one count query and one page query with the same filter
// set. Category and search are conjunctive; category is an exact match and
// search is a case-insensitive substring match on name or description.
func (r *productRepository) ListProducts(ctx context.Context, query models.CatalogQuery) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := `brand_id = $1 AND is_available = TRUE`
	args := []any{query.BrandID}

	if query.Category != models.CategoryAll {
		args = append(args, query.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if query.Search != "" {
		args = append(args, "%"+query.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE ` + where

	err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (query.Page - 1) * query.PageSize

	args = append(args, query.PageSize, offset)
	pageQuery := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY id LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, pageQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

// GetProductsByIDs resolves a set of product IDs in one round trip. IDs that
// no longer exist are simply absent from the result.
func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
