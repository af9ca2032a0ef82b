package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed product category enumeration used by the catalog.
type Category string

const (
	CategoryFlower          Category = "flower"
	CategoryEdibles         Category = "edibles"
	CategoryPreRolls        Category = "pre_rolls"
	CategoryDisposableVapes Category = "disposable_vapes"
	CategoryConcentrate     Category = "concentrate"

	// CategoryAll is the wildcard filter value, not a storable category.
	CategoryAll = "all"
)

func Categories() []Category {
	return []Category{
		CategoryFlower,
		CategoryEdibles,
		CategoryPreRolls,
		CategoryDisposableVapes,
		CategoryConcentrate,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFlower, CategoryEdibles, CategoryPreRolls, CategoryDisposableVapes, CategoryConcentrate:
		return true
	}

	return false
}

// ValidCategoryFilter reports whether s is usable as a catalog filter:
// either the wildcard "all" or one of the enumerated categories.
func ValidCategoryFilter(s string) bool {
	return s == CategoryAll || Category(s).Valid()
}

// Product is owned by the catalog store and immutable from the client's
// perspective. Price is in minor currency units (cents).
type Product struct {
	ID            uuid.UUID `json:"id"`
	BrandID       uuid.UUID `json:"brand_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Category      Category  `json:"category"`
	Price         int64     `json:"price"`
	ImageURL      *string   `json:"image_url"`
	IsAvailable   bool      `json:"is_available"`
	THCPercentage *float64  `json:"thc_percentage"`
	CBDPercentage *float64  `json:"cbd_percentage"`
	StrainType    *string   `json:"strain_type"`
	WeightGrams   *float64  `json:"weight_grams"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
