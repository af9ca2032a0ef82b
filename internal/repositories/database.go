package repository

import (
	"database/sql"
	"fmt"

	"github.com/leaflane/storefront-platform/internal/config"
	"github.com/leaflane/storefront-platform/internal/utils"

	_ "github.com/lib/pq"
)

// Repositories bundles the Postgres-backed repositories behind one
// constructor so main can wire them with a single call.
type Repositories struct {
	DB       *sql.DB
	Product  ProductRepository
	Brand    BrandRepository
	Creator  CreatorRepository
	VIP      VIPRepository
	Waitlist WaitlistRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)
	utils.SetDBTimeout(cfg.Database.QueryTimeout)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		Product:  NewProductRepo(db),
		Brand:    NewBrandRepo(db),
		Creator:  NewCreatorRepo(db),
		VIP:      NewVIPRepo(db),
		Waitlist: NewWaitlistRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
