package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/andesbooks/inventory-api/internal/models"
	"github.com/shopspring/decimal"
)

// Store bundles the package functions behind a value the price calculator
// can hold as an interface, so its tests can swap in a fake.
type Store struct {
	DB *sql.DB
}

func (s Store) Get(ctx context.Context, id int64) (models.Book, error) {
	return Get(ctx, s.DB, id)
}

func (s Store) SetSellingPrice(ctx context.Context, id int64, price decimal.Decimal) (time.Time, error) {
	return SetSellingPrice(ctx, s.DB, id, price)
}
