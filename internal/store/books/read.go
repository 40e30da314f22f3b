package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/andesbooks/inventory-api/internal/models"
)

const bookColumns = `id, title, author, isbn, cost_usd, selling_price_local, stock_quantity, category, supplier_country, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(rs rowScanner) (models.Book, error) {
	var b models.Book
	err := rs.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN,
		&b.CostUSD, &b.SellingPriceLocal, &b.StockQuantity,
		&b.Category, &b.SupplierCountry, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Get returns the book with the given id, or ErrNotFound.
func Get(ctx context.Context, db *sql.DB, id int64) (models.Book, error) {
	b, err := scanBook(db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	return b, err
}
