package books

import (
	"context"
	"database/sql"

	"github.com/andesbooks/inventory-api/internal/models"
	"github.com/andesbooks/inventory-api/internal/validate"
)

// Create validates all field constraints and inserts the book. id,
// timestamps and the null selling price come back from the database.
func Create(ctx context.Context, db *sql.DB, in BookInput) (models.Book, error) {
	in.normalize()
	if fe := validate.Book(in.fields(), false); len(fe) > 0 {
		return models.Book{}, &ValidationError{Fields: fe}
	}

	b, err := scanBook(db.QueryRowContext(ctx,
		`INSERT INTO books (title, author, isbn, cost_usd, stock_quantity, category, supplier_country)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+bookColumns,
		*in.Title, *in.Author, *in.ISBN, *in.CostUSD,
		*in.StockQuantity, *in.Category, *in.SupplierCountry,
	))
	if err != nil {
		return models.Book{}, mapPGError(err)
	}
	return b, nil
}
