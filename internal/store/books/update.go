package books

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/andesbooks/inventory-api/internal/models"
	"github.com/andesbooks/inventory-api/internal/validate"
	"github.com/shopspring/decimal"
)

// Update applies the provided fields to the book. With partial=false every
// writable field must be present (PUT); with partial=true only supplied
// fields are validated and written (PATCH). updated_at is refreshed either
// way. The whole change is a single UPDATE, so there is no window between
// the existence check and the write.
func Update(ctx context.Context, db *sql.DB, id int64, in BookInput, partial bool) (models.Book, error) {
	in.normalize()
	if fe := validate.Book(in.fields(), partial); len(fe) > 0 {
		return models.Book{}, &ValidationError{Fields: fe}
	}

	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}

	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Author != nil {
		add("author", *in.Author)
	}
	if in.ISBN != nil {
		add("isbn", *in.ISBN)
	}
	if in.CostUSD != nil {
		add("cost_usd", *in.CostUSD)
	}
	if in.StockQuantity != nil {
		add("stock_quantity", *in.StockQuantity)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.SupplierCountry != nil {
		add("supplier_country", *in.SupplierCountry)
	}
	set = append(set, "updated_at = now()")

	args = append(args, id)
	q := `UPDATE books SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + bookColumns

	b, err := scanBook(db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, mapPGError(err)
	}
	return b, nil
}

// SetSellingPrice stores a freshly calculated selling price and refreshes
// updated_at. Only the price calculator calls this; general updates cannot
// touch selling_price_local.
func SetSellingPrice(ctx context.Context, db *sql.DB, id int64, price decimal.Decimal) (time.Time, error) {
	var updatedAt time.Time
	err := db.QueryRowContext(ctx,
		`UPDATE books SET selling_price_local = $1, updated_at = now() WHERE id = $2 RETURNING updated_at`,
		price, id,
	).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	return updatedAt, err
}
