package books

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/andesbooks/inventory-api/internal/models"
)

// List returns books matching the filter, ascending by id.
func List(ctx context.Context, db *sql.DB, f ListFilter) ([]models.Book, error) {
	q := `SELECT ` + bookColumns + ` FROM books`
	args := []any{}

	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if f.Category != "" {
		args = append(args, f.Category)
		and("lower(category) = lower($" + strconv.Itoa(len(args)) + ")")
	}
	if f.MaxStock != nil {
		args = append(args, *f.MaxStock)
		and("stock_quantity <= $" + strconv.Itoa(len(args)))
	}
	q += where + ` ORDER BY id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
