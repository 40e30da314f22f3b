package books

import (
	"errors"
	"strings"

	"github.com/andesbooks/inventory-api/internal/validate"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("book not found")

// ValidationError carries one or more messages per offending field. It is
// the store-boundary form of every constraint violation, including the
// duplicate-isbn case raised by the database.
type ValidationError struct {
	Fields validate.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}

// mapPGError converts constraint violations raised by Postgres into
// ValidationError so callers never see a raw driver error for bad input.
// The unique index on isbn is the check-and-insert step, so a duplicate
// surfaces here rather than from a pre-read.
func mapPGError(err error) error {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return err
	}

	switch pg.Code {
	case "23505": // unique_violation
		if pg.ConstraintName == "books_isbn_key" || strings.Contains(pg.Detail, "isbn") {
			fe := validate.FieldErrors{}
			fe.Add("isbn", "a book with this ISBN already exists")
			return &ValidationError{Fields: fe}
		}
	case "23514": // check_violation
		fe := validate.FieldErrors{}
		switch {
		case strings.Contains(pg.ConstraintName, "cost"):
			fe.Add("cost_usd", "must be greater than 0")
		case strings.Contains(pg.ConstraintName, "stock"):
			fe.Add("stock_quantity", "must not be negative")
		default:
			fe.Add("book", "constraint failed")
		}
		return &ValidationError{Fields: fe}

	// Backstops for column-shape violations. validate.Book enforces the same
	// bounds up front, so these only fire if the two ever drift apart.
	case "22003": // numeric_value_out_of_range: NUMERIC(10,2) cost columns
		fe := validate.FieldErrors{}
		fe.Add("cost_usd", "must have no more than 10 digits in total")
		return &ValidationError{Fields: fe}
	case "22001": // string_data_right_truncation: isbn VARCHAR(17)
		fe := validate.FieldErrors{}
		fe.Add("isbn", "must be at most 17 characters")
		return &ValidationError{Fields: fe}
	}
	return err
}
