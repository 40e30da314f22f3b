package books

import (
	"context"
	"database/sql"
)

// Delete removes the book. A repeated delete fails with ErrNotFound and has
// no side effect.
func Delete(ctx context.Context, db *sql.DB, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
