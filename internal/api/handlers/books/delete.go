package books

import (
	"database/sql"
	"net/http"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
)

func handleDelete(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	if err := storebooks.Delete(r.Context(), db, id); err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	// No body on a successful delete.
	w.WriteHeader(http.StatusNoContent)
}
