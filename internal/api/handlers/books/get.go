package books

import (
	"database/sql"
	"net/http"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
)

func handleGet(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := storebooks.Get(r.Context(), db, id)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
