package books

import (
	"database/sql"
	"net/http"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
)

func handleCreate(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	b, err := storebooks.Create(r.Context(), db, in)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}
