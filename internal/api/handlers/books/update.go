package books

import (
	"database/sql"
	"net/http"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
)

// handleUpdate serves both PUT (partial=false, all writable fields
// required) and PATCH (partial=true, any subset).
func handleUpdate(db *sql.DB, w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	b, err := storebooks.Update(r.Context(), db, id, in, partial)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
