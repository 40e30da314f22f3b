package books

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
)

func handleList(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	filter := storebooks.ListFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			apperr.Write(w, http.StatusBadRequest, "threshold: must be an integer")
			return
		}
		filter.MaxStock = &n
	}

	list, err := storebooks.List(r.Context(), db, filter)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
