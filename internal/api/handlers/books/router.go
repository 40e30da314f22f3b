package books

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/andesbooks/inventory-api/internal/pricing"
)

const allowBooks = "GET, POST, PATCH, PUT, DELETE, OPTIONS, HEAD"

// PriceCalculator is what the calculate-price endpoint needs; satisfied by
// *pricing.Calculator.
type PriceCalculator interface {
	CalculatePrice(ctx context.Context, bookID int64) (pricing.Result, error)
}

// Handler dispatches every /books request by method and path shape.
func Handler(db *sql.DB, calc PriceCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			if r.PathValue("id") == "" {
				handleList(db, w, r)
				return
			}
			handleGet(db, w, r)

		case http.MethodPost:
			if strings.HasSuffix(r.URL.Path, "/calculate-price") {
				handleCalculatePrice(calc, w, r)
				return
			}
			handleCreate(db, w, r)

		case http.MethodPut:
			handleUpdate(db, w, r, false)

		case http.MethodPatch:
			handleUpdate(db, w, r, true)

		case http.MethodDelete:
			handleDelete(db, w, r)

		case http.MethodOptions:
			w.Header().Set("Allow", allowBooks)
			w.WriteHeader(http.StatusNoContent)

		default:
			w.Header().Set("Allow", allowBooks)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
