package router

import (
	"database/sql"
	"net/http"

	"github.com/andesbooks/inventory-api/internal/api/handlers/books"
)

func Router(db *sql.DB, calc books.PriceCalculator) http.Handler {
	mux := http.NewServeMux()

	h := books.Handler(db, calc)

	mux.Handle("GET /books", h)  // list (GET also serves HEAD)
	mux.Handle("POST /books", h) // create
	mux.Handle("GET /books/{id}", h)
	mux.Handle("PUT /books/{id}", h)
	mux.Handle("PATCH /books/{id}", h)
	mux.Handle("DELETE /books/{id}", h)
	mux.Handle("POST /books/{id}/calculate-price", h)
	mux.Handle("OPTIONS /books", h)
	mux.Handle("OPTIONS /books/{id}", h)

	return mux
}
