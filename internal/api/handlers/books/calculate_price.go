package books

import (
	"net/http"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
)

// handleCalculatePrice triggers the core pricing operation. Success returns
// the pricing result; every failure mode is translated by apperr (404 unknown
// book, 400 unsupported currency, 503 rate source down).
func handleCalculatePrice(calc PriceCalculator, w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	res, err := calc.CalculatePrice(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
