package books

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/andesbooks/inventory-api/internal/api/apperr"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
)

// bookID parses the {id} path value. A non-numeric id can never reference a
// book, so it reads as not found rather than bad request.
func bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		apperr.Write(w, http.StatusNotFound, "book not found")
		return 0, false
	}
	return id, true
}

// decodeInput reads the request body into a BookInput. Unknown fields
// (including the read-only selling_price_local) are silently ignored.
func decodeInput(w http.ResponseWriter, r *http.Request) (storebooks.BookInput, bool) {
	defer r.Body.Close()

	var in storebooks.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Write(w, http.StatusBadRequest, "invalid JSON body")
		return storebooks.BookInput{}, false
	}
	return in, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
