// Package apperr is the single boundary translator: every domain error kind
// maps here to a status code and wire shape, so handlers never build error
// bodies themselves.
package apperr

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/andesbooks/inventory-api/internal/pricing"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
	"github.com/andesbooks/inventory-api/internal/validate"
)

// Entry is one error detail inside the standard envelope.
type Entry struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type envelope struct {
	Errors []Entry `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Write sends the standard envelope with one entry per detail message.
func Write(w http.ResponseWriter, status int, details ...string) {
	env := envelope{Errors: make([]Entry, 0, len(details))}
	for _, d := range details {
		env.Errors = append(env.Errors, Entry{Status: status, Detail: d})
	}
	writeJSON(w, status, env)
}

// WriteFields sends a 400 envelope with one entry per offending field, all
// of the field's messages joined into the entry.
func WriteFields(w http.ResponseWriter, fe validate.FieldErrors) {
	env := envelope{}
	for _, f := range fe.Fields() {
		env.Errors = append(env.Errors, Entry{
			Status: http.StatusBadRequest,
			Detail: f + ": " + strings.Join(fe[f], " "),
		})
	}
	writeJSON(w, http.StatusBadRequest, env)
}

// calcError is the distinct wire shape of calculate-price failures.
type calcError struct {
	Error string `json:"error"`
}

// WriteError translates a domain error into its response. Anything outside
// the known taxonomy is a fault: logged with its cause, reported generically.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *storebooks.ValidationError
	var uc *pricing.UnsupportedCurrencyError

	switch {
	case errors.Is(err, storebooks.ErrNotFound):
		Write(w, http.StatusNotFound, "book not found")

	case errors.As(err, &ve):
		WriteFields(w, ve.Fields)

	case errors.As(err, &uc):
		writeJSON(w, http.StatusBadRequest, calcError{
			Error: uc.Currency + " is not supported by the exchange rate service",
		})

	case errors.Is(err, pricing.ErrRateServiceUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, calcError{
			Error: "exchange rate service unavailable, please try again later",
		})

	default:
		log.Printf("[api] %s %s: unexpected error: %v", r.Method, r.URL.Path, err)
		Write(w, http.StatusInternalServerError, "internal server error")
	}
}
