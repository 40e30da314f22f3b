package validate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var countryRe = regexp.MustCompile(`^[A-Za-z]{2}$`)

// Bounds of the cost_usd NUMERIC(10,2) column and the isbn VARCHAR(17)
// column; checked here so oversized input fails as a field error before it
// reaches the database.
const (
	costMaxDigits   = 10
	costMaxFraction = 2
	isbnMaxLen      = 17
)

// FieldErrors collects validation messages keyed by field name.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Fields returns the offending field names in stable order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ISBN reports whether s is a 10-or-13-digit ISBN. Hyphens are allowed
// anywhere and stripped before the digit count is checked; the raw form,
// hyphens included, must fit the isbn column.
func ISBN(s string) bool {
	if len(s) > isbnMaxLen {
		return false
	}
	digits := strings.ReplaceAll(s, "-", "")
	if len(digits) != 10 && len(digits) != 13 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BookFields validates client-supplied book fields. Nil pointers mean the
// field was absent from the request; when partial is false every writable
// field is required.
type BookFields struct {
	Title           *string
	Author          *string
	ISBN            *string
	CostUSD         *decimal.Decimal
	StockQuantity   *int
	Category        *string
	SupplierCountry *string
}

func Book(in BookFields, partial bool) FieldErrors {
	fe := FieldErrors{}

	requireText(fe, "title", in.Title, partial)
	requireText(fe, "author", in.Author, partial)
	requireText(fe, "category", in.Category, partial)

	switch {
	case in.ISBN == nil:
		if !partial {
			fe.Add("isbn", "is required")
		}
	case strings.TrimSpace(*in.ISBN) == "":
		fe.Add("isbn", "is required")
	case !ISBN(strings.TrimSpace(*in.ISBN)):
		fe.Add("isbn", "must be a 10 or 13 digit ISBN")
	}

	switch {
	case in.CostUSD == nil:
		if !partial {
			fe.Add("cost_usd", "is required")
		}
	case !in.CostUSD.IsPositive():
		fe.Add("cost_usd", "must be greater than 0")
	default:
		checkCostDigits(fe, *in.CostUSD)
	}

	switch {
	case in.StockQuantity == nil:
		if !partial {
			fe.Add("stock_quantity", "is required")
		}
	case *in.StockQuantity < 0:
		fe.Add("stock_quantity", "must not be negative")
	}

	switch {
	case in.SupplierCountry == nil:
		if !partial {
			fe.Add("supplier_country", "is required")
		}
	case !countryRe.MatchString(strings.TrimSpace(*in.SupplierCountry)):
		fe.Add("supplier_country", "must be a 2-letter country code")
	}

	return fe
}

// checkCostDigits enforces the NUMERIC(10,2) shape: at most 2 fraction
// digits and at most 10 digits in total.
func checkCostDigits(fe FieldErrors, d decimal.Decimal) {
	frac := 0
	if d.Exponent() < 0 {
		frac = int(-d.Exponent())
	}
	if frac > costMaxFraction {
		fe.Add("cost_usd", "must have no more than 2 decimal places")
		return
	}
	if d.NumDigits()-frac > costMaxDigits-costMaxFraction {
		fe.Add("cost_usd", "must have no more than 10 digits in total")
	}
}

func requireText(fe FieldErrors, name string, v *string, partial bool) {
	if v == nil {
		if !partial {
			fe.Add(name, "is required")
		}
		return
	}
	if strings.TrimSpace(*v) == "" {
		fe.Add(name, "is required")
	}
}
