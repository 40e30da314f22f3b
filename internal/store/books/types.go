package books

import (
	"strings"

	"github.com/andesbooks/inventory-api/internal/validate"
	"github.com/shopspring/decimal"
)

// BookInput carries the client-writable fields of a book. Every field is a
// pointer so partial updates can tell "absent" from "set to zero". id,
// selling_price_local and the timestamps are system-owned and deliberately
// have no input field; unknown JSON keys (including selling_price_local) are
// ignored at decode time.
type BookInput struct {
	Title           *string          `json:"title"`
	Author          *string          `json:"author"`
	ISBN            *string          `json:"isbn"`
	CostUSD         *decimal.Decimal `json:"cost_usd"`
	StockQuantity   *int             `json:"stock_quantity"`
	Category        *string          `json:"category"`
	SupplierCountry *string          `json:"supplier_country"`
}

func (in BookInput) fields() validate.BookFields {
	return validate.BookFields{
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		CostUSD:         in.CostUSD,
		StockQuantity:   in.StockQuantity,
		Category:        in.Category,
		SupplierCountry: in.SupplierCountry,
	}
}

// normalize trims text fields and uppercases the country code in place.
func (in *BookInput) normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(in.Title)
	trim(in.Author)
	trim(in.ISBN)
	trim(in.Category)
	if in.SupplierCountry != nil {
		*in.SupplierCountry = strings.ToUpper(strings.TrimSpace(*in.SupplierCountry))
	}
}

// ListFilter narrows List results. Category is a case-insensitive exact
// match; MaxStock keeps books with stock_quantity <= the threshold. Both are
// optional and compose with AND semantics.
type ListFilter struct {
	Category string
	MaxStock *int
}
