package models

import (
	"github.com/shopspring/decimal"
)

// Money is a 2-fraction-digit monetary amount. It behaves like
// decimal.Decimal everywhere except on the wire, where it always renders
// with exactly two fraction digits ("20.00", not "20").
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

// NullMoney is Money that can be null, for selling_price_local before the
// first price calculation.
type NullMoney struct {
	decimal.NullDecimal
}

func (m NullMoney) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + m.Decimal.StringFixed(2) + `"`), nil
}

func (m *NullMoney) UnmarshalJSON(b []byte) error {
	return m.NullDecimal.UnmarshalJSON(b)
}
