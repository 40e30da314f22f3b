// Package pricing implements the calculate-price operation: load the book,
// fetch a live exchange rate, apply the margin with fixed-point decimal
// math, persist the rounded selling price and shape the result.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/andesbooks/inventory-api/internal/exchange"
	"github.com/andesbooks/inventory-api/internal/models"
	"github.com/shopspring/decimal"
)

// CostCurrency is the fixed reference currency acquisition costs are
// recorded in, used as the base for rate lookups.
const CostCurrency = "USD"

// ErrRateServiceUnavailable wraps any transport-level failure talking to the
// rate source. Transient; mapped to a 503 at the boundary.
var ErrRateServiceUnavailable = errors.New("exchange rate service unavailable")

// UnsupportedCurrencyError means the rate source answered but had no usable
// rate for the configured target currency. A configuration problem the
// operator must correct, mapped to a 400 at the boundary.
type UnsupportedCurrencyError struct {
	Currency string
}

func (e *UnsupportedCurrencyError) Error() string {
	return e.Currency + " is not supported by the exchange rate service"
}

// BookStore is the slice of the catalog store the calculator needs.
type BookStore interface {
	Get(ctx context.Context, id int64) (models.Book, error)
	SetSellingPrice(ctx context.Context, id int64, price decimal.Decimal) (time.Time, error)
}

// RateFetcher abstracts the external rate source so tests run without
// network I/O.
type RateFetcher interface {
	FetchRates(ctx context.Context, base string) (exchange.Rates, error)
}

// Config is handed in at construction; the calculator reads no ambient
// state.
type Config struct {
	TargetCurrency string
	ProfitMargin   decimal.Decimal
}

// Result is the successful calculate-price response. The exchange rate is
// reported at full precision; the monetary sub-amounts are rounded to 2
// fraction digits.
type Result struct {
	BookID           int64           `json:"book_id"`
	Title            string          `json:"title"`
	CostUSD          models.Money    `json:"cost_usd"`
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`
	CostLocal        models.Money    `json:"cost_local"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"`
	SellingPrice     models.Money    `json:"selling_price"`
	Currency         string          `json:"currency"`
	CalculatedAt     time.Time       `json:"calculated_at"`
}

type Calculator struct {
	store BookStore
	rates RateFetcher
	cfg   Config
}

func New(store BookStore, rates RateFetcher, cfg Config) *Calculator {
	return &Calculator{store: store, rates: rates, cfg: cfg}
}

// CalculatePrice runs the full operation for one book. Each call re-fetches
// a live rate and overwrites the stored price; concurrent calls for the
// same book are last-write-wins. The persist step never runs if any earlier
// step failed.
func (c *Calculator) CalculatePrice(ctx context.Context, bookID int64) (Result, error) {
	book, err := c.store.Get(ctx, bookID)
	if err != nil {
		return Result{}, err
	}

	rates, err := c.rates.FetchRates(ctx, CostCurrency)
	if err != nil {
		if errors.Is(err, exchange.ErrMalformed) {
			// A 2xx answer we cannot read is a data-shape problem,
			// same class as a missing rate.
			log.Printf("[pricing] no usable rate for %s: %v", c.cfg.TargetCurrency, err)
			return Result{}, &UnsupportedCurrencyError{Currency: c.cfg.TargetCurrency}
		}
		log.Printf("[pricing] rate source unreachable: %v", err)
		return Result{}, fmt.Errorf("%w: %v", ErrRateServiceUnavailable, err)
	}

	rate, ok := rates.Decimal(c.cfg.TargetCurrency)
	if !ok {
		log.Printf("[pricing] rate source has no rate for %s", c.cfg.TargetCurrency)
		return Result{}, &UnsupportedCurrencyError{Currency: c.cfg.TargetCurrency}
	}

	// Intermediate values stay unrounded so rounding error cannot
	// compound; only the reported/stored amounts are rounded.
	costLocal := book.CostUSD.Decimal.Mul(rate)
	marginAmount := costLocal.Mul(c.cfg.ProfitMargin)
	sellingPrice := costLocal.Add(marginAmount).Round(2)

	updatedAt, err := c.store.SetSellingPrice(ctx, bookID, sellingPrice)
	if err != nil {
		return Result{}, err
	}

	return Result{
		BookID:           book.ID,
		Title:            book.Title,
		CostUSD:          book.CostUSD,
		ExchangeRate:     rate,
		CostLocal:        models.NewMoney(costLocal.Round(2)),
		MarginPercentage: marginPercent(c.cfg.ProfitMargin),
		SellingPrice:     models.NewMoney(sellingPrice),
		Currency:         c.cfg.TargetCurrency,
		CalculatedAt:     updatedAt,
	}, nil
}

// marginPercent reports the margin as a percentage, as an integer when
// exact (0.30 -> 30).
func marginPercent(margin decimal.Decimal) decimal.Decimal {
	pct := margin.Mul(decimal.NewFromInt(100))
	if pct.IsInteger() {
		return pct.Truncate(0)
	}
	return pct
}
