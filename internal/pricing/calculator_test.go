package pricing_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/andesbooks/inventory-api/internal/exchange"
	"github.com/andesbooks/inventory-api/internal/models"
	"github.com/andesbooks/inventory-api/internal/pricing"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	book    models.Book
	getErr  error
	saved   *decimal.Decimal
	savedID int64
	saveErr error
	savedAt time.Time
}

func (f *fakeStore) Get(ctx context.Context, id int64) (models.Book, error) {
	if f.getErr != nil {
		return models.Book{}, f.getErr
	}
	return f.book, nil
}

func (f *fakeStore) SetSellingPrice(ctx context.Context, id int64, price decimal.Decimal) (time.Time, error) {
	if f.saveErr != nil {
		return time.Time{}, f.saveErr
	}
	f.saved = &price
	f.savedID = id
	return f.savedAt, nil
}

type fakeRates struct {
	rates exchange.Rates
	err   error
}

func (f *fakeRates) FetchRates(ctx context.Context, base string) (exchange.Rates, error) {
	return f.rates, f.err
}

func tolkien() models.Book {
	return models.Book{
		ID:      1,
		Title:   "The Lord of the Rings",
		CostUSD: models.NewMoney(decimal.RequireFromString("20.00")),
	}
}

func newCalc(store *fakeStore, rates *fakeRates) *pricing.Calculator {
	return pricing.New(store, rates, pricing.Config{
		TargetCurrency: "CLP",
		ProfitMargin:   decimal.RequireFromString("0.30"),
	})
}

func TestCalculatePrice_Success(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{book: tolkien(), savedAt: at}
	rates := &fakeRates{rates: exchange.Rates{"CLP": json.RawMessage(`"930.50"`)}}

	res, err := newCalc(store, rates).CalculatePrice(t.Context(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 20.00 * 930.50 = 18610.00; +30% margin = 24193.00
	if got := res.CostLocal.StringFixed(2); got != "18610.00" {
		t.Errorf("cost_local = %s, want 18610.00", got)
	}
	if got := res.SellingPrice.StringFixed(2); got != "24193.00" {
		t.Errorf("selling_price = %s, want 24193.00", got)
	}
	if got := res.MarginPercentage.String(); got != "30" {
		t.Errorf("margin_percentage = %s, want 30", got)
	}
	if res.Currency != "CLP" {
		t.Errorf("currency = %s, want CLP", res.Currency)
	}
	if !res.ExchangeRate.Equal(decimal.RequireFromString("930.50")) {
		t.Errorf("exchange_rate = %s, want 930.50", res.ExchangeRate)
	}
	if !res.CalculatedAt.Equal(at) {
		t.Errorf("calculated_at = %v, want %v", res.CalculatedAt, at)
	}

	if store.saved == nil || store.savedID != 1 {
		t.Fatalf("selling price was not persisted for book 1")
	}
	if !store.saved.Equal(decimal.RequireFromString("24193.00")) {
		t.Errorf("persisted price = %s, want 24193.00", store.saved)
	}
}

func TestCalculatePrice_TransportFailure(t *testing.T) {
	store := &fakeStore{book: tolkien()}
	rates := &fakeRates{err: errors.New("connection refused")}

	_, err := newCalc(store, rates).CalculatePrice(t.Context(), 1)
	if !errors.Is(err, pricing.ErrRateServiceUnavailable) {
		t.Fatalf("want ErrRateServiceUnavailable, got %v", err)
	}
	if store.saved != nil {
		t.Fatal("selling price must stay untouched when the rate fetch fails")
	}
}

func TestCalculatePrice_CurrencyMissing(t *testing.T) {
	store := &fakeStore{book: tolkien()}
	rates := &fakeRates{rates: exchange.Rates{
		"USD": json.RawMessage(`"1.0"`),
		"EUR": json.RawMessage(`"0.9"`),
	}}

	_, err := newCalc(store, rates).CalculatePrice(t.Context(), 1)

	var uc *pricing.UnsupportedCurrencyError
	if !errors.As(err, &uc) {
		t.Fatalf("want UnsupportedCurrencyError, got %v", err)
	}
	if uc.Currency != "CLP" {
		t.Errorf("error names %q, want CLP", uc.Currency)
	}
	if store.saved != nil {
		t.Fatal("selling price must stay untouched for an unsupported currency")
	}
}

func TestCalculatePrice_MalformedRateValue(t *testing.T) {
	store := &fakeStore{book: tolkien()}
	rates := &fakeRates{rates: exchange.Rates{"CLP": json.RawMessage(`"n/a"`)}}

	var uc *pricing.UnsupportedCurrencyError
	_, err := newCalc(store, rates).CalculatePrice(t.Context(), 1)
	if !errors.As(err, &uc) {
		t.Fatalf("want UnsupportedCurrencyError, got %v", err)
	}
}

func TestCalculatePrice_MalformedBody(t *testing.T) {
	store := &fakeStore{book: tolkien()}
	rates := &fakeRates{err: exchange.ErrMalformed}

	var uc *pricing.UnsupportedCurrencyError
	_, err := newCalc(store, rates).CalculatePrice(t.Context(), 1)
	if !errors.As(err, &uc) {
		t.Fatalf("want UnsupportedCurrencyError, got %v", err)
	}
}

func TestCalculatePrice_BookNotFound(t *testing.T) {
	store := &fakeStore{getErr: storebooks.ErrNotFound}
	rates := &fakeRates{rates: exchange.Rates{"CLP": json.RawMessage(`"930.50"`)}}

	_, err := newCalc(store, rates).CalculatePrice(t.Context(), 404)
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("NotFound must propagate unchanged, got %v", err)
	}
}

func TestCalculatePrice_FractionalMarginPercent(t *testing.T) {
	store := &fakeStore{book: tolkien()}
	rates := &fakeRates{rates: exchange.Rates{"CLP": json.RawMessage(`"930.50"`)}}
	calc := pricing.New(store, rates, pricing.Config{
		TargetCurrency: "CLP",
		ProfitMargin:   decimal.RequireFromString("0.125"),
	})

	res, err := calc.CalculatePrice(t.Context(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := res.MarginPercentage.String(); got != "12.5" {
		t.Errorf("margin_percentage = %s, want 12.5", got)
	}
}
