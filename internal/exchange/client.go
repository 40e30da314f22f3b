// Package exchange talks to the external exchange-rate feed. The feed is a
// plain JSON document of the form {"rates": {"CLP": 930.50, ...}} served per
// base currency; rate values may arrive as JSON numbers or strings.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnavailable covers every transport-level failure: connection
	// errors, timeouts and non-2xx statuses. Transient, caller may retry
	// later.
	ErrUnavailable = errors.New("exchange rate service unavailable")

	// ErrMalformed means the service answered 2xx but the body could not
	// be decoded. A data-shape problem, not a connectivity one.
	ErrMalformed = errors.New("malformed exchange rate response")
)

// Rates holds the raw rate table keyed by currency code. Values stay raw so
// a single bad entry fails only the lookup that needs it.
type Rates map[string]json.RawMessage

// Decimal extracts and parses the rate for code. ok is false when the key
// is absent, empty, or not a usable number.
func (r Rates) Decimal(code string) (decimal.Decimal, bool) {
	raw, present := r[code]
	if !present {
		return decimal.Decimal{}, false
	}
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Decimal{}, false
		}
		s = strings.TrimSpace(s)
	}
	if s == "" || s == "null" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Client issues a single GET per lookup with a bounded timeout. No retries,
// no caching.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchRates retrieves the rate table for the given base currency, e.g.
// GET <baseURL>/USD.
func (c *Client) FetchRates(ctx context.Context, base string) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+base, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload struct {
		Rates Rates `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return payload.Rates, nil
}
