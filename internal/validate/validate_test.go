package validate_test

import (
	"testing"

	"github.com/andesbooks/inventory-api/internal/validate"
	"github.com/shopspring/decimal"
)

func TestISBN(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"978-0618640157", true},
		{"9780618640157", true},
		{"0-306-40615-2", true},
		{"0306406152", true},
		{"12345", false},
		{"978-06186401", false},   // 11 digits
		{"97806186401579", false}, // 14 digits
		{"978-06X8640157", false}, // letter
		{"", false},
		{"----------", false},
		{"9-7-8-0-6-1-8-6-4-0-1-5-7", false}, // 13 digits but 25 chars, over the column width
		{"978-0-618-64015-7", true},          // 17 chars, exactly the column width
	}
	for _, c := range cases {
		if got := validate.ISBN(c.in); got != c.ok {
			t.Errorf("ISBN(%q) = %v, want %v", c.in, got, c.ok)
		}
	}
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBook_CreateRequiresEverything(t *testing.T) {
	fe := validate.Book(validate.BookFields{}, false)

	want := []string{"author", "category", "cost_usd", "isbn", "stock_quantity", "supplier_country", "title"}
	got := fe.Fields()
	if len(got) != len(want) {
		t.Fatalf("offending fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offending fields = %v, want %v", got, want)
		}
	}
}

func TestBook_Valid(t *testing.T) {
	fe := validate.Book(validate.BookFields{
		Title:           str("Dune"),
		Author:          str("Frank Herbert"),
		ISBN:            str("978-0441013593"),
		CostUSD:         dec("25.00"),
		StockQuantity:   num(15),
		Category:        str("Sci-Fi"),
		SupplierCountry: str("US"),
	}, false)
	if len(fe) != 0 {
		t.Fatalf("unexpected field errors: %v", fe)
	}
}

func TestBook_FieldRules(t *testing.T) {
	fe := validate.Book(validate.BookFields{
		Title:           str("  "),
		Author:          str("Some Author"),
		ISBN:            str("not-an-isbn"),
		CostUSD:         dec("0"),
		StockQuantity:   num(-1),
		Category:        str("Fiction"),
		SupplierCountry: str("USA"),
	}, false)

	for _, f := range []string{"title", "isbn", "cost_usd", "stock_quantity", "supplier_country"} {
		if len(fe[f]) == 0 {
			t.Errorf("expected a message for %s, got none (all: %v)", f, fe)
		}
	}
	if len(fe["author"]) != 0 || len(fe["category"]) != 0 {
		t.Errorf("unexpected messages for valid fields: %v", fe)
	}
}

func TestBook_CostDigitBounds(t *testing.T) {
	cases := []struct {
		cost string
		ok   bool
	}{
		{"25.00", true},
		{"99999999.99", true},      // widest value NUMERIC(10,2) holds
		{"100000000.00", false},    // 9 integer digits
		{"123456789012.00", false}, // would overflow the column
		{"25.005", false},          // 3 decimal places
		{"0.01", true},
	}
	for _, c := range cases {
		fe := validate.Book(validate.BookFields{CostUSD: dec(c.cost)}, true)
		if got := len(fe["cost_usd"]) == 0; got != c.ok {
			t.Errorf("cost_usd=%s: ok=%v, want %v (messages: %v)", c.cost, got, c.ok, fe["cost_usd"])
		}
	}
}

func TestBook_PartialSkipsAbsent(t *testing.T) {
	fe := validate.Book(validate.BookFields{StockQuantity: num(3)}, true)
	if len(fe) != 0 {
		t.Fatalf("partial update with one valid field should pass, got %v", fe)
	}

	fe = validate.Book(validate.BookFields{CostUSD: dec("-2.50")}, true)
	if len(fe["cost_usd"]) == 0 {
		t.Fatalf("negative cost must fail even on partial update, got %v", fe)
	}
}
