package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmountCommaAndDotAgree(t *testing.T) {
	cases := []struct {
		comma string
		dot   string
	}{
		{"12,50", "12.50"},
		{"0,99", "0.99"},
		{"1500,00", "1500.00"},
		{"49,9", "49.9"},
	}
	for _, c := range cases {
		a := ParseAmount(c.comma)
		b := ParseAmount(c.dot)
		if !a.Equal(b) {
			t.Fatalf("ParseAmount(%q)=%s and ParseAmount(%q)=%s differ", c.comma, a, c.dot, b)
		}
	}
	if !ParseAmount("12,50").Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("ParseAmount(12,50) = %s, want 12.5", ParseAmount("12,50"))
	}
}

func TestParseAmountLenientZero(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12,5,0", "€10"} {
		if got := ParseAmount(raw); !got.IsZero() {
			t.Fatalf("ParseAmount(%q) = %s, want 0", raw, got)
		}
	}
}

func TestParseStrictRejectsGarbage(t *testing.T) {
	if _, err := Parse("abc"); err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
	if _, err := Parse(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
	d, err := Parse(" 49,90 ")
	if err != nil {
		t.Fatalf("Parse(49,90) failed: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("49.9")) {
		t.Fatalf("Parse(49,90) = %s, want 49.9", d)
	}
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(3, ParseAmount("19,99"))
	if !got.Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("LineTotal(3, 19.99) = %s, want 59.97", got)
	}
}

func TestRoundDisplay(t *testing.T) {
	got := RoundDisplay(decimal.RequireFromString("10.005"))
	if got.String() != "10.01" {
		t.Fatalf("RoundDisplay(10.005) = %s, want 10.01", got)
	}
}
