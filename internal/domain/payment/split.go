package payment

import "github.com/shopspring/decimal"

// tolerance is the largest first+second vs total mismatch still considered a
// legitimate rounding artifact. Anything above it is surfaced as a warning.
var tolerance = decimal.RequireFromString("0.01")

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Split divides an order total into two installments: one at the act of sale,
// one at delivery. The two amounts are meant to sum to Total, but the business
// permits manual overrides, so the invariant is checked on read and reported,
// never enforced.
type Split struct {
	Total      decimal.Decimal `json:"total"`
	Percentage int             `json:"percentage"`
	First      decimal.Decimal `json:"first_amount"`
	Second     decimal.Decimal `json:"second_amount"`
}

// Initialize returns the default 50/50 split for a total. The first
// installment takes the extra cent when the half does not round evenly.
func Initialize(total decimal.Decimal) Split {
	first := total.Div(two).Round(2)
	return Split{
		Total:      total,
		Percentage: 50,
		First:      first,
		Second:     total.Sub(first),
	}
}

// SetPercentage derives both amounts from a slider percentage in [0,100].
func (s *Split) SetPercentage(p int) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	s.Percentage = p
	s.First = s.Total.Mul(decimal.NewFromInt(int64(p))).Div(hundred)
	s.Second = s.Total.Mul(decimal.NewFromInt(int64(100 - p))).Div(hundred)
}

// SetFirst pins the first installment and recomputes the second from the
// total. The percentage is left untouched when the total is zero.
func (s *Split) SetFirst(v decimal.Decimal) {
	s.First = v
	s.Second = s.Total.Sub(v)
	if !s.Total.IsZero() {
		s.Percentage = int(v.Div(s.Total).Mul(hundred).Round(0).IntPart())
	}
}

// SetSecond is symmetric to SetFirst.
func (s *Split) SetSecond(v decimal.Decimal) {
	s.Second = v
	s.First = s.Total.Sub(v)
	if !s.Total.IsZero() {
		s.Percentage = int(s.First.Div(s.Total).Mul(hundred).Round(0).IntPart())
	}
}

// MatchesTotal reports whether the two installments reconcile with the total.
// The split is not rescaled when the total changes after a manual edit; the
// caller surfaces the mismatch instead of silently overriding user input.
func (s Split) MatchesTotal() bool {
	return s.First.Add(s.Second).Sub(s.Total).Abs().LessThan(tolerance)
}
