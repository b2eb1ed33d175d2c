package response

import "github.com/octosolido/sales-api/internal/domain/payment"

// SplitResponse returns the reconciled payment split. MatchesTotal is a
// warning flag: a false value must be shown to the user but never blocks the
// flow, since tiny mismatches can come from legitimate rounding or a
// negotiated split.
type SplitResponse struct {
	Split        payment.Split `json:"split"`
	MatchesTotal bool          `json:"matches_total"`
}
