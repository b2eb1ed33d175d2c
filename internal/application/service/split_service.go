package service

import (
	"github.com/octosolido/sales-api/internal/domain/payment"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
	"github.com/octosolido/sales-api/pkg/apperror"
	"github.com/octosolido/sales-api/pkg/money"
)

// SplitService applies payment-split edits coming from the form: a slider
// drag, a manual amount edit, or the initial visit to the payments step.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// Apply reapplies the edit named by req.Changed against the live total and
// returns the reconciled split together with the sum-invariant check. A
// mismatch is reported, not rejected: the total may have changed after the
// user pinned an amount, and that explicit input is never overridden.
func (s *SplitService) Apply(req *request.SplitRequest) (payment.Split, bool, error) {
	total, err := money.Parse(req.Total.Raw)
	if err != nil {
		return payment.Split{}, false, apperror.NewBadRequestError("Total must be a number")
	}

	if req.Changed == "init" {
		split := payment.Initialize(total)
		return split, split.MatchesTotal(), nil
	}

	split := payment.Split{
		Total:      total,
		Percentage: req.Percentage,
		First:      money.ParseAmount(req.FirstAmount.Raw),
		Second:     money.ParseAmount(req.SecondAmount.Raw),
	}

	switch req.Changed {
	case "percentage":
		split.SetPercentage(req.Percentage)
	case "first":
		split.SetFirst(money.ParseAmount(req.FirstAmount.Raw))
	case "second":
		split.SetSecond(money.ParseAmount(req.SecondAmount.Raw))
	}

	return split, split.MatchesTotal(), nil
}
