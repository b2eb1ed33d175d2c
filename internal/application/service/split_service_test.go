package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
)

func TestSplitApplyInit(t *testing.T) {
	svc := NewSplitService()

	split, matches, err := svc.Apply(&request.SplitRequest{
		Total:   request.FlexAmount{Raw: "199,90"},
		Changed: "init",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !split.First.Equal(decimal.RequireFromString("99.95")) {
		t.Fatalf("expected first 99.95, got %s", split.First)
	}
	if !split.Second.Equal(decimal.RequireFromString("99.95")) {
		t.Fatalf("expected second 99.95, got %s", split.Second)
	}
	if split.Percentage != 50 {
		t.Fatalf("expected percentage 50, got %d", split.Percentage)
	}
	if !matches {
		t.Fatalf("a fresh split must reconcile with its total")
	}
}

func TestSplitApplyInitOddCent(t *testing.T) {
	svc := NewSplitService()

	split, _, err := svc.Apply(&request.SplitRequest{
		Total:   request.FlexAmount{Raw: "0,05"},
		Changed: "init",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !split.First.Equal(decimal.RequireFromString("0.03")) {
		t.Fatalf("the odd cent goes to the first installment, got %s", split.First)
	}
	if !split.Second.Equal(decimal.RequireFromString("0.02")) {
		t.Fatalf("expected second 0.02, got %s", split.Second)
	}
}

func TestSplitApplyPercentage(t *testing.T) {
	svc := NewSplitService()

	split, matches, err := svc.Apply(&request.SplitRequest{
		Total:      request.FlexAmount{Raw: "100"},
		Percentage: 30,
		Changed:    "percentage",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !split.First.Equal(decimal.RequireFromString("30")) || !split.Second.Equal(decimal.RequireFromString("70")) {
		t.Fatalf("expected 30/70, got %s/%s", split.First, split.Second)
	}
	if !matches {
		t.Fatalf("percentage split must reconcile with its total")
	}
}

func TestSplitApplyFirstAmount(t *testing.T) {
	svc := NewSplitService()

	split, matches, err := svc.Apply(&request.SplitRequest{
		Total:       request.FlexAmount{Raw: "100"},
		FirstAmount: request.FlexAmount{Raw: "40"},
		Changed:     "first",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !split.Second.Equal(decimal.RequireFromString("60")) {
		t.Fatalf("expected second recomputed to 60, got %s", split.Second)
	}
	if split.Percentage != 40 {
		t.Fatalf("expected percentage 40, got %d", split.Percentage)
	}
	if !matches {
		t.Fatalf("pinning the first amount must keep the split reconciled")
	}
}

func TestSplitApplySecondAmount(t *testing.T) {
	svc := NewSplitService()

	split, _, err := svc.Apply(&request.SplitRequest{
		Total:        request.FlexAmount{Raw: "100"},
		SecondAmount: request.FlexAmount{Raw: "25"},
		Changed:      "second",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !split.First.Equal(decimal.RequireFromString("75")) {
		t.Fatalf("expected first recomputed to 75, got %s", split.First)
	}
	if split.Percentage != 75 {
		t.Fatalf("expected percentage 75, got %d", split.Percentage)
	}
}

func TestSplitApplyRejectsBadTotal(t *testing.T) {
	svc := NewSplitService()

	_, _, err := svc.Apply(&request.SplitRequest{
		Total:   request.FlexAmount{Raw: "abc"},
		Changed: "init",
	})
	if err == nil {
		t.Fatalf("expected an error for a non-numeric total")
	}
}
