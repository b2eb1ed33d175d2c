package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/octosolido/sales-api/internal/domain/entity"
	"github.com/octosolido/sales-api/internal/infrastructure/repository"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
)

func newTestOrderService() *OrderService {
	return NewOrderService(repository.NewMemoryStoreRepository(), entity.Company{
		Name:      "Octosólido",
		LegalName: "Octosólido - Mobiliário e Decoração, Lda.",
		TaxID:     "500000000",
	})
}

func directRequest() *request.PreviewOrderRequest {
	return &request.PreviewOrderRequest{
		StoreID:   "6",
		SalesType: "direct",
		Name:      "Maria Santos",
		Items: []request.LineItemRequest{
			{Ref: "SOF-01", Description: "Sofá de 2 lugares", Quantity: 2, UnitPrice: request.FlexAmount{Raw: "49,90"}},
		},
	}
}

func deliveryRequest() *request.PreviewOrderRequest {
	return &request.PreviewOrderRequest{
		StoreID:     "1",
		SalesType:   "delivery",
		Name:        "João Silva",
		Email:       "joao@example.com",
		PhoneNumber: "912345678",
		Address1:    "Rua das Flores 12",
		PostalCode:  "1000100",
		City:        "Lisboa",
		Elevator:    true,
		SameAddress: true,
		Items: []request.LineItemRequest{
			{Ref: "MES-03", Description: "Mesa de jantar", Quantity: 1, UnitPrice: request.FlexAmount{Raw: "450,00"}},
		},
	}
}

func TestValidateUnknownStore(t *testing.T) {
	svc := newTestOrderService()

	req := directRequest()
	req.StoreID = "99"

	errs := svc.Validate(context.Background(), req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 field error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "store_id" {
		t.Fatalf("expected store_id error, got %s", errs[0].Field)
	}
}

func TestValidateStoreSalesTypeMismatch(t *testing.T) {
	svc := newTestOrderService()

	// Store 1 only handles deliveries.
	req := directRequest()
	req.StoreID = "1"

	errs := svc.Validate(context.Background(), req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 field error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "sales_type" {
		t.Fatalf("expected sales_type error, got %s", errs[0].Field)
	}
}

func TestValidateReportsEveryBadPrice(t *testing.T) {
	svc := newTestOrderService()

	req := directRequest()
	req.Items = []request.LineItemRequest{
		{Ref: "A", Description: "a", Quantity: 1, UnitPrice: request.FlexAmount{Raw: "abc"}},
		{Ref: "B", Description: "b", Quantity: 1, UnitPrice: request.FlexAmount{Raw: "10,00"}},
		{Ref: "C", Description: "c", Quantity: 1, UnitPrice: request.FlexAmount{Raw: "-5"}},
	}

	errs := svc.Validate(context.Background(), req)
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "items[0].unit_price" {
		t.Fatalf("unexpected field: %s", errs[0].Field)
	}
	if errs[1].Field != "items[2].unit_price" {
		t.Fatalf("unexpected field: %s", errs[1].Field)
	}
}

func TestPreviewDirectSale(t *testing.T) {
	svc := newTestOrderService()

	result, err := svc.Preview(context.Background(), directRequest())
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	doc := result.Document
	if !doc.Order.TotalAmount.Equal(decimal.RequireFromString("99.80")) {
		t.Fatalf("expected total 99.80, got %s", doc.Order.TotalAmount)
	}
	if doc.Order.Delivery != nil {
		t.Fatalf("direct sale must not carry a payment split")
	}
	if doc.Customer.Delivery != nil {
		t.Fatalf("direct sale must not carry a delivery address")
	}
	if doc.Customer.Billing != nil {
		t.Fatalf("expected no billing address, got %+v", doc.Customer.Billing)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestPreviewGeneratesOrderNumber(t *testing.T) {
	svc := newTestOrderService()

	result, err := svc.Preview(context.Background(), directRequest())
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.HasPrefix(result.Document.Order.ID, "ENC-") {
		t.Fatalf("expected generated order number, got %q", result.Document.Order.ID)
	}

	req := directRequest()
	req.OrderNumber = "ENC-2026-042"
	result, err = svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if result.Document.Order.ID != "ENC-2026-042" {
		t.Fatalf("expected submitted order number to be kept, got %q", result.Document.Order.ID)
	}
}

func TestPreviewBillingAddressIsDeepCopied(t *testing.T) {
	svc := newTestOrderService()

	result, err := svc.Preview(context.Background(), deliveryRequest())
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	customer := result.Document.Customer
	if customer.Billing == nil {
		t.Fatalf("expected billing address copied from delivery address")
	}
	if customer.Billing == &customer.Delivery.Address {
		t.Fatalf("billing address must not share storage with delivery address")
	}
	if *customer.Billing != customer.Delivery.Address {
		t.Fatalf("billing %+v does not match delivery %+v", *customer.Billing, customer.Delivery.Address)
	}

	customer.Billing.City = "Porto"
	if customer.Delivery.City == "Porto" {
		t.Fatalf("mutating the billing copy leaked into the delivery address")
	}
}

func TestPreviewExplicitBillingAddress(t *testing.T) {
	svc := newTestOrderService()

	req := deliveryRequest()
	req.SameAddress = false
	req.BillingAddress1 = "Av. da República 50"
	req.BillingPostalCode = "4000200"
	req.BillingCity = "Porto"

	result, err := svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	billing := result.Document.Customer.Billing
	if billing == nil || billing.City != "Porto" || billing.Line1 != "Av. da República 50" {
		t.Fatalf("unexpected billing address: %+v", billing)
	}
}

func TestPreviewNotesOrdering(t *testing.T) {
	svc := newTestOrderService()

	req := deliveryRequest()
	req.Elevator = false
	req.Notes = "Entregar de manhã"

	result, err := svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	notes := result.Document.Order.Notes
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", notes)
	}
	if notes[0] != "1. Não há elevador no edifício" {
		t.Fatalf("expected elevator warning first, got %q", notes[0])
	}
	if notes[1] != "2. Entregar de manhã" {
		t.Fatalf("expected free text second, got %q", notes[1])
	}
}

func TestPreviewNoNotes(t *testing.T) {
	svc := newTestOrderService()

	result, err := svc.Preview(context.Background(), deliveryRequest())
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if len(result.Document.Order.Notes) != 0 {
		t.Fatalf("expected no notes, got %v", result.Document.Order.Notes)
	}
}

func TestPreviewDefaultPaymentSplit(t *testing.T) {
	svc := newTestOrderService()

	req := deliveryRequest()
	req.Date = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	req.Items = []request.LineItemRequest{
		{Ref: "X", Description: "x", Quantity: 1, UnitPrice: request.FlexAmount{Raw: "0,05"}},
	}

	result, err := svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	payments := result.Document.Order.Delivery.Payments
	if len(payments) != 2 {
		t.Fatalf("expected 2 payment entries, got %d", len(payments))
	}
	if !payments[0].Amount.Equal(decimal.RequireFromString("0.03")) {
		t.Fatalf("expected first installment 0.03, got %s", payments[0].Amount)
	}
	if !payments[1].Amount.Equal(decimal.RequireFromString("0.02")) {
		t.Fatalf("expected second installment 0.02, got %s", payments[1].Amount)
	}
	if payments[0].Date != "15/03/2026" {
		t.Fatalf("expected first installment dated at order date, got %q", payments[0].Date)
	}
	if payments[1].Date != "" {
		t.Fatalf("second installment date must be left for the renderer, got %q", payments[1].Date)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestPreviewKeepsManualPaymentsAndWarns(t *testing.T) {
	svc := newTestOrderService()

	req := deliveryRequest()
	req.FirstPayment = request.FlexAmount{Raw: "100,00"}
	req.SecondPayment = request.FlexAmount{Raw: "100,00"}

	result, err := svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	payments := result.Document.Order.Delivery.Payments
	if !payments[0].Amount.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("manual first installment was altered: %s", payments[0].Amount)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected a mismatch warning, got %v", result.Warnings)
	}
}

func TestPreviewPaymentMethodLabel(t *testing.T) {
	svc := newTestOrderService()

	req := deliveryRequest()
	req.PaymentMethod = "cash"

	result, err := svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if got := result.Document.Order.Delivery.Payments[0].Label; got != "Numerário" {
		t.Fatalf("expected label Numerário, got %q", got)
	}
}

func TestPreviewRejectsSkippedValidation(t *testing.T) {
	svc := newTestOrderService()

	req := directRequest()
	req.SalesType = "wholesale"

	if _, err := svc.Preview(context.Background(), req); err == nil {
		t.Fatalf("expected an error for an invalid sales type")
	}
}
