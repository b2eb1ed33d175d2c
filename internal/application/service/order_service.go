package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/octosolido/sales-api/internal/domain/entity"
	"github.com/octosolido/sales-api/internal/domain/enum"
	"github.com/octosolido/sales-api/internal/domain/payment"
	"github.com/octosolido/sales-api/internal/domain/repository"
	"github.com/octosolido/sales-api/internal/presentation/http/dto/request"
	"github.com/octosolido/sales-api/pkg/apperror"
	"github.com/octosolido/sales-api/pkg/money"
)

// noElevatorNote is the structural warning printed before any free-text note.
const noElevatorNote = "Não há elevador no edifício"

// OrderService validates intake form submissions and normalizes them into
// renderer-ready document models.
type OrderService struct {
	storeRepo repository.StoreRepository
	company   entity.Company
}

// NewOrderService creates a new order service
func NewOrderService(storeRepo repository.StoreRepository, company entity.Company) *OrderService {
	return &OrderService{
		storeRepo: storeRepo,
		company:   company,
	}
}

// PreviewResult is the outcome of a successful normalization. Warnings carry
// non-fatal findings (a payment split that no longer reconciles with the
// total); they are shown to the user but never block the preview.
type PreviewResult struct {
	Document *entity.DocumentModel `json:"document"`
	Warnings []string              `json:"warnings,omitempty"`
}

// Validate runs the semantic checks that binding tags cannot express: store
// existence and sales-type compatibility, and strict unit-price parsing. It
// returns one error per invalid field so the UI can highlight all of them at
// once.
func (s *OrderService) Validate(ctx context.Context, req *request.PreviewOrderRequest) []apperror.FieldError {
	var errs []apperror.FieldError

	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		errs = append(errs, apperror.FieldError{Field: "store_id", Message: "Store lookup failed"})
	} else if store == nil {
		errs = append(errs, apperror.FieldError{Field: "store_id", Message: "Unknown store"})
	} else if !store.AllowsSalesType(enum.SalesType(req.SalesType)) {
		errs = append(errs, apperror.FieldError{
			Field:   "sales_type",
			Message: fmt.Sprintf("Store %s does not allow %s sales", store.Name, req.SalesType),
		})
	}

	for i, item := range req.Items {
		price, perr := money.Parse(item.UnitPrice.Raw)
		if perr != nil {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "Unit price must be a number",
			})
			continue
		}
		if price.IsNegative() {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "Unit price must not be negative",
			})
		}
	}

	return errs
}

// Preview normalizes a validated form submission into a document model. It
// assumes the validation gate already ran; a malformed submission reaching
// this point is a programming defect and is reported as an internal error,
// never silently patched up.
func (s *OrderService) Preview(ctx context.Context, req *request.PreviewOrderRequest) (*PreviewResult, error) {
	if err := s.checkPreconditions(req); err != nil {
		log.Printf("order preview precondition violated: %v", err)
		return nil, apperror.ErrInternalServer
	}

	items := make([]entity.LineItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = entity.LineItem{
			Ref:         it.Ref,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   money.ParseAmount(it.UnitPrice.Raw),
		}
	}

	// The document total is always recomputed from the items. The split
	// amounts the user set are never trusted as a total, so a stale cached
	// value can never leak into the document.
	total := entity.ItemsTotal(items)

	customer := entity.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.PhoneNumber,
		TaxID: req.TaxID,
	}

	isDelivery := req.IsDelivery()
	if isDelivery {
		customer.Delivery = &entity.DeliveryAddress{
			Address: entity.Address{
				Line1:      req.Address1,
				Line2:      req.Address2,
				PostalCode: req.PostalCode,
				City:       req.City,
			},
			HasElevator: req.Elevator,
		}
	}
	customer.Billing = resolveBillingAddress(req, customer.Delivery)

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	orderID := strings.TrimSpace(req.OrderNumber)
	if orderID == "" {
		orderID = generateOrderNumber()
	}

	order := entity.Order{
		ID:          orderID,
		StoreID:     req.StoreID,
		Date:        date,
		SalesType:   enum.SalesType(req.SalesType),
		Items:       items,
		Notes:       buildNotes(isDelivery, req.Elevator, req.Notes),
		TotalAmount: total,
	}

	var warnings []string
	if isDelivery {
		first, second := resolvePayments(req, total)
		label := enum.PaymentMethod(req.PaymentMethod).Label()
		order.Delivery = &entity.DeliverySale{
			Payments: []entity.PaymentEntry{
				{Amount: first, Label: label, Date: date.Format("02/01/2006")},
				// The delivery date is not captured at intake; the renderer
				// fills it in.
				{Amount: second, Label: label, Date: ""},
			},
		}

		split := payment.Split{Total: total, First: first, Second: second}
		if !split.MatchesTotal() {
			warnings = append(warnings, fmt.Sprintf(
				"A soma dos pagamentos (%s) não coincide com o valor total (%s)",
				money.RoundDisplay(first.Add(second)), money.RoundDisplay(total)))
		}
	}

	return &PreviewResult{
		Document: &entity.DocumentModel{
			Company:  s.company,
			Customer: customer,
			Order:    order,
		},
		Warnings: warnings,
	}, nil
}

// checkPreconditions guards against submissions that skipped the validation
// gate. It only checks structure, not business rules.
func (s *OrderService) checkPreconditions(req *request.PreviewOrderRequest) error {
	if !enum.SalesType(req.SalesType).Valid() {
		return fmt.Errorf("invalid sales type %q", req.SalesType)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("no line items")
	}
	if req.IsDelivery() && (req.Address1 == "" || req.PostalCode == "" || req.City == "") {
		return fmt.Errorf("delivery order missing address fields")
	}
	return nil
}

// resolveBillingAddress derives the billing address as a pure function of the
// same-address flag, the delivery address and the explicit billing fields.
// When the flag is set the delivery address is deep-copied: the document
// model is a frozen snapshot and must not share storage with form state.
func resolveBillingAddress(req *request.PreviewOrderRequest, delivery *entity.DeliveryAddress) *entity.Address {
	if req.IsDelivery() && req.SameAddress {
		return delivery.Address.Clone()
	}
	if req.BillingAddress1 == "" && req.BillingPostalCode == "" && req.BillingCity == "" {
		// Billing address is optional for direct sales.
		return nil
	}
	return &entity.Address{
		Line1:      req.BillingAddress1,
		Line2:      req.BillingAddress2,
		PostalCode: req.BillingPostalCode,
		City:       req.BillingCity,
	}
}

// buildNotes assembles the numbered note lines in their fixed business order:
// structural warnings first, free text after.
func buildNotes(isDelivery, hasElevator bool, freeText string) []string {
	var notes []string
	if isDelivery && !hasElevator {
		notes = append(notes, noElevatorNote)
	}
	if t := strings.TrimSpace(freeText); t != "" {
		notes = append(notes, t)
	}
	for i, n := range notes {
		notes[i] = fmt.Sprintf("%d. %s", i+1, n)
	}
	return notes
}

// resolvePayments returns the two installment amounts. When the user never
// touched the split it defaults to 50/50; otherwise the submitted amounts are
// taken as-is, even if they no longer reconcile with the total.
func resolvePayments(req *request.PreviewOrderRequest, total decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if req.FirstPayment.Empty() && req.SecondPayment.Empty() {
		split := payment.Initialize(total)
		return split.First, split.Second
	}
	return money.ParseAmount(req.FirstPayment.Raw), money.ParseAmount(req.SecondPayment.Raw)
}

// generateOrderNumber creates an order number when the form left the
// auto-generated one untouched.
func generateOrderNumber() string {
	return "ENC-" + strings.ToUpper(uuid.New().String()[:8])
}
