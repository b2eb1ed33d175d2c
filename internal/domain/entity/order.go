package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/octosolido/sales-api/internal/domain/enum"
	"github.com/octosolido/sales-api/pkg/money"
)

// LineItem is one product row of an order. Unit prices are always numeric
// here; raw form text is parsed before a line item is built.
type LineItem struct {
	Ref         string          `json:"ref"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total returns quantity x unit price at full precision.
func (li LineItem) Total() decimal.Decimal {
	return money.LineTotal(li.Quantity, li.UnitPrice)
}

// ItemsTotal sums line totals over the full sequence. Addition is commutative,
// so the result does not depend on item order.
func ItemsTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Total())
	}
	return total
}

// PaymentEntry is one row of the payment conditions table on the document.
// Date is a display string; the second installment's date is left empty when
// the delivery date is not captured and the renderer fills it in.
type PaymentEntry struct {
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
	Date   string          `json:"date"`
}

// DeliverySale holds the parts of an order that only exist for deliveries.
// Keeping them behind a pointer makes a direct sale carrying a payment split
// unrepresentable.
type DeliverySale struct {
	Payments []PaymentEntry `json:"payments"`
}

// Order is the normalized order inside a document model. Notes holds the
// numbered note lines in their fixed business order, TotalAmount is always
// recomputed from Items.
type Order struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	Date        time.Time       `json:"date"`
	SalesType   enum.SalesType  `json:"sales_type"`
	Items       []LineItem      `json:"items"`
	Notes       []string        `json:"notes,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Delivery    *DeliverySale   `json:"delivery,omitempty"`
}
