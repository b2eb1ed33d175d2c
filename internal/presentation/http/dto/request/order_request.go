package request

import (
	"encoding/json"
	"strings"
	"time"
)

// FlexAmount accepts a JSON string or number for a money field. Prices arrive
// as text while the user is typing ("49,90") and as numbers once the UI has
// normalized them; both are kept as raw text until parsing.
type FlexAmount struct {
	Raw string
}

func (f *FlexAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.Raw = s
		return nil
	}
	// Number token: keep its exact text so no float precision is lost.
	f.Raw = string(data)
	return nil
}

func (f FlexAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Raw)
}

// Empty reports whether the field was absent or blank.
func (f FlexAmount) Empty() bool {
	return strings.TrimSpace(f.Raw) == ""
}

func (f FlexAmount) String() string {
	return f.Raw
}

// LineItemRequest is one product row of the intake form.
type LineItemRequest struct {
	Ref         string     `json:"ref" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Quantity    int        `json:"quantity" binding:"required,min=1"`
	UnitPrice   FlexAmount `json:"unit_price"`
}

// PreviewOrderRequest carries the full flat field set of the intake form.
// Conditional requirements are declared on the tags: delivery orders require
// contact and address fields, and billing fields only when the customer did
// not reuse the delivery address.
type PreviewOrderRequest struct {
	StoreID     string    `json:"store_id" binding:"required"`
	SalesType   string    `json:"sales_type" binding:"required,oneof=direct delivery"`
	OrderNumber string    `json:"order_number"`
	Date        time.Time `json:"date"`

	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required_if=SalesType delivery,omitempty,email"`
	PhoneNumber string `json:"phone_number" binding:"required_if=SalesType delivery"`
	TaxID       string `json:"tax_id" binding:"omitempty,len=9,numeric"`

	Address1   string `json:"address1" binding:"required_if=SalesType delivery"`
	Address2   string `json:"address2"`
	PostalCode string `json:"postal_code" binding:"required_if=SalesType delivery,omitempty,len=7,numeric"`
	City       string `json:"city" binding:"required_if=SalesType delivery"`
	Elevator   bool   `json:"elevator"`

	SameAddress       bool   `json:"same_address"`
	BillingAddress1   string `json:"billing_address1" binding:"required_if=SalesType delivery SameAddress false"`
	BillingAddress2   string `json:"billing_address2"`
	BillingPostalCode string `json:"billing_postal_code" binding:"required_if=SalesType delivery SameAddress false,omitempty,len=7,numeric"`
	BillingCity       string `json:"billing_city" binding:"required_if=SalesType delivery SameAddress false"`

	Items []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes string            `json:"notes"`

	FirstPayment  FlexAmount `json:"first_payment"`
	SecondPayment FlexAmount `json:"second_payment"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,oneof=mbway cash card transfer"`
}

// IsDelivery reports whether the request describes a delivery order.
func (r *PreviewOrderRequest) IsDelivery() bool {
	return r.SalesType == "delivery"
}
