package entity

// Address is a postal address. PostalCode is stored as 7 digits without the
// 4+3 separator.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// Clone returns an independent copy. The document model is a frozen snapshot,
// so a billing address derived from the delivery address must never share
// storage with it.
func (a Address) Clone() *Address {
	c := a
	return &c
}

// DeliveryAddress is an address with delivery-specific attributes.
type DeliveryAddress struct {
	Address
	HasElevator bool `json:"has_elevator"`
}

// Customer groups the buyer details of an order. Delivery is set iff the sale
// type is delivery; Billing is optional for direct sales and falls back to the
// delivery address when the customer asked for the same address.
type Customer struct {
	Name     string           `json:"name"`
	Email    string           `json:"email,omitempty"`
	Phone    string           `json:"phone,omitempty"`
	TaxID    string           `json:"tax_id,omitempty"`
	Delivery *DeliveryAddress `json:"delivery_address,omitempty"`
	Billing  *Address         `json:"billing_address,omitempty"`
}
