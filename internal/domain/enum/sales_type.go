package enum

// SalesType distinguishes an in-store sale from a delivery order. It gates
// which customer fields are required and whether a payment split exists.
type SalesType string

const (
	SalesTypeDirect   SalesType = "direct"
	SalesTypeDelivery SalesType = "delivery"
)

// Valid reports whether the value is one of the known sales types.
func (s SalesType) Valid() bool {
	return s == SalesTypeDirect || s == SalesTypeDelivery
}

func (s SalesType) String() string {
	return string(s)
}
