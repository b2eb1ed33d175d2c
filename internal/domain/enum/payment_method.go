package enum

// PaymentMethod identifies how an installment is paid.
type PaymentMethod string

const (
	PaymentMethodMBWay    PaymentMethod = "mbway"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Valid reports whether the value is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMBWay, PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// Label returns the customer-facing name printed on the order document.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodMBWay:
		return "MBWay"
	case PaymentMethodCash:
		return "Numerário"
	case PaymentMethodCard:
		return "Multibanco"
	case PaymentMethodTransfer:
		return "Transferência"
	}
	return string(m)
}

func (m PaymentMethod) String() string {
	return string(m)
}
