package ports

// PaymentGateway is the external payment system boundary. It is never
// part of a state snapshot; every context gets a freshly constructed
// instance.
type PaymentGateway interface {
	// ProcessPayment charges the buyer in favour of the seller.
	// False when either account identifier is empty or the charge is
	// declined; no transaction is recorded on failure.
	ProcessPayment(buyerAccount, sellerAccount string, amount float64) bool

	// ProcessRefund reverses the first not-yet-refunded transaction
	// matching buyer, seller and amount exactly. False when no such
	// transaction exists.
	ProcessRefund(buyerAccount, sellerAccount string, amount float64) bool
}
