package payment

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Transaction is one recorded charge.
type Transaction struct {
	ID       string
	Buyer    string
	Seller   string
	Amount   float64
	Refunded bool
}

// MockGateway simulates the external payment system: it records
// successful charges and can reverse them. No money moves anywhere.
type MockGateway struct {
	transactions []*Transaction
	log          logger.Logger
}

func NewMockGateway(log logger.Logger) *MockGateway {
	return &MockGateway{log: log}
}

// ProcessPayment records a charge. False without a record when either
// account identifier is empty.
func (g *MockGateway) ProcessPayment(buyerAccount, sellerAccount string, amount float64) bool {
	if buyerAccount == "" || sellerAccount == "" {
		return false
	}
	t := &Transaction{
		ID:     uuid.New().String(),
		Buyer:  buyerAccount,
		Seller: sellerAccount,
		Amount: amount,
	}
	g.transactions = append(g.transactions, t)
	g.log.Debug("payment processed",
		logger.String("transaction_id", t.ID),
		logger.String("buyer", buyerAccount),
		logger.String("seller", sellerAccount),
	)
	return true
}

// ProcessRefund marks the first matching unrefunded transaction as
// refunded. False when no transaction matches buyer, seller and amount
// exactly.
func (g *MockGateway) ProcessRefund(buyerAccount, sellerAccount string, amount float64) bool {
	for _, t := range g.transactions {
		if t.Refunded || t.Buyer != buyerAccount || t.Seller != sellerAccount || t.Amount != amount {
			continue
		}
		t.Refunded = true
		g.log.Debug("payment refunded",
			logger.String("transaction_id", t.ID),
			logger.String("buyer", buyerAccount),
		)
		return true
	}
	return false
}

// Transactions exposes the recorded charges for inspection.
func (g *MockGateway) Transactions() []*Transaction {
	return g.transactions
}
