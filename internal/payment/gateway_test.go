package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestMockGateway_ProcessPayment(t *testing.T) {
	g := NewMockGateway(newTestLogger(t))

	require.True(t, g.ProcessPayment("buyer", "seller", 50))

	transactions := g.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, "buyer", transactions[0].Buyer)
	assert.Equal(t, "seller", transactions[0].Seller)
	assert.Equal(t, 50.0, transactions[0].Amount)
	assert.False(t, transactions[0].Refunded)
	assert.NotEmpty(t, transactions[0].ID)
}

func TestMockGateway_ProcessPayment_EmptyAccounts(t *testing.T) {
	g := NewMockGateway(newTestLogger(t))

	assert.False(t, g.ProcessPayment("", "seller", 50))
	assert.False(t, g.ProcessPayment("buyer", "", 50))
	assert.Empty(t, g.Transactions())
}

func TestMockGateway_ProcessRefund(t *testing.T) {
	g := NewMockGateway(newTestLogger(t))
	require.True(t, g.ProcessPayment("buyer", "seller", 50))

	require.True(t, g.ProcessRefund("buyer", "seller", 50))
	assert.True(t, g.Transactions()[0].Refunded)

	// the same transaction cannot be refunded twice
	assert.False(t, g.ProcessRefund("buyer", "seller", 50))
}

func TestMockGateway_ProcessRefund_NoMatch(t *testing.T) {
	g := NewMockGateway(newTestLogger(t))
	require.True(t, g.ProcessPayment("buyer", "seller", 50))

	assert.False(t, g.ProcessRefund("buyer", "seller", 49))
	assert.False(t, g.ProcessRefund("other", "seller", 50))
	assert.False(t, g.Transactions()[0].Refunded)
}

func TestMockGateway_RefundMatchesFirstUnrefunded(t *testing.T) {
	g := NewMockGateway(newTestLogger(t))
	require.True(t, g.ProcessPayment("buyer", "seller", 50))
	require.True(t, g.ProcessPayment("buyer", "seller", 50))

	require.True(t, g.ProcessRefund("buyer", "seller", 50))

	transactions := g.Transactions()
	assert.True(t, transactions[0].Refunded)
	assert.False(t, transactions[1].Refunded)
}
