package auth

import (
	"testing"

	"maintdesk_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func staffIdentity() Identity {
	return Identity{UserID: "u-staff", Role: models.UserRoleStaff}
}

func customerIdentity(customerID string) Identity {
	return Identity{UserID: "u-cust", Role: models.UserRoleCustomer, CustomerID: &customerID}
}

func tradeIdentity(tradeID string) Identity {
	return Identity{UserID: "u-trade", Role: models.UserRoleTrade, TradeID: &tradeID}
}

func TestCanViewJob(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1", AssignedTradeID: strPtr("trade-1")}

	assert.True(t, CanViewJob(staffIdentity(), job))
	assert.True(t, CanViewJob(customerIdentity("cust-1"), job))
	assert.False(t, CanViewJob(customerIdentity("cust-2"), job))
	assert.True(t, CanViewJob(tradeIdentity("trade-1"), job))
	assert.False(t, CanViewJob(tradeIdentity("trade-2"), job))

	unassigned := &models.Job{CustomerID: "cust-1"}
	assert.False(t, CanViewJob(tradeIdentity("trade-1"), unassigned))
}

func TestCanUpdateJob(t *testing.T) {
	assert.True(t, CanUpdateJob(staffIdentity()))
	assert.False(t, CanUpdateJob(customerIdentity("cust-1")))
	assert.False(t, CanUpdateJob(tradeIdentity("trade-1")))
}

func TestCanQuoteJob(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1", AssignedTradeID: strPtr("trade-1")}

	assert.True(t, CanQuoteJob(staffIdentity(), job))
	assert.True(t, CanQuoteJob(tradeIdentity("trade-1"), job))
	assert.False(t, CanQuoteJob(tradeIdentity("trade-2"), job))
	assert.False(t, CanQuoteJob(customerIdentity("cust-1"), job))

	unassigned := &models.Job{CustomerID: "cust-1"}
	assert.False(t, CanQuoteJob(tradeIdentity("trade-1"), unassigned))
}

func TestCanResolveQuote(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1", AssignedTradeID: strPtr("trade-1")}

	assert.True(t, CanResolveQuote(staffIdentity(), job))
	assert.True(t, CanResolveQuote(customerIdentity("cust-1"), job))
	assert.False(t, CanResolveQuote(customerIdentity("cust-2"), job))
	// The assigned trade cannot decide its own quote.
	assert.False(t, CanResolveQuote(tradeIdentity("trade-1"), job))
}

func TestCanWithdrawQuote(t *testing.T) {
	quote := &models.Quote{TradeID: "trade-1"}

	assert.True(t, CanWithdrawQuote(tradeIdentity("trade-1"), quote))
	assert.False(t, CanWithdrawQuote(tradeIdentity("trade-2"), quote))
	assert.False(t, CanWithdrawQuote(staffIdentity(), quote))
	assert.False(t, CanWithdrawQuote(customerIdentity("cust-1"), quote))
}

func TestCanTouchAttachment(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1", AssignedTradeID: strPtr("trade-1")}

	assert.True(t, CanTouchAttachment(staffIdentity(), job))
	assert.True(t, CanTouchAttachment(customerIdentity("cust-1"), job))
	assert.False(t, CanTouchAttachment(customerIdentity("cust-2"), job))
	assert.True(t, CanTouchAttachment(tradeIdentity("trade-1"), job))
	assert.False(t, CanTouchAttachment(tradeIdentity("trade-2"), job))
}

func TestCanViewCustomer(t *testing.T) {
	assert.True(t, CanViewCustomer(staffIdentity(), "cust-1"))
	assert.True(t, CanViewCustomer(customerIdentity("cust-1"), "cust-1"))
	assert.False(t, CanViewCustomer(customerIdentity("cust-2"), "cust-1"))
	assert.False(t, CanViewCustomer(tradeIdentity("trade-1"), "cust-1"))
}

func TestCanUpdateTrade(t *testing.T) {
	assert.True(t, CanUpdateTrade(staffIdentity(), "trade-1"))
	assert.True(t, CanUpdateTrade(tradeIdentity("trade-1"), "trade-1"))
	assert.False(t, CanUpdateTrade(tradeIdentity("trade-2"), "trade-1"))
	assert.False(t, CanUpdateTrade(customerIdentity("cust-1"), "trade-1"))
}

func TestIdentityFromClaims(t *testing.T) {
	claims := &Claims{
		UserID:     "u-1",
		Email:      "user@example.com",
		Role:       models.UserRoleCustomer,
		CustomerID: strPtr("cust-1"),
	}

	identity := IdentityFromClaims(claims)
	assert.Equal(t, "u-1", identity.UserID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, models.UserRoleCustomer, identity.Role)
	assert.True(t, identity.OwnsCustomer("cust-1"))
	assert.Nil(t, identity.TradeID)
}
