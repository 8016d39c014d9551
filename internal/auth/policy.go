package auth

import "maintdesk_backend/internal/models"

// Identity is the authenticated caller as seen by every service.
type Identity struct {
	UserID     string
	Email      string
	Role       models.UserRole
	CustomerID *string
	TradeID    *string
}

func IdentityFromClaims(claims *Claims) Identity {
	return Identity{
		UserID:     claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		CustomerID: claims.CustomerID,
		TradeID:    claims.TradeID,
	}
}

func (id Identity) IsStaff() bool    { return id.Role == models.UserRoleStaff }
func (id Identity) IsCustomer() bool { return id.Role == models.UserRoleCustomer }
func (id Identity) IsTrade() bool    { return id.Role == models.UserRoleTrade }

// OwnsCustomer reports whether the caller's customer profile is customerID.
func (id Identity) OwnsCustomer(customerID string) bool {
	return id.CustomerID != nil && *id.CustomerID == customerID
}

// OwnsTrade reports whether the caller's trade profile is tradeID.
func (id Identity) OwnsTrade(tradeID string) bool {
	return id.TradeID != nil && *id.TradeID == tradeID
}

// All ownership checks below follow the same rule: staff is unrestricted,
// customers see their own records, trades see records assigned to them.

func CanViewJob(id Identity, job *models.Job) bool {
	switch id.Role {
	case models.UserRoleStaff:
		return true
	case models.UserRoleCustomer:
		return id.OwnsCustomer(job.CustomerID)
	case models.UserRoleTrade:
		return job.AssignedTradeID != nil && id.OwnsTrade(*job.AssignedTradeID)
	}
	return false
}

// CanUpdateJob: jobs are staff-mutated only after creation.
func CanUpdateJob(id Identity) bool {
	return id.IsStaff()
}

// CanTouchAttachment covers both upload and delete on a job's attachments.
func CanTouchAttachment(id Identity, job *models.Job) bool {
	if id.IsStaff() {
		return true
	}
	if id.IsCustomer() {
		return id.OwnsCustomer(job.CustomerID)
	}
	return job.AssignedTradeID != nil && id.OwnsTrade(*job.AssignedTradeID)
}

// CanQuoteJob: a trade may quote only a job currently assigned to them.
func CanQuoteJob(id Identity, job *models.Job) bool {
	if id.IsStaff() {
		return true
	}
	if !id.IsTrade() {
		return false
	}
	return job.AssignedTradeID != nil && id.OwnsTrade(*job.AssignedTradeID)
}

// CanResolveQuote: approve/reject belongs to the owning customer or staff,
// never to trades.
func CanResolveQuote(id Identity, job *models.Job) bool {
	if id.IsStaff() {
		return true
	}
	if id.IsTrade() {
		return false
	}
	return id.OwnsCustomer(job.CustomerID)
}

// CanWithdrawQuote: only the owning trade.
func CanWithdrawQuote(id Identity, quote *models.Quote) bool {
	return id.IsTrade() && id.OwnsTrade(quote.TradeID)
}

func CanViewCustomer(id Identity, customerID string) bool {
	return id.IsStaff() || id.OwnsCustomer(customerID)
}

func CanUpdateTrade(id Identity, tradeID string) bool {
	return id.IsStaff() || id.OwnsTrade(tradeID)
}
