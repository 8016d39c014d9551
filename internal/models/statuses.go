package models

type UserRole string
type OrganizationType string
type QuoteStatus string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleStaff    UserRole = "staff"
	UserRoleTrade    UserRole = "trade"

	OrgTypeResidential        OrganizationType = "residential"
	OrgTypePropertyManagement OrganizationType = "property_management"
	OrgTypeSporting           OrganizationType = "sporting_organization"

	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusWithdrawn QuoteStatus = "withdrawn"
)

// Job status names. Rows live in the job_statuses table; these constants
// name the lookups resolved once at startup by the refdata package.
const (
	StatusNew             = "New"
	StatusUnderReview     = "Under Review"
	StatusAwaitingQuotes  = "Awaiting Quotes"
	StatusQuotesReceived  = "Quotes Received"
	StatusPendingApproval = "Pending Approval"
	StatusApproved        = "Approved"
	StatusScheduled       = "Scheduled"
	StatusInProgress      = "In Progress"
	StatusCompleted       = "Completed"
	StatusCancelled       = "Cancelled"
)

// Priority level names.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Job history change types.
const (
	ChangeTypeCreated        = "created"
	ChangeTypeStatusChange   = "status_change"
	ChangeTypeStaffAssigned  = "staff_assigned"
	ChangeTypeTradeAssigned  = "trade_assigned"
	ChangeTypeQuoteSubmitted = "quote_submitted"
	ChangeTypeQuoteApproved  = "quote_approved"
	ChangeTypeQuoteRejected  = "quote_rejected"
)

// Notification types.
const (
	NotificationJobCreated     = "job_created"
	NotificationStatusChange   = "status_change"
	NotificationJobAssigned    = "job_assigned"
	NotificationQuoteReceived  = "quote_received"
	NotificationQuoteApproved  = "quote_approved"
	NotificationQuoteWithdrawn = "quote_withdrawn"
)
