package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound          ErrorCode = "JOB_NOT_FOUND"
	CodeQuoteNotFound        ErrorCode = "QUOTE_NOT_FOUND"
	CodeAttachmentNotFound   ErrorCode = "ATTACHMENT_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeCategoryAlreadyExists ErrorCode = "CATEGORY_ALREADY_EXISTS"
	CodeEmptyUpdate           ErrorCode = "EMPTY_UPDATE"
	CodeNotAssignedToJob      ErrorCode = "NOT_ASSIGNED_TO_JOB"
	CodeInvalidQuoteStatus    ErrorCode = "INVALID_QUOTE_STATUS"
	CodeQuoteNotPending       ErrorCode = "QUOTE_NOT_PENDING"
	CodeQuoteAlreadyApproved  ErrorCode = "QUOTE_ALREADY_APPROVED"
	CodeQuoteWithdrawn        ErrorCode = "QUOTE_WITHDRAWN"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
