package appErrors

import (
	"errors"
	"net/http"
	"strings"

	"maintdesk_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError converts any error into a JSON error response. Non-AppError
// values are collapsed to a generic 500 so storage detail never reaches
// the caller.
func HandleError(c *gin.Context, err error) {
	appErr := Classify(err)

	if appErr.HTTPCode >= 500 {
		logger.Error("request failed", "path", c.FullPath(), "error", err.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// Classify maps an arbitrary error onto an AppError.
func Classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return New(CodeNotFound, "Record not found", http.StatusNotFound)
	}

	if IsDuplicateKey(err) {
		return New(CodeEmailAlreadyExists, "Duplicate value", http.StatusConflict)
	}

	return New(CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Covers gorm's translated error plus the raw postgres/mysql messages.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// HandleValidationError converts a gin binding failure into our format.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
