package handlers

import (
	"time"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidate binds the JSON body and runs struct validation. On
// failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleError(c, appErrors.InternalError(err))
		}
		return false
	}
	return true
}

// Identity returns the authenticated caller, failing the request when the
// auth middleware did not run.
func (h *BaseHandler) Identity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		appErrors.HandleError(c, appErrors.ErrUnauthorized)
		return auth.Identity{}, false
	}
	return identity, true
}

// queryDateRange reads the optional start_date/end_date pair. Both must be
// present for the range to apply.
func queryDateRange(c *gin.Context) (*time.Time, *time.Time, error) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		return nil, nil, nil
	}

	start, err := parseQueryDate(startStr)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseQueryDate(endStr)
	if err != nil {
		return nil, nil, err
	}
	if start.After(*end) {
		return nil, nil, appErrors.NewBadRequestError("start_date cannot be after end_date")
	}
	return start, end, nil
}

func parseQueryDate(s string) (*time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, appErrors.NewBadRequestError("Invalid date format, use YYYY-MM-DD or RFC3339")
	}
	return &t, nil
}
