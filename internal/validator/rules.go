package validator

import (
	"github.com/go-playground/validator/v10"

	"maintdesk_backend/internal/models"
)

// Custom rules for the domain enumerations.
func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.UserRoleCustomer, models.UserRoleStaff, models.UserRoleTrade:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("org_type", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true // defaulted to residential downstream
		}
		switch models.OrganizationType(s) {
		case models.OrgTypeResidential, models.OrgTypePropertyManagement, models.OrgTypeSporting:
			return true
		}
		return false
	})

	// Only approved/rejected are legal targets for a quote decision;
	// withdrawn has its own endpoint.
	_ = v.RegisterValidation("quote_decision", func(fl validator.FieldLevel) bool {
		switch models.QuoteStatus(fl.Field().String()) {
		case models.QuoteStatusApproved, models.QuoteStatusRejected:
			return true
		}
		return false
	})
}
