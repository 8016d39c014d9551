package validator

import (
	"testing"

	"maintdesk_backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		Email:     "user@example.com",
		Password:  "longenough1",
		Role:      "customer",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	assert.NoError(t, v.Validate(&valid))

	invalid := dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	}
	err := v.Validate(&invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Field keys come from json tags.
	assert.Equal(t, "must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "must be at least 8", vErr.Errors["password"])
	assert.Equal(t, "must be one of: customer, staff, trade", vErr.Errors["role"])
	assert.Equal(t, "is required", vErr.Errors["first_name"])
}

func TestValidateOrgType(t *testing.T) {
	v := New()

	req := dto.RegisterRequest{
		Email:     "org@example.com",
		Password:  "longenough1",
		Role:      "customer",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	// Empty org type is allowed and defaulted later.
	req.OrganizationType = ""
	assert.NoError(t, v.Validate(&req))

	req.OrganizationType = "property_management"
	assert.NoError(t, v.Validate(&req))

	req.OrganizationType = "circus"
	err := v.Validate(&req)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "organization_type")
}

func TestValidateQuoteDecision(t *testing.T) {
	v := New()

	req := dto.ResolveQuoteRequest{Status: "approved"}
	assert.NoError(t, v.Validate(&req))

	req.Status = "rejected"
	assert.NoError(t, v.Validate(&req))

	req.Status = "withdrawn"
	err := v.Validate(&req)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "must be approved or rejected", vErr.Errors["status"])
}

func TestValidateCreateQuoteRequest(t *testing.T) {
	v := New()

	req := dto.CreateQuoteRequest{
		JobID:       "job-1",
		Amount:      150,
		Description: "Replace the faulty breaker",
	}
	assert.NoError(t, v.Validate(&req))

	req.Amount = 0
	err := v.Validate(&req)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "amount")
}
