package auth

import (
	"testing"

	"maintdesk_backend/internal/config"
	"maintdesk_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTLHours = 1
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "unit-test-secret")

	user := &models.User{
		Email: "customer@example.com",
		Role:  models.UserRoleCustomer,
		Customer: &models.Customer{
			BaseModel: models.BaseModel{ID: "cust-1"},
		},
	}
	user.ID = "user-1"

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "customer@example.com", claims.Email)
	assert.Equal(t, models.UserRoleCustomer, claims.Role)
	require.NotNil(t, claims.CustomerID)
	assert.Equal(t, "cust-1", *claims.CustomerID)
	assert.Nil(t, claims.TradeID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	setTestConfig(t, "secret-one")

	user := &models.User{Email: "staff@example.com", Role: models.UserRoleStaff}
	user.ID = "user-2"

	token, err := GenerateToken(user)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "secret-two"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	setTestConfig(t, "unit-test-secret")

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
