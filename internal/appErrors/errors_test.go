package appErrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func TestClassifyAppError(t *testing.T) {
	got := Classify(ErrJobNotFound)
	assert.Equal(t, CodeJobNotFound, got.Code)
	assert.Equal(t, http.StatusNotFound, got.HTTPCode)

	wrapped := ErrQuoteNotPending.WithError(errors.New("db detail"))
	got = Classify(wrapped)
	assert.Equal(t, CodeQuoteNotPending, got.Code)
}

func TestClassifyGormNotFound(t *testing.T) {
	got := Classify(gorm.ErrRecordNotFound)
	assert.Equal(t, CodeNotFound, got.Code)
	assert.Equal(t, http.StatusNotFound, got.HTTPCode)
}

func TestClassifyUnknownErrorIsInternal(t *testing.T) {
	got := Classify(errors.New("connection reset"))
	assert.Equal(t, CodeInternalError, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPCode)
	// The raw error text never reaches the response body.
	assert.Equal(t, "Internal server error", got.Message)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(errors.New(`duplicate key value violates unique constraint "idx_users_email"`)))
	assert.True(t, IsDuplicateKey(errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'email'")))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(nil))
}

func TestAppErrorMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret detail"), CodeDatabaseError, "Storage failure", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret detail")
	assert.Contains(t, string(data), "DATABASE_ERROR")
	assert.Contains(t, string(data), "Storage failure")
}

func TestWithDetailsClones(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails(map[string]string{"title": "is required"})
	assert.NotNil(t, detailed.Details)
	// The shared predefined error stays untouched.
	assert.Nil(t, ErrValidationFailed.Details)
}
