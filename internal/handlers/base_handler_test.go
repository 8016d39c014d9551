package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func bindRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New())

	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		var req dto.LoginRequest
		if !base.BindAndValidate(c, &req) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": req.Email})
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	w := postJSON(bindRouter(), "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	w := postJSON(bindRouter(), `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, w.Body.String(), "email")
	assert.Contains(t, w.Body.String(), "password")
}

func TestBindAndValidateAccepts(t *testing.T) {
	w := postJSON(bindRouter(), `{"email":"ops@maintdesk.local","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}
