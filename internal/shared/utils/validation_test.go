package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/shared/errors"
)

type bindTarget struct {
	Tier     string `json:"tier" binding:"required,tier"`
	Currency string `json:"currency" binding:"omitempty,currency"`
	Hours    string `json:"hours" binding:"required"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterBindingValidators()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var target bindTarget
	return c.ShouldBindJSON(&target)
}

func TestBindingError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantType    errors.ErrorType
		wantDetails string
	}{
		{name: "unknown tier", body: `{"tier":"platinum","hours":"1"}`, wantType: errors.ErrorTypeValidation, wantDetails: "tier must be one of"},
		{name: "unknown currency", body: `{"tier":"scotus","currency":"EUR","hours":"1"}`, wantType: errors.ErrorTypeValidation, wantDetails: "currency must be USD or R$"},
		{name: "missing hours", body: `{"tier":"standard"}`, wantType: errors.ErrorTypeValidation, wantDetails: "hours is required"},
		{name: "malformed", body: `{"tier":`, wantType: errors.ErrorTypeBadRequest},
		{name: "wrong type", body: `{"tier":5,"hours":"1"}`, wantType: errors.ErrorTypeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(t, tt.body)
			require.Error(t, err)

			appErr := BindingError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
			assert.Contains(t, appErr.Details, tt.wantDetails)
		})
	}
}

func TestBindingError_ValidBody(t *testing.T) {
	require.NoError(t, bind(t, `{"tier":"high-profile","currency":"R$","hours":"0.2"}`))
}

func TestBindingError_EmptyBody(t *testing.T) {
	assert.NotNil(t, BindingError(io.EOF))
}

func TestBindingError_OtherErrors(t *testing.T) {
	assert.Nil(t, BindingError(assert.AnError))
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{name: "capacity", err: errors.NewCapacityError("cap reached"), wantStatus: http.StatusUnprocessableEntity, wantType: "capacity_exhausted"},
		{name: "conflict", err: errors.NewConflictError("collision"), wantStatus: http.StatusConflict, wantType: "conflict"},
		{name: "not found", err: errors.NewNotFoundError("case not found"), wantStatus: http.StatusNotFound, wantType: "not_found"},
		{name: "plain error", err: assert.AnError, wantStatus: http.StatusInternalServerError, wantType: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
		})
	}
}
