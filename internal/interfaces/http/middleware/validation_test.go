package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	require.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	type statusUpdate struct {
		Field string `json:"field" binding:"required,oneof=status fulfillment_status"`
		Value string `json:"value" binding:"required,min=1,max=50"`
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(statusUpdate{Field: "warehouse_id"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-123")
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ERR_VALIDATION", resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)

	require.Len(t, resp.Error.Details, 2)
	fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
	assert.Contains(t, fields, "field")
	assert.Contains(t, fields, "value")
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "")
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ERR_VALIDATION", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
