package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=USER OWNER"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&loginRequest{Email: "a@b.co", Password: "x"}))

	err := v.Validate(&loginRequest{Email: "nope", Role: "ADMIN"})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "email must be a valid email")
	assert.Contains(t, msg, "password is required")
	assert.Contains(t, msg, "role must be one of USER OWNER")
}
