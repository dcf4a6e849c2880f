package validation

import (
	"testing"

	domainerrors "potluck/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	FirstName       string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&sampleForm{
		FirstName:       "Alice",
		Email:           "alice@example.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
	})

	assert.NoError(t, err)
}

func TestStruct_CollectsOneMessagePerField(t *testing.T) {
	err := Struct(&sampleForm{
		FirstName:       "A",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "First name must be at least 2 characters!")
	assert.Contains(t, appErr.Details(), "Email must be a valid email address!")
	assert.Contains(t, appErr.Details(), "Password must be at least 8 characters!")
	assert.Contains(t, appErr.Details(), "Confirm password must match Password!")
}

func TestStruct_RequiredFields(t *testing.T) {
	err := Struct(&sampleForm{})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "First name is required!")
}
