package validator

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
}

func TestFromBindingError(t *testing.T) {
	err := govalidator.New().Struct(samplePayload{Email: "not-an-email"})
	require.Error(t, err)

	fields := FromBindingError(err)
	require.NotNil(t, fields)
	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "required", fields["Name"])
}

func TestFromBindingError_NotValidation(t *testing.T) {
	assert.Nil(t, FromBindingError(errors.New("unexpected EOF")))
}

func TestSummarize(t *testing.T) {
	line := Summarize(map[string]string{"Name": "required", "Email": "email"})
	assert.Equal(t, "Email: email; Name: required", line)

	assert.Empty(t, Summarize(nil))
}
