package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type contactInput struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email,omitempty" validate:"required,email"`
	Message string `validate:"required,max=5"`
}

func TestFromBindError_ValidationErrors(t *testing.T) {
	in := contactInput{Email: "nope", Message: "too long message"}
	err := validator.New().Struct(&in)

	got := FromBindError(err, &in)
	assert.Equal(t, FieldErrors{
		"name":    "Please fill out this field.",
		"email":   "Please enter an email address.",
		"message": "Must be at most 5 characters.",
	}, got)
}

func TestFromBindError_Other(t *testing.T) {
	got := FromBindError(errors.New("EOF"), &contactInput{})
	assert.Equal(t, FieldErrors{"_": "The form could not be read."}, got)
}
