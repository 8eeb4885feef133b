package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,max=8"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(&sample{Email: "a@b.c", Name: "ok"}))

	fields := Validate(&sample{Email: "not-an-email"})
	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "required", fields["Name"])
}
