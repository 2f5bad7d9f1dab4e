package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title  string   `json:"title" validate:"required"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Salary *float64 `json:"salary" validate:"omitempty,gte=0"`
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := New()
	salary := 1000.0
	err := v.Validate(&sampleRequest{Title: "Engineer", Email: "a@b.co", Salary: &salary})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&sampleRequest{Email: "nope"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Contains(t, vErr.Errors, "title")
	assert.Equal(t, "is required", vErr.Errors["title"])
	assert.Contains(t, vErr.Errors, "email")
}

func TestValidate_NegativeNumberRejected(t *testing.T) {
	t.Parallel()

	v := New()
	salary := -5.0
	err := v.Validate(&sampleRequest{Title: "Engineer", Salary: &salary})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "salary")
}
