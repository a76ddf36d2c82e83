package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/api-gateway/internal/apierr"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signup struct {
	Email    string   `json:"email" validate:"required,email"`
	Age      int      `json:"age" validate:"gte=0,lte=150"`
	Name     string   `json:"name" validate:"min=2"`
	Role     string   `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	Address  address  `json:"address"`
	Tags     []string `json:"tags" validate:"max=2"`
	Internal string   `json:"-" validate:"required"`
}

func validSignup() signup {
	return signup{
		Email:    "a@b.co",
		Age:      30,
		Name:     "Al",
		Address:  address{City: "Baku"},
		Internal: "x",
	}
}

func issuesOf(t *testing.T, err error) []apierr.ValidationIssue {
	t.Helper()

	var vErr *apierr.ValidationError
	require.True(t, errors.As(err, &vErr), "expected *apierr.ValidationError, got %v", err)
	return vErr.Issues
}

func TestStructValidator_Valid(t *testing.T) {
	v := NewStructValidator()
	in := validSignup()

	assert.NoError(t, v.Validate(context.Background(), in))
	assert.NoError(t, v.Validate(context.Background(), &in))
}

func TestStructValidator_IssuesInFieldOrder(t *testing.T) {
	v := NewStructValidator()
	in := validSignup()
	in.Email = "not-an-email"
	in.Age = -1

	issues := issuesOf(t, v.Validate(context.Background(), in))

	require.Len(t, issues, 2)
	assert.Equal(t, "email", issues[0].Field)
	assert.Equal(t, "must be a valid email address", issues[0].Message)
	assert.Equal(t, "not-an-email", issues[0].RejectedValue)
	assert.Equal(t, "age", issues[1].Field)
	assert.Equal(t, "must be greater than or equal to 0", issues[1].Message)
	assert.Equal(t, -1, issues[1].RejectedValue)
}

func TestStructValidator_MissingEmailAndNegativeAge(t *testing.T) {
	v := NewStructValidator()
	in := validSignup()
	in.Email = ""
	in.Age = -3

	issues := issuesOf(t, v.Validate(context.Background(), in))

	require.Len(t, issues, 2)
	assert.Equal(t, apierr.ValidationIssue{Field: "email", Message: "is required", RejectedValue: ""}, issues[0])
	assert.Equal(t, apierr.ValidationIssue{Field: "age", Message: "must be greater than or equal to 0", RejectedValue: -3}, issues[1])
}

func TestStructValidator_Messages(t *testing.T) {
	v := NewStructValidator()
	in := validSignup()
	in.Email = ""
	in.Name = "A"
	in.Role = "root"
	in.Address.City = ""
	in.Tags = []string{"a", "b", "c"}
	in.Internal = ""

	issues := issuesOf(t, v.Validate(context.Background(), in))

	got := make(map[string]string, len(issues))
	for _, issue := range issues {
		got[issue.Field] = issue.Message
	}

	assert.Equal(t, map[string]string{
		"email":        "is required",
		"name":         "must be at least 2 characters long",
		"role":         "must be one of: admin, user",
		"address.city": "is required",
		"tags":         "must contain at most 2 items",
		"Internal":     "is required",
	}, got)
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()
	in := validSignup()
	in.Email = ""
	in.Age = -5

	issues := issuesOf(t, v.Validate(context.Background(), in, "age"))
	require.Len(t, issues, 1)
	assert.Equal(t, "age", issues[0].Field)

	issues = issuesOf(t, v.Validate(context.Background(), in, "Email"))
	require.Len(t, issues, 1)
	assert.Equal(t, "email", issues[0].Field)
}

func TestStructValidator_UnknownField(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), validSignup(), "nope")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()
	var nilPtr *signup

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nilPtr), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "x"), ErrUnsupportedType)
}

func TestStructValidator_ClassifiedAsValidation(t *testing.T) {
	v := NewStructValidator()
	in := validSignup()
	in.Email = ""

	got := apierr.Classify(v.Validate(context.Background(), in))

	assert.Equal(t, apierr.KindValidation, got.Kind)
	assert.Equal(t, 400, got.StatusCode)
}
