package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/api-gateway/internal/apierr"
)

// StructValidator validates structs annotated with `validate` tags.
// Field paths in reported issues use the `json` tag names, joined by dots
// for nested structs and suffixed with [i] for slice elements.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator and returns it as the
// Validator interface.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &StructValidator{validate: v}
}

// Validate checks obj against its `validate` tags. When fields are given only
// those top-level fields (by Go or json name) are checked.
//
// Returns ErrUnsupportedType if obj is not a struct or a pointer to one, and
// *apierr.ValidationError when at least one constraint fails.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		names, resolveErr := resolveFields(value.Type(), fields)
		if resolveErr != nil {
			return resolveErr
		}
		err = v.validate.StructPartialCtx(ctx, obj, names...)
	}

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", obj, err)
	}

	issues := make([]apierr.ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, apierr.ValidationIssue{
			Field:         fieldPath(fe.Namespace()),
			Message:       messageFor(fe),
			RejectedValue: fe.Value(),
		})
	}

	return apierr.NewValidationError(issues...)
}

// resolveFields maps json or Go field names to the Go names StructPartial
// expects.
func resolveFields(t reflect.Type, fields []string) ([]string, error) {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		found := false
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if sf.Name == f || jsonFieldName(sf) == f {
				names = append(names, sf.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return names, nil
}

// jsonFieldName returns the json name of a struct field, falling back to the
// Go name. Fields tagged `json:"-"` are reported under their Go name.
func jsonFieldName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func messageFor(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", param)
		}
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("must contain at least %s items", param)
		}
		return "must be at least " + param
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", param)
		}
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("must contain at most %s items", param)
		}
		return "must be at most " + param
	case "len":
		return "must have length " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "gt":
		return "must be greater than " + param
	case "lte":
		return "must be less than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	default:
		if param != "" {
			return fmt.Sprintf("failed %s=%s constraint", fe.Tag(), param)
		}
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}

func isLengthKind(k reflect.Kind) bool {
	switch k {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
