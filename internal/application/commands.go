package application

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/go-playground/validator/v10"
)

var commandValidate = newCommandValidator()

func newCommandValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return v
}

type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterCommand carries optional profile attributes sent alongside the
// credentials.
type RegisterCommand struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required"`
	Profile  map[string]any `json:"-"`
}

type BindCommand struct {
	TargetEmail string `json:"targetEmail" validate:"required,email"`
}

type PermissionsCommand struct {
	ID          domain.BindingID  `json:"id" validate:"required"`
	Permissions domain.Permission `json:"permissions" validate:"required,oneof=read write"`
}

type ImportCSVCommand struct {
	Name  string `json:"name" validate:"required"`
	Force bool   `json:"forceImport"`
}

func validateCommand(cmd any) error {
	err := commandValidate.Struct(cmd)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &domain.ValidationError{Reason: err.Error()}
	}

	first := fieldErrs[0]
	return &domain.ValidationError{Field: first.Field(), Reason: describeRule(first)}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be an email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func requireID(field string, id string) error {
	if strings.TrimSpace(id) == "" {
		return &domain.ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}
