package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted by any form.
const MinPasswordLength = 8

// Field error messages.
const (
	MsgRequired      = "Required"
	MsgEmail         = "Enter a valid email"
	MsgPasswordShort = "At least 8 characters"
	MsgMismatch      = "Passwords do not match"
	MsgAgree         = "You must agree to the terms"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("emailshape", validateEmailShape)

	// Report fields by their form name so errors line up with input names.
	validatorInstance.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// Validator returns the shared validator with the form rules registered.
func Validator() *validator.Validate {
	return validatorInstance
}

// validateEmailShape accepts anything shaped like local@domain.tld.
func validateEmailShape(fl validator.FieldLevel) bool {
	return emailShape.MatchString(fl.Field().String())
}

// Errors maps a form field name to its error message.
type Errors map[string]string

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Any reports whether there is at least one error.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Visible hides errors until the user has tried to submit at least once, so
// typing into a fresh form never flashes errors.
func Visible(attempted bool, errs Errors) Errors {
	if !attempted {
		return Errors{}
	}
	return errs
}

// check runs struct validation and converts the result to Errors, keeping the
// first failing rule per field.
func check(form any) Errors {
	errs := Errors{}
	err := validatorInstance.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["_form"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		if errs.Has(fe.Field()) {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return MsgAgree
		}
		return MsgRequired
	case "emailshape":
		return MsgEmail
	case "min":
		return MsgPasswordShort
	case "eqfield":
		return MsgMismatch
	default:
		return "Invalid value"
	}
}
