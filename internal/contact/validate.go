package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/musantuli/portfolio/internal/types"
)

// emailPattern is intentionally loose: something@something.something with no
// whitespace. Unicode separators and BOM count as whitespace.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NewValidator returns a validator with the contactemail tag registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Normalize returns a copy of req with surrounding whitespace removed.
func Normalize(req types.ContactRequest) types.ContactRequest {
	return types.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
}

// Validate normalizes and checks a submission. A missing field takes
// precedence over a malformed email.
func Validate(v *validator.Validate, req types.ContactRequest) (types.ContactRequest, error) {
	req = Normalize(req)
	if err := v.Struct(req); err != nil {
		return req, toValidationError(err)
	}
	return req, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "request", Message: err.Error()}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &ValidationError{Field: strings.ToLower(fe.Field()), Message: MessageIncomplete}
		}
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: strings.ToLower(fe.Field()), Message: MessageInvalidEmail}
}
