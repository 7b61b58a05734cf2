package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// inputValidator checks struct tag rules on service inputs.
type inputValidator struct {
	v *validator.Validate
}

func newInputValidator() *inputValidator {
	return &inputValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Violations lists every failed rule on i as "field: tag", e.g.
// "email: required". It returns nil when i is valid.
func (iv *inputValidator) Violations(i any) []string {
	err := iv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return out
}
