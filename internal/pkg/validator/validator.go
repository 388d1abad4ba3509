// Package validator wraps go-playground/validator so struct tag failures
// come back as one joined error rooted at ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// fieldError renders one failed rule. Nested fields keep their full
// namespace, e.g. "Config.Redis.Addr".
func fieldError(fe gvalidator.FieldError) error {
	return fmt.Errorf("%s: value %q failed the %q rule", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag())
}

func formatError(err error) error {
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrs {
		errs = append(errs, fieldError(fe))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    ...
//	}
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}

// ValidateExcept is Validate with the named top-level fields skipped.
func ValidateExcept(v any, fields ...string) error {
	if err := validate.StructExcept(v, fields...); err != nil {
		return formatError(err)
	}
	return nil
}
