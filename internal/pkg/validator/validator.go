// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags (required, url, eth_addr, oneof, ...) it registers
// solana_addr, which accepts base58 encoded Solana public keys, and
// notin_fold, which rejects a string equal to any of its space separated
// parameters ignoring case and surrounding spaces.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'RPCURL': value 'x' does not meet the requirements for the 'url' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	_ = validator.RegisterValidation("solana_addr", isSolanaAddress)
	_ = validator.RegisterValidation("notin_fold", isNotInFold)
}

// isSolanaAddress reports whether the field holds a valid base58 public key.
func isSolanaAddress(fl gvalidator.FieldLevel) bool {
	_, err := solana.PublicKeyFromBase58(fl.Field().String())
	return err == nil
}

func isNotInFold(fl gvalidator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	for _, reserved := range strings.Fields(fl.Param()) {
		if strings.EqualFold(value, reserved) {
			return false
		}
	}
	return true
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
