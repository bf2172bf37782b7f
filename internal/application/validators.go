package application

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// registerCustomValidators registers the document-specific validation
// functions used by GraphDocument struct tags.
func registerCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("semver", validateSemver); err != nil {
		return fmt.Errorf("failed to register semver validator: %w", err)
	}
	if err := v.RegisterValidation("graphid", validateGraphID); err != nil {
		return fmt.Errorf("failed to register graphid validator: %w", err)
	}
	if err := v.RegisterValidation("refname", validateRefName); err != nil {
		return fmt.Errorf("failed to register refname validator: %w", err)
	}
	return nil
}

// validateSemver validates that a string follows semantic versioning
// format (X.Y.Z where X, Y, Z are non-negative integers).
func validateSemver(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	var major, minor, patch int
	n, err := fmt.Sscanf(value, "%d.%d.%d", &major, &minor, &patch)
	return err == nil && n == 3
}

// validateGraphID accepts the identifiers the canvas generates for nodes
// and edges: letters, digits, hyphens, and underscores.
func validateGraphID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// validateRefName accepts named-reference identifiers: a letter or
// underscore followed by letters, digits, or underscores.
func validateRefName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	for i, r := range value {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
