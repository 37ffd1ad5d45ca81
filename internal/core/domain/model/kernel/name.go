package kernel

import (
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// ValidateName reports a ValueIsRequiredError when value is empty or blank.
// Names are the natural keys of categories, restaurants, dishes and customers.
func ValidateName(paramName string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
