package schema

import (
	"fmt"
	"strings"

	"github.com/voyagerhq/voyager/pkg/types"
)

// Check constraint builders. Each returns a CheckFn that reports
// types.ErrCheckViolation (wrapped) on failure. Nil values pass; nullability
// is validated separately.

// CheckUppercase requires the value to equal its own uppercase form.
func CheckUppercase(col string) CheckFn {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if s != strings.ToUpper(s) {
			return fmt.Errorf("%w: %s must be uppercase, got %q", types.ErrCheckViolation, col, s)
		}
		return nil
	}
}

// CheckLength requires a string value of exactly n characters.
func CheckLength(col string, n int) CheckFn {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if len(s) != n {
			return fmt.Errorf("%w: %s must be %d characters, got %q", types.ErrCheckViolation, col, n, s)
		}
		return nil
	}
}

// CheckEnum requires the value to be one of the allowed strings.
func CheckEnum(col string, allowed []string) CheckFn {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if !set[s] {
			return fmt.Errorf("%w: %s value %q not allowed", types.ErrCheckViolation, col, s)
		}
		return nil
	}
}

// CheckNonNegative requires a non-negative integer value.
func CheckNonNegative(col string) CheckFn {
	return func(v any) error {
		var n int64
		switch x := v.(type) {
		case int64:
			n = x
		case int:
			n = int64(x)
		case float64:
			n = int64(x)
		default:
			return nil
		}
		if n < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", types.ErrCheckViolation, col, n)
		}
		return nil
	}
}

// CheckAll combines several checks on one column.
func CheckAll(checks ...CheckFn) CheckFn {
	return func(v any) error {
		for _, c := range checks {
			if err := c(v); err != nil {
				return err
			}
		}
		return nil
	}
}
