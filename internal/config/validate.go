package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator, reporting koanf key
// names in errors.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// convertValidationError reports the first failing field by its config key.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fe := ves[0]
		key := tomlKey(fe)
		if fe.Param() != "" {
			return fmt.Errorf("%w: %s failed %s=%s", ErrInvalid, key, fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %s failed %s", ErrInvalid, key, fe.Tag())
	}

	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

// tomlKey turns "Config.header.max_colors" into "header.max_colors".
func tomlKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
