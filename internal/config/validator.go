package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	presetNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their file keys rather than Go names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			return presetNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every preset and rejects duplicate names.
func Validate(f *File) error {
	if f == nil {
		return newValidationError("presets", "preset file is nil", nil)
	}

	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(f.Presets))
	for i, p := range f.Presets {
		if j, ok := seen[p.Name]; ok {
			return newValidationError(fmt.Sprintf("presets[%d].name", i),
				fmt.Sprintf("duplicate preset %q (first defined at presets[%d])", p.Name, j), nil)
		}
		seen[p.Name] = i
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return newValidationError(field, msg, err)
	}
	return newValidationError("presets", err.Error(), err)
}

// fieldName turns "File.presets[1].sigma" into "presets[1].sigma".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
