package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	pyIdentPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	pyModulePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
	debPkgPattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9+.-]+$`)
	ppaPattern      = regexp.MustCompile(`^ppa:[a-z0-9][a-z0-9.+-]*/[a-z0-9][a-z0-9.+-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("pyident", func(fl validator.FieldLevel) bool {
			return pyIdentPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pymodule", func(fl validator.FieldLevel) bool {
			return pyModulePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("debpkg", func(fl validator.FieldLevel) bool {
			return debPkgPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("ppa", func(fl validator.FieldLevel) bool {
			return ppaPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a configuration against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return bootErrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := strings.TrimPrefix(ve.Namespace(), "Config.")
		msg := fmt.Sprintf("%q failed validation for tag '%s'", fmt.Sprint(ve.Value()), ve.Tag())
		return bootErrors.NewValidationError(field, msg, err)
	}

	return bootErrors.NewValidationError("config", err.Error(), err)
}
