package freelancer

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

// RegisterValidations adds the vocabulary tags used by the request structs
// to v.
func RegisterValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"freelancertype": func(fl validator.FieldLevel) bool {
			return IsValidType(fl.Field().String())
		},
		"rateunit": func(fl validator.FieldLevel) bool {
			return IsValidRateUnit(fl.Field().String())
		},
		"specialization": func(fl validator.FieldLevel) bool {
			return IsValidSpecialization(slug.Make(fl.Field().String()))
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

// RegisterGinValidations installs the vocabulary tags on gin's default validator.
func RegisterGinValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return RegisterValidations(v)
}
