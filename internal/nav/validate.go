package nav

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for axis input.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		if err := RegisterValidations(v); err != nil {
			panic(err)
		}
		validateInst = v
	})
	return validateInst
}

// RegisterValidations installs the nav_context, nav_size, nav_state and tab_id
// tags on v so other packages can validate documents that embed axis values.
func RegisterValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"nav_context": func(fl validator.FieldLevel) bool {
			return ContextType(fl.Field().String()).IsValid()
		},
		"nav_size": func(fl validator.FieldLevel) bool {
			return SizeClass(fl.Field().String()).IsValid()
		},
		"nav_state": func(fl validator.FieldLevel) bool {
			return InteractionState(fl.Field().String()).IsValid()
		},
		"tab_id": func(fl validator.FieldLevel) bool {
			return TabID(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func validateInput(in AxisInput) error {
	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return newInvalidAxisError(strings.ToLower(fe.Field()), fe.Value(), err)
	}
	return newInvalidAxisError("input", in, err)
}
