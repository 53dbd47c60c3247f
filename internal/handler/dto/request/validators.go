package request

import (
	"sync"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

var customValidations = map[string]validator.Func{
	"phone":         validatePhone,
	"localdatetime": validateLocalDateTime,
}

// RegisterValidators adds the `phone` and `localdatetime` tags to gin's validator.
// It panics when a tag cannot be registered, so a broken setup fails at startup.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin binding validator is not go-playground/validator")
		}
		if err := RegisterOn(v); err != nil {
			panic(err)
		}
	})
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) error {
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %q validation", tag)
		}
	}
	return nil
}

func validatePhone(fl validator.FieldLevel) bool {
	_, err := customer.NormalizePhone(fl.Field().String())
	return err == nil
}

// only the shape is checked here; the business timezone is applied by the handler
func validateLocalDateTime(fl validator.FieldLevel) bool {
	_, err := ParseStartAt(fl.Field().String(), time.UTC)
	return err == nil
}
