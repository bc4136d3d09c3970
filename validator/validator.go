// Package validator wraps go-playground/validator with the custom tags used
// by form-processing services: "contact" (value classifies as an e-mail or a
// phone number) and "date_dmy" (strict dd-mm-yyyy calendar date).
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/form-lib/obfuscate"
	"github.com/vortex-fintech/form-lib/weekday"
)

var v *validator.Validate

func init() {
	v = validator.New()
	_ = v.RegisterValidation("contact", validateContact)
	_ = v.RegisterValidation("date_dmy", validateDateDMY)
}

func Instance() *validator.Validate {
	return v
}

func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

func validateContact(fl validator.FieldLevel) bool {
	return obfuscate.Classify(fl.Field().String()).Kind != obfuscate.KindUnknown
}

func validateDateDMY(fl validator.FieldLevel) bool {
	_, err := weekday.ParseDate(fl.Field().String())
	return err == nil
}
