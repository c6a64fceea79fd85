// internal/validator/validator.go
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

func init() {
	Validate = validator.New()

	// Строка не пустая и не только пробелы
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(regexp.MustCompile(`\S`).FindString(s)) > 0
	})

	// Код валюты: три заглавные латинские буквы, например "USD"
	_ = Validate.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyRe.MatchString(fl.Field().String())
	})
}
