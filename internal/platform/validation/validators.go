// Package validation registers the custom binding rules used by the HTTP layer
// and turns validator errors into readable messages.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	moneyIntegerDigits = 6
	moneyScale         = 2
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterGinValidators adds the custom rules to gin's validator engine.
// Safe to call more than once.
func RegisterGinValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterValidators(v)
	})
	return registerErr
}

// RegisterValidators registers custom validators to the validator instance.
// Field names in errors follow the json tags.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalString, decimal.Decimal{})
	return v.RegisterValidation("money", Money)
}

// Money accepts non-negative amounts that fit decimal(8,2).
func Money(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return ValidMoney(d)
}

// ValidMoney reports whether d is non-negative with at most six integer and two fractional digits.
func ValidMoney(d decimal.Decimal) bool {
	if d.IsNegative() {
		return false
	}
	if !d.Equal(d.Round(moneyScale)) {
		return false
	}
	return len(d.Truncate(0).String()) <= moneyIntegerDigits
}

func decimalString(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
