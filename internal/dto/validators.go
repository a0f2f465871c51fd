package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var rowValidator = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// hourstep: positive and a multiple of 0.1 hours (6-minute increments).
	_ = v.RegisterValidation("hourstep", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		if d.LessThanOrEqual(decimal.Zero) {
			return false
		}
		return d.Mul(decimal.NewFromInt(10)).IsInteger()
	})
	return v
}

// ValidateRow runs struct validation for a canonical import row.
func ValidateRow(row any) error {
	return rowValidator.Struct(row)
}
