package validation

import (
	"reflect"
	"strings"

	"financas-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("direction_label", validateDirectionLabel)
	_ = v.RegisterValidation("ledger_month", validateLedgerMonth)
	_ = v.RegisterValidation("ledger_year", validateLedgerYear)
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateDirectionLabel accepts the two Portuguese direction labels
// used on ledger records
func validateDirectionLabel(fl validator.FieldLevel) bool {
	return models.IsValidDirection(fl.Field().String())
}

// validateLedgerMonth validates a calendar month number
func validateLedgerMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// validateLedgerYear validates a four-digit year within the range the
// ledger accepts
func validateLedgerYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 2000 && year <= 2100
}

// decimalToFloat lets min/max style rules apply to decimal.Decimal fields
func decimalToFloat(field reflect.Value) interface{} {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := value.Float64()
		return f
	}
	return nil
}
