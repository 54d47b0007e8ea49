package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"msme-carbon/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sector", validateSector)
	_ = v.RegisterValidation("classifiable_sector", validateClassifiableSector)
	_ = v.RegisterValidation("region", validateRegion)
	_ = v.RegisterValidation("transaction_category", validateTransactionCategory)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the configured rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateSector validates that a string names a declared sector
func validateSector(fl validator.FieldLevel) bool {
	return models.IsValidSector(fl.Field().String())
}

// validateClassifiableSector validates a declared sector other than the catch-all
func validateClassifiableSector(fl validator.FieldLevel) bool {
	sector, ok := models.ParseSector(fl.Field().String())
	return ok && sector != models.SectorOther
}

// validateRegion validates that a region hint maps to a macro-region
func validateRegion(fl validator.FieldLevel) bool {
	_, ok := models.ParseRegion(fl.Field().String())
	return ok
}

// validateTransactionCategory validates that category is one of the sector model categories
func validateTransactionCategory(fl validator.FieldLevel) bool {
	return models.IsValidTransactionCategory(strings.ToLower(fl.Field().String()))
}

// validateNonNegativeAmount validates a decimal string that is zero or positive
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return !amount.IsNegative()
}

// Details converts validation errors into "field: message" strings.
// Errors that are not validation errors are returned as a single detail.
func Details(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), FormatFieldError(fe)))
	}
	return details
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "sector":
		return "must be a declared sector key"
	case "classifiable_sector":
		return "must be a declared sector key other than OTHER"
	case "region":
		return "must name a north, south, east, west or central region"
	case "transaction_category":
		return fmt.Sprintf("must be one of: %s", strings.Join(transactionCategoryNames(), ", "))
	case "non_negative_amount":
		return "must be a decimal amount of zero or more"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

func transactionCategoryNames() []string {
	categories := models.AllTransactionCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}
