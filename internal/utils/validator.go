// internal/utils/validator.go
package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sell_status", validateSellStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSellStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "listed", "sold", "canceled":
		return true
	}
	return false
}

// ValidationMessage flattens validator errors into the single-line message
// the error body carries.
func ValidationMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	var missing, invalid []string
	for _, e := range validationErrs {
		field := strings.ToLower(e.Field())
		if e.Tag() == "required" {
			missing = append(missing, field)
		} else {
			invalid = append(invalid, field)
		}
	}

	if len(missing) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return fmt.Sprintf("Invalid fields: %s", strings.Join(invalid, ", "))
}
