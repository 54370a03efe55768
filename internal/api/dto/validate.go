package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/supportcrm/dashboard-service/pkg/util"
)

var validate = validator.New()

// Validate checks a request struct against its validate tags and converts
// failures into the validation error shape the API returns.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return apperrors.NewValidationError("invalid payload", details)
}
