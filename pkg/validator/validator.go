package validator

import (
	"github.com/go-playground/validator/v10"
)

// Stages accepted by the "dealstage" validation rule.
var validStages = map[string]bool{
	"prospecting":   true,
	"qualification": true,
	"discovery":     true,
	"proposal":      true,
	"negotiation":   true,
	"closed_won":    true,
	"closed_lost":   true,
}

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("dealstage", validateDealStage)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

func validateDealStage(fl validator.FieldLevel) bool {
	return validStages[fl.Field().String()]
}
