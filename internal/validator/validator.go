// Package validator checks incoming arena requests before they reach the
// orchestrator.
package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/AliZeynalov/decision-arena/internal/models"
)

var validate = validator.New()

// ValidationErrors aggregates human-readable field errors for the 400
// response body.
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	return fmt.Sprintf("request validation failed: %d error(s)", len(v.Errors))
}

// ValidateRequest validates an incoming run request. A blank problem is
// deliberately allowed: the orchestrator answers it with a prompt for input
// rather than an error.
func ValidateRequest(req *models.ArenaRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationErrors{}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.StructField() {
	case "RiskMode":
		return fmt.Sprintf("risk_mode must be one of %q, %q, %q",
			models.RiskLow, models.RiskBalanced, models.RiskHigh)
	case "Depth":
		return fmt.Sprintf("depth must be an integer between %d and %d", models.MinDepth, models.MaxDepth)
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
