package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground's validator so it satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
