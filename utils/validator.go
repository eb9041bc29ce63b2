package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type requiredRule struct {
	field   string
	message string
}

// Validator checks a mapping of field name to value against registered
// required rules and reports all violations at once.
type Validator struct {
	values map[string]string
	rules  []requiredRule
}

func NewValidator(values map[string]string) *Validator {
	return &Validator{values: values}
}

// Required registers a rule failing with message when the field is absent or
// blank.
func (v *Validator) Required(field, message string) {
	v.rules = append(v.rules, requiredRule{field: field, message: message})
}

// Validate returns nil when every rule passes, otherwise a ValidationFailed
// error carrying the field name to messages mapping.
func (v *Validator) Validate() error {
	fields := make(map[string][]string)
	for _, rule := range v.rules {
		value := strings.TrimSpace(v.values[rule.field])
		if err := validate.Var(value, "required"); err != nil {
			fields[rule.field] = append(fields[rule.field], rule.message)
		}
	}
	if len(fields) > 0 {
		return ValidationFailed(fields)
	}
	return nil
}
