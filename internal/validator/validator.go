package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map. Messages are in
// Portuguese, matching the product's audience.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("campo '%s': %s", field, msg))
	}
	return "validação falhou: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator with JSON-tag field names and
// the domain rules from rules.go.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names from json tags so clients see the names they
	// actually sent, not Go struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate returns *ValidationError when the struct fails any rule.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo é obrigatório"
	case "email":
		return "Deve ser um e-mail válido"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Deve ter no mínimo %s caracteres/itens", fe.Param())
		}
		return fmt.Sprintf("Deve ser no mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Deve ter no máximo %s caracteres/itens", fe.Param())
		}
		return fmt.Sprintf("Deve ser no máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Deve ser um de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "Deve ser uma URL válida"
	case "is-payment-status":
		return "Status de pagamento inválido"
	case "is-meeting-status":
		return "Status de reunião inválido"
	case "is-profile-name":
		return "Perfil inválido"
	default:
		return fmt.Sprintf("Valor inválido (regra '%s')", fe.Tag())
	}
}
