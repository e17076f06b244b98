package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleDTO struct {
	Email   string  `json:"email" validate:"required,email"`
	Value   float64 `json:"value" validate:"required,gt=0"`
	Status  string  `json:"status" validate:"omitempty,is-payment-status"`
	Profile string  `json:"profile" validate:"omitempty,is-profile-name"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{Email: "ana@exemplo.com", Value: 150.0, Status: "pending", Profile: "admin"})
	assert.NoError(t, err)
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{Email: "não-é-email", Value: 10})

	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Contains(t, vErr.Errors, "email")
		assert.Equal(t, "Deve ser um e-mail válido", vErr.Errors["email"])
	}
}

func TestValidate_RequiredMessagePortuguese(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{})

	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, "Este campo é obrigatório", vErr.Errors["email"])
	}
}

func TestValidate_PaymentStatusRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "a@b.com", Value: 1, Status: "exploded"})
	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, "Status de pagamento inválido", vErr.Errors["status"])
	}

	for _, status := range []string{"pending", "paid", "cancelled", "approved"} {
		assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Value: 1, Status: status}), status)
	}
}

func TestValidate_ProfileNameRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "a@b.com", Value: 1, Profile: "superuser"})
	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Contains(t, vErr.Errors, "profile")
	}

	for _, profile := range []string{"admin", "employee", "expert"} {
		assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Value: 1, Profile: profile}), profile)
	}
}
