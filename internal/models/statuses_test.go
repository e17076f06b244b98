package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusApproved.IsTerminal())
	assert.True(t, PaymentStatusPaid.IsTerminal())
	assert.True(t, PaymentStatusCancelled.IsTerminal())
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ana"}
	assert.Equal(t, "Ana", u.FullName())

	u.LastName = "Silva"
	assert.Equal(t, "Ana Silva", u.FullName())
}

func TestUserIsAdmin(t *testing.T) {
	u := User{}
	assert.False(t, u.IsAdmin())

	u.Profile = &Profile{Name: ProfileEmployee}
	assert.False(t, u.IsAdmin())

	u.Profile = &Profile{Name: ProfileAdmin}
	assert.True(t, u.IsAdmin())
}
