package validator

import (
	"log"

	"membrostotal_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enum rules into the validator
// instance. Registration failures abort startup.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-payment-status", validatePaymentStatus)
	mustRegister("is-meeting-status", validateMeetingStatus)
	mustRegister("is-profile-name", validateProfileName)
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.PaymentStatus(value) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusCancelled, models.PaymentStatusApproved:
		return true
	}
	return false
}

func validateMeetingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.MeetingStatus(value) {
	case models.MeetingStatusPending, models.MeetingStatusDone, models.MeetingStatusCanceled:
		return true
	}
	return false
}

func validateProfileName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.ProfileAdmin, models.ProfileEmployee, models.ProfileExpert:
		return true
	}
	return false
}
