package models

type UserStatus string
type PaymentStatus string
type MeetingStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"

	// Payments, payment requests and refunds share one status machine:
	// pending is initial, paid and cancelled are terminal.
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusApproved  PaymentStatus = "approved"

	MeetingStatusPending  MeetingStatus = "pending"
	MeetingStatusDone     MeetingStatus = "done"
	MeetingStatusCanceled MeetingStatus = "canceled"
)

// Profile names are static reference data seeded at startup.
const (
	ProfileAdmin    = "admin"
	ProfileEmployee = "employee"
	ProfileExpert   = "expert"
)

// IsTerminal reports whether no further transition is allowed.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCancelled
}
