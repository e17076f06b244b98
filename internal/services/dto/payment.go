package dto

import (
	"time"

	"membrostotal_backend/internal/models"
)

type CreatePaymentRequest struct {
	UserID        uint    `json:"userId" validate:"required"`
	ExpertID      *uint   `json:"expertId"`
	PaymentTypeID uint    `json:"paymentTypeId" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

type UpdatePaymentRequest struct {
	ExpertID      *uint    `json:"expertId"`
	PaymentTypeID *uint    `json:"paymentTypeId"`
	Value         *float64 `json:"value" validate:"omitempty,gt=0"`
	Description   *string  `json:"description"`
}

// CreateOwnPaymentRequest is the self-service shape: the owner comes
// from the access token, never from the body.
type CreateOwnPaymentRequest struct {
	ExpertID      *uint   `json:"expertId"`
	PaymentTypeID uint    `json:"paymentTypeId" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

type CreatePaymentRequestRequest struct {
	ExpertID      *uint   `json:"expertId"`
	PaymentTypeID uint    `json:"paymentTypeId" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

type CreateRefundRequest struct {
	UserID        uint    `json:"userId" validate:"required"`
	PaymentTypeID uint    `json:"paymentTypeId" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

type CreateOwnRefundRequest struct {
	PaymentTypeID uint    `json:"paymentTypeId" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

// CancelRequest carries the mandatory cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type ListPaymentsQuery struct {
	Status   string `form:"status" validate:"omitempty,is-payment-status"`
	UserID   uint   `form:"user_id"`
	ExpertID uint   `form:"expert_id"`
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

type CreatePaymentTypeRequest struct {
	Label string `json:"label" validate:"required"`
}

type PaymentTypeResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type PaymentResponse struct {
	ID           uint                 `json:"id"`
	UserID       uint                 `json:"userId"`
	ExpertID     *uint                `json:"expertId"`
	Value        float64              `json:"value"`
	Description  string               `json:"description"`
	Status       models.PaymentStatus `json:"status"`
	PaidAt       *time.Time           `json:"paidAt"`
	CancelReason string               `json:"cancelReason,omitempty"`
	PaymentType  *PaymentTypeResponse `json:"paymentType"`
	User         *UserResponse        `json:"user,omitempty"`
	Expert       *UserResponse        `json:"expert,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

type PaymentRequestResponse struct {
	ID           uint                 `json:"id"`
	RequesterID  uint                 `json:"requesterId"`
	ExpertID     *uint                `json:"expertId"`
	Value        float64              `json:"value"`
	Description  string               `json:"description"`
	Status       models.PaymentStatus `json:"status"`
	PaidAt       *time.Time           `json:"paidAt"`
	CancelReason string               `json:"cancelReason,omitempty"`
	PaymentType  *PaymentTypeResponse `json:"paymentType"`
	Requester    *UserResponse        `json:"requester,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

type RefundResponse struct {
	ID           uint                 `json:"id"`
	UserID       uint                 `json:"userId"`
	Value        float64              `json:"value"`
	Description  string               `json:"description"`
	Status       models.PaymentStatus `json:"status"`
	RefundDate   *time.Time           `json:"refundDate"`
	CancelReason string               `json:"cancelReason,omitempty"`
	PaymentType  *PaymentTypeResponse `json:"paymentType"`
	User         *UserResponse        `json:"user,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func NewPaymentTypeResponse(pt *models.PaymentType) *PaymentTypeResponse {
	if pt == nil {
		return nil
	}
	return &PaymentTypeResponse{ID: pt.ID, Label: pt.Label}
}

func NewPaymentTypeResponses(types []models.PaymentType) []PaymentTypeResponse {
	out := make([]PaymentTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, *NewPaymentTypeResponse(&types[i]))
	}
	return out
}

func newUserResponsePtr(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	r := NewUserResponse(u)
	return &r
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		ExpertID:     p.ExpertID,
		Value:        p.Value,
		Description:  p.Description,
		Status:       p.Status,
		PaidAt:       p.PaidAt,
		CancelReason: p.CancelReason,
		PaymentType:  NewPaymentTypeResponse(p.PaymentType),
		User:         newUserResponsePtr(p.User),
		Expert:       newUserResponsePtr(p.Expert),
		CreatedAt:    p.CreatedAt,
	}
}

func NewPaymentResponses(payments []models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}

func NewPaymentRequestResponse(p *models.PaymentRequest) PaymentRequestResponse {
	return PaymentRequestResponse{
		ID:           p.ID,
		RequesterID:  p.RequesterID,
		ExpertID:     p.ExpertID,
		Value:        p.Value,
		Description:  p.Description,
		Status:       p.Status,
		PaidAt:       p.PaidAt,
		CancelReason: p.CancelReason,
		PaymentType:  NewPaymentTypeResponse(p.PaymentType),
		Requester:    newUserResponsePtr(p.Requester),
		CreatedAt:    p.CreatedAt,
	}
}

func NewPaymentRequestResponses(requests []models.PaymentRequest) []PaymentRequestResponse {
	out := make([]PaymentRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, NewPaymentRequestResponse(&requests[i]))
	}
	return out
}

func NewRefundResponse(r *models.Refund) RefundResponse {
	return RefundResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Value:        r.Value,
		Description:  r.Description,
		Status:       r.Status,
		RefundDate:   r.RefundDate,
		CancelReason: r.CancelReason,
		PaymentType:  NewPaymentTypeResponse(r.PaymentType),
		User:         newUserResponsePtr(r.User),
		CreatedAt:    r.CreatedAt,
	}
}

func NewRefundResponses(refunds []models.Refund) []RefundResponse {
	out := make([]RefundResponse, 0, len(refunds))
	for i := range refunds {
		out = append(out, NewRefundResponse(&refunds[i]))
	}
	return out
}
