package models

import "time"

// PaymentType is static reference data (e.g. pix, transfer, invoice).
type PaymentType struct {
	BaseModel
	Label string `gorm:"uniqueIndex;not null" json:"label"`
}

type Payment struct {
	BaseModel
	UserID        uint          `gorm:"not null;index" json:"userId"`
	ExpertID      *uint         `gorm:"index" json:"expertId"`
	PaymentTypeID uint          `gorm:"not null" json:"paymentTypeId"`
	Value         float64       `gorm:"not null" json:"value"`
	Description   string        `json:"description"`
	Status        PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PhotoKey      string        `json:"-"`
	PaidAt        *time.Time    `json:"paidAt"`
	CancelReason  string        `json:"cancelReason"`

	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Expert      *User        `gorm:"foreignKey:ExpertID" json:"expert,omitempty"`
	PaymentType *PaymentType `gorm:"foreignKey:PaymentTypeID" json:"paymentType,omitempty"`
}

// PaymentRequest is an employee/expert initiated request that an admin
// later pays or cancels. Same status machine as Payment.
type PaymentRequest struct {
	BaseModel
	RequesterID   uint          `gorm:"not null;index" json:"requesterId"`
	ExpertID      *uint         `gorm:"index" json:"expertId"`
	PaymentTypeID uint          `gorm:"not null" json:"paymentTypeId"`
	Value         float64       `gorm:"not null" json:"value"`
	Description   string        `json:"description"`
	Status        PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PhotoKey      string        `json:"-"`
	PaidAt        *time.Time    `json:"paidAt"`
	CancelReason  string        `json:"cancelReason"`

	Requester   *User        `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Expert      *User        `gorm:"foreignKey:ExpertID" json:"expert,omitempty"`
	PaymentType *PaymentType `gorm:"foreignKey:PaymentTypeID" json:"paymentType,omitempty"`
}

type Refund struct {
	BaseModel
	UserID        uint          `gorm:"not null;index" json:"userId"`
	PaymentTypeID uint          `gorm:"not null" json:"paymentTypeId"`
	Value         float64       `gorm:"not null" json:"value"`
	Description   string        `json:"description"`
	Status        PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PhotoKey      string        `json:"-"`
	RefundDate    *time.Time    `json:"refundDate"`
	CancelReason  string        `json:"cancelReason"`

	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PaymentType *PaymentType `gorm:"foreignKey:PaymentTypeID" json:"paymentType,omitempty"`
}
