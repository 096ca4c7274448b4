package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Order represents a plan purchase created when a user selects a plan
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	OrderNumber   string        `json:"orderNumber"`
	Plan          PlanID        `json:"plan"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CardLast4     string        `json:"cardLast4,omitempty"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	ExpiresAt     *time.Time    `json:"expiresAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// IsExpired checks if the order has expired at the given instant
func (o *Order) IsExpired(now time.Time) bool {
	if o.ExpiresAt == nil {
		return false
	}
	return now.After(*o.ExpiresAt)
}

// IsPaymentComplete checks if the order has been paid
func (o *Order) IsPaymentComplete() bool {
	return o.Status == OrderStatusPaid
}

// HasPaymentReceived checks if payment has been received
func (o *Order) HasPaymentReceived() bool {
	return o.PaidAt != nil
}
