// Package checkout implements plan selection and simulated payment.
//
// A Flow moves Browsing -> PlanSelected -> PaymentPending -> Active. There
// is no transition out of Active and no rollback; abandoning a flow simply
// discards it.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

type State string

const (
	StateBrowsing       State = "browsing"
	StatePlanSelected   State = "plan_selected"
	StatePaymentPending State = "payment_pending"
	StateActive         State = "active"
)

var ErrInvalidTransition = errors.New("invalid checkout transition")

// Flow is the transient checkout state of one user.
type Flow struct {
	UserID    string        `json:"userId"`
	State     State         `json:"state"`
	Plan      models.PlanID `json:"plan,omitempty"`
	OrderID   string        `json:"orderId,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewFlow(userID string, now time.Time) *Flow {
	return &Flow{UserID: userID, State: StateBrowsing, UpdatedAt: now}
}

func (f *Flow) transition(from, to State, now time.Time) error {
	if f.State != from {
		return fmt.Errorf("%w: %s -> %s (current %s)", ErrInvalidTransition, from, to, f.State)
	}
	f.State = to
	f.UpdatedAt = now
	return nil
}

// SelectPlan records an explicit plan choice while browsing.
func (f *Flow) SelectPlan(plan models.PlanID, now time.Time) error {
	if plan.Rank() == 0 {
		return fmt.Errorf("unknown plan %q", plan)
	}
	if err := f.transition(StateBrowsing, StatePlanSelected, now); err != nil {
		return err
	}
	f.Plan = plan
	return nil
}

// BeginPayment attaches the order awaiting payment.
func (f *Flow) BeginPayment(orderID string, now time.Time) error {
	if err := f.transition(StatePlanSelected, StatePaymentPending, now); err != nil {
		return err
	}
	f.OrderID = orderID
	return nil
}

// Activate marks the payment as accepted.
func (f *Flow) Activate(now time.Time) error {
	return f.transition(StatePaymentPending, StateActive, now)
}
