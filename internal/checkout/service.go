package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	OrderTTL = 30 * time.Minute
	Currency = "BRL"
)

var (
	ErrNoCheckout   = errors.New("no checkout in progress")
	ErrOrderExpired = errors.New("order expired")
	ErrUnknownPlan  = errors.New("unknown plan")
)

type OrderStore interface {
	SaveOrder(ctx context.Context, o *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type UserStore interface {
	SaveUser(ctx context.Context, u *models.User) error
}

// Service drives checkout flows and persists their orders.
type Service struct {
	flows     *FlowRegistry
	orders    OrderStore
	users     UserStore
	processor Processor
	now       func() time.Time
}

func NewService(orders OrderStore, users UserStore, processor Processor) *Service {
	return &Service{
		flows:     NewFlowRegistry(),
		orders:    orders,
		users:     users,
		processor: processor,
		now:       time.Now,
	}
}

// Current returns the user's flow, or a fresh Browsing flow.
func (s *Service) Current(userID string) *Flow {
	if f, ok := s.flows.Get(userID); ok {
		return f
	}
	return NewFlow(userID, s.now())
}

// Start selects a plan and opens a pending order for it. Starting again
// discards any earlier unfinished flow.
func (s *Service) Start(ctx context.Context, u *models.User, plan models.PlanID) (*Flow, *models.Order, error) {
	entry, ok := subscription.Plan(plan)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}
	if old, ok := s.flows.Get(u.ID); ok {
		s.cancelOrder(ctx, old.OrderID)
	}

	now := s.now()
	flow := NewFlow(u.ID, now)
	if err := flow.SelectPlan(plan, now); err != nil {
		return nil, nil, err
	}

	id := uuid.NewString()
	expires := now.Add(OrderTTL)
	order := &models.Order{
		ID:            id,
		UserID:        u.ID,
		OrderNumber:   "FC-" + strings.ToUpper(id[:8]),
		Plan:          plan,
		Description:   fmt.Sprintf("Assinatura %s (30 dias)", entry.Name),
		Amount:        entry.Price,
		Currency:      Currency,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		ExpiresAt:     &expires,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("save order: %w", err)
	}
	if err := flow.BeginPayment(order.ID, now); err != nil {
		return nil, nil, err
	}
	s.flows.Put(flow)

	log.WithFields(log.Fields{"user_id": u.ID, "order": order.OrderNumber, "plan": plan}).Info("checkout started")
	return flow, order, nil
}

// Pay validates the form, charges the order and attaches a new
// subscription to the user. Validation failures leave the flow pending.
func (s *Service) Pay(ctx context.Context, u *models.User, form PaymentForm) (*models.Subscription, *models.Order, error) {
	flow, ok := s.flows.Get(u.ID)
	if !ok || flow.State != StatePaymentPending {
		return nil, nil, ErrNoCheckout
	}
	if err := ValidatePayment(form); err != nil {
		return nil, nil, err
	}

	order, err := s.orders.GetOrder(ctx, flow.OrderID)
	if err != nil {
		return nil, nil, fmt.Errorf("load order: %w", err)
	}
	if order.IsExpired(s.now()) {
		order.Status = models.OrderStatusExpired
		order.UpdatedAt = s.now()
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			log.WithError(err).Warn("failed to mark order expired")
		}
		s.flows.Delete(u.ID)
		return nil, nil, ErrOrderExpired
	}

	if err := s.processor.Charge(ctx, order, form); err != nil {
		order.PaymentStatus = models.PaymentStatusFailed
		order.UpdatedAt = s.now()
		if saveErr := s.orders.SaveOrder(ctx, order); saveErr != nil {
			log.WithError(saveErr).Warn("failed to record failed payment")
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}

	now := s.now()
	order.Status = models.OrderStatusPaid
	order.PaymentStatus = models.PaymentStatusApproved
	order.CardLast4 = form.Last4()
	order.PaidAt = &now
	order.UpdatedAt = now
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("save order: %w", err)
	}

	u.Subscription = subscription.NewSubscription(order.Plan, now)
	u.UpdatedAt = now
	if err := s.users.SaveUser(ctx, u); err != nil {
		return nil, nil, fmt.Errorf("attach subscription: %w", err)
	}

	if err := flow.Activate(now); err != nil {
		return nil, nil, err
	}
	s.flows.Delete(u.ID)

	log.WithFields(log.Fields{"user_id": u.ID, "order": order.OrderNumber, "plan": order.Plan}).Info("subscription activated")
	return u.Subscription, order, nil
}

// Abandon discards the user's flow and cancels its pending order.
func (s *Service) Abandon(ctx context.Context, u *models.User) error {
	flow, ok := s.flows.Get(u.ID)
	if !ok {
		return ErrNoCheckout
	}
	s.flows.Delete(u.ID)
	s.cancelOrder(ctx, flow.OrderID)
	return nil
}

func (s *Service) cancelOrder(ctx context.Context, orderID string) {
	if orderID == "" {
		return
	}
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil || order.Status != models.OrderStatusPending {
		return
	}
	order.Status = models.OrderStatusCancelled
	order.UpdatedAt = s.now()
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		log.WithError(err).WithField("order_id", orderID).Warn("failed to cancel order")
	}
}
