package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

var (
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	expiryRegex     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3}$`)
	cpfRegex        = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

// PaymentForm is the card data submitted by the user. It is never persisted.
type PaymentForm struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	CardName   string `json:"cardName"`
	CPF        string `json:"cpf"`
}

func (f PaymentForm) normalizedCard() string {
	return strings.ReplaceAll(f.CardNumber, " ", "")
}

// Last4 returns the last four digits of the card number.
func (f PaymentForm) Last4() string {
	n := f.normalizedCard()
	if len(n) < 4 {
		return ""
	}
	return n[len(n)-4:]
}

// ValidatePayment checks the form format only; no authorization happens.
func ValidatePayment(f PaymentForm) error {
	errs := models.FieldErrors{}
	if !cardNumberRegex.MatchString(f.normalizedCard()) {
		errs["cardNumber"] = "Número do cartão deve ter 16 dígitos"
	}
	if !expiryRegex.MatchString(f.Expiry) {
		errs["expiryDate"] = "Formato: MM/AA"
	}
	if !cvvRegex.MatchString(f.CVV) {
		errs["cvv"] = "CVV deve ter 3 dígitos"
	}
	if strings.TrimSpace(f.CardName) == "" {
		errs["cardName"] = "Nome no cartão é obrigatório"
	}
	if !cpfRegex.MatchString(f.CPF) {
		errs["cpf"] = "Formato: 000.000.000-00"
	}
	return errs.OrNil()
}

var ErrPaymentDeclined = errors.New("payment declined")

// Processor captures a payment for an order.
type Processor interface {
	Charge(ctx context.Context, order *models.Order, form PaymentForm) error
}

// SimulatedProcessor approves every payment after Delay.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p SimulatedProcessor) Charge(ctx context.Context, order *models.Order, form PaymentForm) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
