package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type PlanID string

const (
	PlanStarter  PlanID = "starter"
	PlanStandard PlanID = "standard"
	PlanPremium  PlanID = "premium"
)

// ParsePlanID rejects anything outside the three catalog tiers.
func ParsePlanID(s string) (PlanID, error) {
	switch p := PlanID(strings.ToLower(strings.TrimSpace(s))); p {
	case PlanStarter, PlanStandard, PlanPremium:
		return p, nil
	}
	return "", fmt.Errorf("unknown plan %q", s)
}

// Rank orders tiers from lowest (1) to highest (3). Unknown plans rank 0.
func (p PlanID) Rank() int {
	switch p {
	case PlanStarter:
		return 1
	case PlanStandard:
		return 2
	case PlanPremium:
		return 3
	}
	return 0
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is the per-user record attached after a confirmed payment.
type Subscription struct {
	Plan                  PlanID             `json:"plan"`
	Status                SubscriptionStatus `json:"status"`
	StartDate             time.Time          `json:"startDate"`
	EndDate               time.Time          `json:"endDate"`
	CanDowngrade          bool               `json:"canDowngrade"`
	DowngradableDate      *time.Time         `json:"downgradableDate,omitempty"`
	DietsUsedThisMonth    int                `json:"dietsUsedThisMonth"`
	WorkoutsUsedThisMonth int                `json:"workoutsUsedThisMonth"`
	UsagePeriodStart      time.Time          `json:"usagePeriodStart"`
}

// Limit is a monthly quota. Unlimited is a sentinel, never a large number.
type Limit int

const Unlimited Limit = -1

func (l Limit) IsUnlimited() bool {
	return l == Unlimited
}

// Allows reports whether one more use fits under the quota.
func (l Limit) Allows(used int) bool {
	return l.IsUnlimited() || used < int(l)
}

// Remaining returns max(0, l-used), or Unlimited.
func (l Limit) Remaining(used int) Limit {
	if l.IsUnlimited() {
		return Unlimited
	}
	if r := int(l) - used; r > 0 {
		return Limit(r)
	}
	return 0
}

func (l Limit) String() string {
	if l.IsUnlimited() {
		return "unlimited"
	}
	return fmt.Sprintf("%d", int(l))
}

func (l Limit) MarshalJSON() ([]byte, error) {
	if l.IsUnlimited() {
		return []byte(`"unlimited"`), nil
	}
	return json.Marshal(int(l))
}

func (l *Limit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "unlimited" {
			return fmt.Errorf("invalid limit %q", s)
		}
		*l = Unlimited
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid limit: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("invalid limit %d", n)
	}
	*l = Limit(n)
	return nil
}

// PlanLimits are the feature limits granted by a plan tier.
type PlanLimits struct {
	DietsPerMonth          Limit `json:"dietsPerMonth"`
	WorkoutsPerMonth       Limit `json:"workoutsPerMonth"`
	CanChangeDiet          bool  `json:"canChangeDiet"`
	SupplementConsultation bool  `json:"supplementConsultation"`
}

// SubscriptionPlan is a static catalog entry.
type SubscriptionPlan struct {
	ID            PlanID     `json:"id"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	Description   string     `json:"description"`
	Features      []string   `json:"features"`
	Limits        PlanLimits `json:"limits"`
	MinimumMonths int        `json:"minimumMonths,omitempty"`
	Popular       bool       `json:"popular,omitempty"`
}

type UsageStatus struct {
	DietsUsed         int   `json:"dietsUsed"`
	WorkoutsUsed      int   `json:"workoutsUsed"`
	DietsRemaining    Limit `json:"dietsRemaining"`
	WorkoutsRemaining Limit `json:"workoutsRemaining"`
}
