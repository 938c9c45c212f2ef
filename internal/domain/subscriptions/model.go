package subscriptions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "ACTIVE"
	StatusTrialing  = "TRIALING"
	StatusTrial     = "TRIAL"
	StatusCancelled = "CANCELLED"
)

// EntitledStatuses are the statuses that grant course access.
var EntitledStatuses = []string{StatusActive, StatusTrialing, StatusTrial}

type Subscription struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"not null;index:idx_subscriptions_user_id" json:"userId"`
	Status string `gorm:"not null" json:"status"`

	StripeSubscriptionID *string `gorm:"column:stripe_subscription_id;uniqueIndex:idx_subscriptions_stripe_id" json:"stripeSubscriptionId"`
	StripeCustomerID     *string `gorm:"column:stripe_customer_id" json:"stripeCustomerId"`
	PayPalSubscriptionID *string `gorm:"column:paypal_subscription_id;uniqueIndex:idx_subscriptions_paypal_id" json:"paypalSubscriptionId"`

	CurrentPeriodStart *time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd"`
	TrialEndsAt        *time.Time `json:"trialEndsAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *Subscription) IsStripe() bool {
	return s.StripeSubscriptionID != nil && *s.StripeSubscriptionID != ""
}

func (s *Subscription) IsPayPal() bool {
	return s.PayPalSubscriptionID != nil && *s.PayPalSubscriptionID != ""
}

// CurrentForUser returns the user's current subscription: the most recently
// created row whose status still grants access, or nil when there is none.
func CurrentForUser(db *gorm.DB, userID string) (*Subscription, error) {
	var sub Subscription
	err := db.Where("user_id = ? AND status IN ?", userID, EntitledStatuses).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// UpsertByStripeID creates or refreshes the row mirroring a Stripe
// subscription. The Stripe subscription id is the reconciliation key, so
// replaying the success redirect cannot produce duplicates.
func UpsertByStripeID(db *gorm.DB, sub *Subscription) error {
	if sub.StripeSubscriptionID == nil || *sub.StripeSubscriptionID == "" {
		return gorm.ErrMissingWhereClause
	}

	var existing Subscription
	err := db.Where("stripe_subscription_id = ?", *sub.StripeSubscriptionID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(sub).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&existing).Updates(map[string]interface{}{
		"status":               sub.Status,
		"current_period_start": sub.CurrentPeriodStart,
		"current_period_end":   sub.CurrentPeriodEnd,
		"trial_ends_at":        sub.TrialEndsAt,
	}).Error
}

// UpsertByPayPalID mirrors UpsertByStripeID for the PayPal flow.
func UpsertByPayPalID(db *gorm.DB, sub *Subscription) error {
	if sub.PayPalSubscriptionID == nil || *sub.PayPalSubscriptionID == "" {
		return gorm.ErrMissingWhereClause
	}

	var existing Subscription
	err := db.Where("paypal_subscription_id = ?", *sub.PayPalSubscriptionID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(sub).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&existing).Updates(map[string]interface{}{
		"status":               sub.Status,
		"current_period_start": sub.CurrentPeriodStart,
		"current_period_end":   sub.CurrentPeriodEnd,
		"trial_ends_at":        sub.TrialEndsAt,
	}).Error
}
