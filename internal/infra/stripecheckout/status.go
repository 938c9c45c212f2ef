package stripecheckout

import (
	"strings"

	"course-platform/internal/domain/subscriptions"

	"github.com/stripe/stripe-go/v75"
)

// LocalStatus maps a Stripe subscription status onto the stored status.
// Anything Stripe considers live that is not an explicit trial is ACTIVE.
func LocalStatus(s stripe.SubscriptionStatus) string {
	if s == stripe.SubscriptionStatusTrialing {
		return subscriptions.StatusTrial
	}
	return subscriptions.StatusActive
}

// Normalize collapses raw Stripe status strings for display.
func Normalize(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return strings.TrimSpace(s)
	}
}
