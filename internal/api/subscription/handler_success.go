package subscription

import (
	"fmt"
	"net/http"
	"time"

	"course-platform/config"
	"course-platform/database"
	"course-platform/internal/domain/subscriptions"
	"course-platform/internal/infra/paypal"
	"course-platform/internal/infra/stripecheckout"

	"github.com/gin-gonic/gin"
	stripesub "github.com/stripe/stripe-go/v75/subscription"
)

// SubscriptionSuccess handles the processor's redirect after checkout. It
// pulls the finished subscription from the processor and mirrors it into the
// local table, then forwards the browser to the dashboard. The processor
// already holds the authoritative state, so a failed local write only logs.
func SubscriptionSuccess(c *gin.Context) {
	if subID := c.Query("subscription_id"); subID != "" {
		payPalSuccess(c, subID)
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		redirectError(c, "missing_session")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		c.Redirect(http.StatusFound, config.APP_URL+"/auth/signin")
		return
	}

	if !stripecheckout.Configured() {
		redirectError(c, "processing_failed")
		return
	}

	checkoutSession, err := stripecheckout.GetExpandedSession(sessionID)
	if err != nil {
		fmt.Println("Subscription success handler error:", err)
		redirectError(c, "processing_failed")
		return
	}
	if checkoutSession.Subscription == nil || checkoutSession.Subscription.ID == "" {
		redirectError(c, "no_subscription")
		return
	}

	// The session metadata names the purchaser; a different signed-in user
	// must not have the subscription attached to their account.
	if purchaser := checkoutSession.Metadata["userId"]; purchaser != "" && purchaser != userID {
		redirectError(c, "processing_failed")
		return
	}

	subData, err := stripesub.Get(checkoutSession.Subscription.ID, nil)
	if err != nil {
		fmt.Println("Subscription success handler error:", err)
		redirectError(c, "processing_failed")
		return
	}

	status := stripecheckout.LocalStatus(subData.Status)
	periodStart := time.Unix(subData.CurrentPeriodStart, 0)
	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0)

	// Trial end is stamped locally, not read back from Stripe.
	var trialEndsAt *time.Time
	if status == subscriptions.StatusTrial {
		t := time.Now().AddDate(0, 0, stripecheckout.TrialDays)
		trialEndsAt = &t
	}

	row := subscriptions.Subscription{
		UserID:               userID,
		Status:               status,
		StripeSubscriptionID: &subData.ID,
		CurrentPeriodStart:   &periodStart,
		CurrentPeriodEnd:     &periodEnd,
		TrialEndsAt:          trialEndsAt,
	}
	if subData.Customer != nil && subData.Customer.ID != "" {
		row.StripeCustomerID = &subData.Customer.ID
	}

	if database.Available() {
		if err := subscriptions.UpsertByStripeID(database.DB, &row); err != nil {
			fmt.Println("Database error:", err)
		}
	}

	c.Redirect(http.StatusFound, config.APP_URL+"/dashboard?subscribed=true")
}

func payPalSuccess(c *gin.Context, subscriptionID string) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.Redirect(http.StatusFound, config.APP_URL+"/auth/signin")
		return
	}

	client := paypal.NewClient(config.PAYPAL_CLIENT_ID, config.PAYPAL_CLIENT_SECRET, config.PAYPAL_MODE)
	sub, err := client.GetSubscription(subscriptionID)
	if err != nil {
		fmt.Println("PayPal subscription fetch error:", err)
		redirectError(c, "processing_failed")
		return
	}
	if sub.Status != "ACTIVE" && sub.Status != "APPROVED" {
		redirectError(c, "no_subscription")
		return
	}

	now := time.Now()
	trialEndsAt := now.AddDate(0, 0, stripecheckout.TrialDays)
	periodEnd := sub.BillingInfo.NextBillingTime
	if periodEnd.IsZero() {
		periodEnd = now.AddDate(0, 1, 0)
	}

	row := subscriptions.Subscription{
		UserID:               userID,
		Status:               subscriptions.StatusActive,
		PayPalSubscriptionID: &sub.ID,
		CurrentPeriodStart:   &now,
		CurrentPeriodEnd:     &periodEnd,
		TrialEndsAt:          &trialEndsAt,
	}

	if database.Available() {
		if err := subscriptions.UpsertByPayPalID(database.DB, &row); err != nil {
			fmt.Println("Database error:", err)
		}
	}

	c.Redirect(http.StatusFound, config.APP_URL+"/dashboard?subscribed=true")
}

func redirectError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, config.APP_URL+"/subscribe?error="+reason)
}
