package subscription

import (
	"net/http"
	"os"
	"strings"

	"course-platform/config"
	"course-platform/database"
	"course-platform/internal/domain/subscriptions"
	"course-platform/internal/domain/users"
	"course-platform/internal/infra/paypal"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	stripesub "github.com/stripe/stripe-go/v75/subscription"
)

// CancelRedirect handles the processor's cancel-url: the visitor backed out
// of checkout, nothing to record.
func CancelRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, config.APP_URL+"/?subscription=cancelled")
}

// CancelSubscription cancels the user's current subscription with its
// processor and marks the local row cancelled.
func CancelSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	if users.IsSyntheticID(userID) || !database.Available() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active subscription to cancel"})
		return
	}

	sub, err := subscriptions.CurrentForUser(database.DB, userID)
	if err != nil || sub == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active subscription to cancel"})
		return
	}

	switch {
	case sub.IsStripe():
		stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
		if stripe.Key == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment system not configured. Please contact support."})
			return
		}
		if _, err := stripesub.Cancel(*sub.StripeSubscriptionID, nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription", "details": err.Error()})
			return
		}
	// Mock subscriptions exist only locally; there is nothing to cancel upstream.
	case sub.IsPayPal() && !strings.HasPrefix(*sub.PayPalSubscriptionID, "MOCK-"):
		client := paypal.NewClient(config.PAYPAL_CLIENT_ID, config.PAYPAL_CLIENT_SECRET, config.PAYPAL_MODE)
		if err := client.CancelSubscription(*sub.PayPalSubscriptionID, "Cancelled by user"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription", "details": err.Error()})
			return
		}
	}

	if err := database.DB.Model(sub).Update("status", subscriptions.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}
