package subscription

import (
	"fmt"
	"net/http"

	"course-platform/config"
	"course-platform/database"
	"course-platform/internal/domain/subscriptions"
	"course-platform/internal/domain/users"
	"course-platform/internal/infra/paypal"
	"course-platform/internal/infra/stripecheckout"

	"github.com/gin-gonic/gin"
)

// CreateSubscription starts a checkout with the configured payment
// processor and returns the hosted URL the subscriber is sent to.
func CreateSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}
	email := c.GetString("email")

	// Synthetic ids have no rows to check; database errors are swallowed so
	// a downed database never blocks checkout (the processor is the source
	// of truth anyway).
	if !users.IsSyntheticID(userID) && database.Available() {
		existing, err := subscriptions.CurrentForUser(database.DB, userID)
		if err != nil {
			fmt.Println("Database check skipped:", err)
		} else if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You already have an active subscription"})
			return
		}
	}

	if config.PAYMENT_PROVIDER == "paypal" {
		createPayPalSubscription(c, email)
		return
	}

	if !stripecheckout.Configured() {
		fmt.Println("Stripe secret key not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment system not configured. Please contact support."})
		return
	}

	baseURL := config.APP_URL
	successURL := baseURL + "/api/subscription/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := baseURL + "/subscribe?canceled=true"

	fmt.Println("Creating checkout session for user:", email)

	session, err := stripecheckout.NewSession(userID, email, successURL, cancelURL)
	if err != nil {
		fmt.Println("Create subscription error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": stripecheckout.UserFacingError(err)})
		return
	}
	if session.URL == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No checkout URL received from Stripe"})
		return
	}

	fmt.Println("Created Stripe checkout session:", session.ID)

	c.JSON(http.StatusOK, gin.H{
		"sessionId":   session.ID,
		"checkoutUrl": session.URL,
	})
}

func createPayPalSubscription(c *gin.Context, email string) {
	client := paypal.NewClient(config.PAYPAL_CLIENT_ID, config.PAYPAL_CLIENT_SECRET, config.PAYPAL_MODE)
	if !client.Configured() || config.PAYPAL_PLAN_ID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment system not configured. Please contact support."})
		return
	}

	baseURL := config.APP_URL
	returnURL := baseURL + "/api/subscription/success"
	cancelURL := baseURL + "/api/subscription/cancel"

	sub, err := client.CreateSubscription(config.PAYPAL_PLAN_ID, email, returnURL, cancelURL)
	if err != nil {
		fmt.Println("PayPal subscription creation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	approveURL := sub.ApproveURL()
	if approveURL == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No approval URL received from PayPal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":   sub.ID,
		"checkoutUrl": approveURL,
	})
}
