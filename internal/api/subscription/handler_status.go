package subscription

import (
	"fmt"
	"net/http"
	"time"

	"course-platform/database"
	"course-platform/internal/domain/subscriptions"
	"course-platform/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type statusSummary struct {
	Status             string     `json:"status"`
	TrialEndsAt        *time.Time `json:"trialEndsAt"`
	CurrentPeriodStart *time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd"`
	IsStripe           bool       `json:"isStripe"`
	IsPayPal           bool       `json:"isPayPal"`
}

// SubscriptionStatus reports whether the session user currently has access.
// Signed-out visitors, synthetic ids, and any persistence failure all read
// as "no subscription" rather than an error.
func SubscriptionStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"hasActiveSubscription": false})
		return
	}

	if users.IsSyntheticID(userID) {
		c.JSON(http.StatusOK, gin.H{"hasActiveSubscription": false, "subscription": nil})
		return
	}

	if !database.Available() {
		c.JSON(http.StatusOK, gin.H{"hasActiveSubscription": false})
		return
	}

	sub, err := subscriptions.CurrentForUser(database.DB, userID)
	if err != nil {
		fmt.Println("Subscription status error:", err)
		c.JSON(http.StatusOK, gin.H{"hasActiveSubscription": false})
		return
	}
	if sub == nil {
		c.JSON(http.StatusOK, gin.H{"hasActiveSubscription": false, "subscription": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasActiveSubscription": true,
		"subscription": statusSummary{
			Status:             sub.Status,
			TrialEndsAt:        sub.TrialEndsAt,
			CurrentPeriodStart: sub.CurrentPeriodStart,
			CurrentPeriodEnd:   sub.CurrentPeriodEnd,
			IsStripe:           sub.IsStripe(),
			IsPayPal:           sub.IsPayPal(),
		},
	})
}
