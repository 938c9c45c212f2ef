package subscription

import (
	"fmt"
	"net/http"
	"time"

	"course-platform/database"
	"course-platform/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// CreateMockSubscription grants access without touching a payment processor.
// Development convenience for exercising the gated dashboard.
func CreateMockSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !database.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mock subscription"})
		return
	}

	existing, err := subscriptions.CurrentForUser(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mock subscription"})
		return
	}

	if existing != nil {
		if err := database.DB.Model(existing).Update("status", subscriptions.StatusActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mock subscription"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription activated!", "redirect": "/dashboard"})
		return
	}

	now := time.Now()
	periodEnd := now.AddDate(0, 0, 30)
	trialEndsAt := now.AddDate(0, 0, 3)
	mockID := fmt.Sprintf("MOCK-%d", now.UnixMilli())

	sub := subscriptions.Subscription{
		UserID:               userID,
		Status:               subscriptions.StatusActive,
		PayPalSubscriptionID: &mockID,
		CurrentPeriodStart:   &now,
		CurrentPeriodEnd:     &periodEnd,
		TrialEndsAt:          &trialEndsAt,
	}
	if err := database.DB.Create(&sub).Error; err != nil {
		fmt.Println("Mock subscription error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mock subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mock subscription created!", "redirect": "/dashboard"})
}
