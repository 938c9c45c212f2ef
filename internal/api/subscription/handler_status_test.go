package subscription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course-platform/config"
	"course-platform/database"
	"course-platform/internal/app/http/middleware"
	"course-platform/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func statusRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/subscription/status", middleware.OptionalAuthMiddleware(), SubscriptionStatus)
	return r
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	config.JWT_SECRET = "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return signed
}

func getStatus(t *testing.T, r *gin.Engine, token string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/subscription/status", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func withTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&subscriptions.Subscription{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func TestStatusWithoutSession(t *testing.T) {
	r := statusRouter()

	got := getStatus(t, r, "")
	assert.Equal(t, false, got["hasActiveSubscription"])
}

func TestStatusSyntheticUser(t *testing.T) {
	r := statusRouter()

	got := getStatus(t, r, signToken(t, "user-1717171717000"))
	assert.Equal(t, false, got["hasActiveSubscription"])
	assert.Nil(t, got["subscription"])
}

func TestStatusNoDatabase(t *testing.T) {
	prev := database.DB
	database.DB = nil
	t.Cleanup(func() { database.DB = prev })

	r := statusRouter()
	got := getStatus(t, r, signToken(t, "4d7c9f9a-0b1e-4c9e-8f2a-1a2b3c4d5e6f"))
	assert.Equal(t, false, got["hasActiveSubscription"])
}

func TestStatusReportsTrial(t *testing.T) {
	db := withTestDB(t)
	r := statusRouter()

	userID := "4d7c9f9a-0b1e-4c9e-8f2a-1a2b3c4d5e6f"
	stripeID := "sub_trial"
	trialEnd := time.Now().AddDate(0, 0, 3)
	require.NoError(t, db.Create(&subscriptions.Subscription{
		UserID:               userID,
		Status:               subscriptions.StatusTrial,
		StripeSubscriptionID: &stripeID,
		TrialEndsAt:          &trialEnd,
	}).Error)

	got := getStatus(t, r, signToken(t, userID))
	assert.Equal(t, true, got["hasActiveSubscription"])

	sub := got["subscription"].(map[string]interface{})
	assert.Equal(t, subscriptions.StatusTrial, sub["status"])
	assert.NotNil(t, sub["trialEndsAt"])
	assert.Equal(t, true, sub["isStripe"])
	assert.Equal(t, false, sub["isPayPal"])
}

func TestStatusPrefersNewestRow(t *testing.T) {
	db := withTestDB(t)
	r := statusRouter()

	userID := "4d7c9f9a-0b1e-4c9e-8f2a-1a2b3c4d5e6f"
	oldID, newID := "sub_old", "I-NEW"
	require.NoError(t, db.Create(&subscriptions.Subscription{
		UserID:               userID,
		Status:               subscriptions.StatusActive,
		StripeSubscriptionID: &oldID,
		CreatedAt:            time.Now().Add(-2 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&subscriptions.Subscription{
		UserID:               userID,
		Status:               subscriptions.StatusTrial,
		PayPalSubscriptionID: &newID,
		CreatedAt:            time.Now().Add(-time.Hour),
	}).Error)

	got := getStatus(t, r, signToken(t, userID))
	assert.Equal(t, true, got["hasActiveSubscription"])

	sub := got["subscription"].(map[string]interface{})
	assert.Equal(t, subscriptions.StatusTrial, sub["status"])
	assert.Equal(t, true, sub["isPayPal"])
}

func TestStatusIgnoresCancelled(t *testing.T) {
	db := withTestDB(t)
	r := statusRouter()

	userID := "4d7c9f9a-0b1e-4c9e-8f2a-1a2b3c4d5e6f"
	subID := "sub_gone"
	require.NoError(t, db.Create(&subscriptions.Subscription{
		UserID:               userID,
		Status:               subscriptions.StatusCancelled,
		StripeSubscriptionID: &subID,
	}).Error)

	got := getStatus(t, r, signToken(t, userID))
	assert.Equal(t, false, got["hasActiveSubscription"])
}
