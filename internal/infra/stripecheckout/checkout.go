package stripecheckout

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/price"
	"github.com/stripe/stripe-go/v75/product"
)

// The single plan this product sells.
const (
	ProductName = "DevMastery Monthly"
	ProductDesc = "Monthly subscription to DevMastery course with 3-day free trial"
	TrialDays   = 3
	AmountCents = 2500
	Currency    = "usd"
)

var (
	priceMu      sync.Mutex
	createdPrice string
)

// Configured reports whether the Stripe secret key is present. Endpoints
// that need Stripe return 500 with a support message when it is not.
func Configured() bool {
	return os.Getenv("STRIPE_SECRET_KEY") != ""
}

func setKey() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
}

// ensurePrice returns the configured price id, creating the product and a
// monthly price on the fly when none is configured. The created id is cached
// for the life of the process.
func ensurePrice() (string, error) {
	if id := os.Getenv("STRIPE_PRICE_ID"); id != "" {
		return id, nil
	}

	priceMu.Lock()
	defer priceMu.Unlock()
	if createdPrice != "" {
		return createdPrice, nil
	}

	prod, err := product.New(&stripe.ProductParams{
		Name:        stripe.String(ProductName),
		Description: stripe.String(ProductDesc),
	})
	if err != nil {
		return "", err
	}

	p, err := price.New(&stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(AmountCents),
		Currency:   stripe.String(Currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
	})
	if err != nil {
		return "", err
	}

	fmt.Println("Created Stripe price:", p.ID)
	createdPrice = p.ID
	return createdPrice, nil
}

// NewSession creates a subscription-mode checkout session for the user. The
// user id travels in the session and subscription metadata so the success
// redirect can tie the purchase back to a local account.
func NewSession(userID, userEmail, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
	setKey()

	priceID, err := ensurePrice()
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(TrialDays),
			Metadata:        map[string]string{"userId": userID},
		},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(userID),
	}
	params.AddMetadata("userId", userID)

	// Sessions for accounts without a real email let Stripe collect one.
	if userEmail != "" && !strings.Contains(userEmail, "user-") {
		params.CustomerEmail = stripe.String(userEmail)
	} else {
		params.CustomerCreation = stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways))
		params.PaymentMethodCollection = stripe.String(string(stripe.CheckoutSessionPaymentMethodCollectionAlways))
	}

	return checkoutsession.New(params)
}

// GetExpandedSession retrieves a checkout session with its subscription and
// customer expanded, for the success-redirect reconciliation.
func GetExpandedSession(sessionID string) (*stripe.CheckoutSession, error) {
	setKey()
	return checkoutsession.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
}

// UserFacingError maps Stripe error text to the message shown to the user.
func UserFacingError(err error) string {
	if err == nil {
		return "Failed to create subscription"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Invalid API Key"):
		return "Payment configuration error. Please contact support."
	case strings.Contains(msg, "price"):
		return "Subscription plan configuration error. Please try again later."
	case msg != "":
		return msg
	default:
		return "Failed to create subscription"
	}
}
