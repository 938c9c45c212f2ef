package paypal

import "time"

// Subscription is the slice of PayPal's subscription resource this app reads.
type Subscription struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	PlanID      string      `json:"plan_id"`
	StartTime   time.Time   `json:"start_time"`
	Links       []Link      `json:"links"`
	BillingInfo BillingInfo `json:"billing_info"`
}

type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type BillingInfo struct {
	NextBillingTime time.Time `json:"next_billing_time"`
}

// ApproveURL returns the link the subscriber must visit to approve the
// subscription, or "" when PayPal did not include one.
func (s *Subscription) ApproveURL() string {
	for _, l := range s.Links {
		if l.Rel == "approve" {
			return l.Href
		}
	}
	return ""
}

type createSubscriptionRequest struct {
	PlanID             string             `json:"plan_id"`
	Subscriber         subscriber         `json:"subscriber"`
	ApplicationContext applicationContext `json:"application_context"`
}

type subscriber struct {
	EmailAddress string `json:"email_address"`
}

type applicationContext struct {
	BrandName          string `json:"brand_name"`
	Locale             string `json:"locale"`
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
	ReturnURL          string `json:"return_url"`
	CancelURL          string `json:"cancel_url"`
}
