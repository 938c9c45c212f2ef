package paypal

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	liveAPIBase    = "https://api-m.paypal.com"
	sandboxAPIBase = "https://api-m.sandbox.paypal.com"
)

type Client struct {
	clientID     string
	clientSecret string
	apiURL       string
	httpClient   *http.Client
}

// NewClient builds a client for the sandbox or live API. mode is "live" or
// anything else for sandbox.
func NewClient(clientID, clientSecret, mode string) *Client {
	base := sandboxAPIBase
	if mode == "live" {
		base = liveAPIBase
	}
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiURL:       base,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// AccessToken exchanges the client credentials for a bearer token.
func (c *Client) AccessToken() (string, error) {
	if !c.Configured() {
		return "", errors.New("PayPal credentials not configured")
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest("POST", c.apiURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("failed to authenticate with PayPal: " + resp.Status)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.AccessToken, nil
}

func (c *Client) newRequest(method, path, token string, body interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// CreateSubscription starts a subscription for the plan and returns PayPal's
// response, including the approval link the subscriber is sent to.
func (c *Client) CreateSubscription(planID, subscriberEmail, returnURL, cancelURL string) (*Subscription, error) {
	token, err := c.AccessToken()
	if err != nil {
		return nil, err
	}

	payload := createSubscriptionRequest{
		PlanID:     planID,
		Subscriber: subscriber{EmailAddress: subscriberEmail},
		ApplicationContext: applicationContext{
			BrandName:          "DevMastery",
			Locale:             "en-US",
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "SUBSCRIBE_NOW",
			ReturnURL:          returnURL,
			CancelURL:          cancelURL,
		},
	}

	req, err := c.newRequest("POST", "/v1/billing/subscriptions", token, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("PayPal-Request-Id", fmt.Sprintf("devmastery-%d", time.Now().UnixMilli()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.New("PayPal subscription creation failed: " + resp.Status)
	}

	var sub Subscription
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetSubscription fetches the current state of a subscription.
func (c *Client) GetSubscription(subscriptionID string) (*Subscription, error) {
	token, err := c.AccessToken()
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest("GET", "/v1/billing/subscriptions/"+subscriptionID, token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("PayPal subscription fetch failed: " + resp.Status)
	}

	var sub Subscription
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels a subscription with a reason.
func (c *Client) CancelSubscription(subscriptionID, reason string) error {
	token, err := c.AccessToken()
	if err != nil {
		return err
	}

	req, err := c.newRequest("POST", "/v1/billing/subscriptions/"+subscriptionID+"/cancel", token, map[string]string{"reason": reason})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return errors.New("PayPal subscription cancellation failed: " + resp.Status)
	}
	return nil
}
