package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

const (
	EventCheckoutCompleted           = "checkout.session.completed"
	EventCheckoutAsyncPaymentSuccess = "checkout.session.async_payment_succeeded"
	EventCheckoutAsyncPaymentFailed  = "checkout.session.async_payment_failed"
	EventCheckoutExpired             = "checkout.session.expired"

	PaymentStatusPaid = string(stripe.CheckoutSessionPaymentStatusPaid)
)

// CheckoutRequest describes a single-line hosted checkout for one order.
// AmountMinor is expressed in the currency's minor unit.
type CheckoutRequest struct {
	OrderID       string
	AmountMinor   int64
	Currency      string
	CustomerEmail string
	Description   string
	SuccessURL    string
	CancelURL     string
}

type CheckoutSession struct {
	ID                string
	URL               string
	ClientReferenceID string
	Status            string
	PaymentStatus     string
	AmountTotal       int64
	Currency          string
}

type Client interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	Ping(ctx context.Context) error
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

func (s *stripeClient) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if req.AmountMinor <= 0 {
		return nil, fmt.Errorf("checkout amount must be positive, got %d", req.AmountMinor)
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String("Order " + req.OrderID),
	}
	if req.Description != "" {
		productData.Description = stripe.String(req.Description)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.OrderID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(req.Currency),
					UnitAmount:  stripe.Int64(req.AmountMinor),
					ProductData: productData,
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	params.Context = ctx
	params.AddMetadata("order_id", req.OrderID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	return toCheckoutSession(sess), nil
}

func (s *stripeClient) GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session %s: %w", id, err)
	}

	return toCheckoutSession(sess), nil
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

func (s *stripeClient) Ping(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	if _, err := balance.Get(params); err != nil {
		return fmt.Errorf("failed to connect to stripe: %w", err)
	}

	return nil
}

// ParseCheckoutSession decodes the checkout session carried by a checkout.session.* event.
func ParseCheckoutSession(event Event) (*CheckoutSession, error) {
	if event.Data == nil {
		return nil, errors.New("event has no data")
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decoding checkout session: %w", err)
	}

	return toCheckoutSession(&sess), nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) *CheckoutSession {
	return &CheckoutSession{
		ID:                sess.ID,
		URL:               sess.URL,
		ClientReferenceID: sess.ClientReferenceID,
		Status:            string(sess.Status),
		PaymentStatus:     string(sess.PaymentStatus),
		AmountTotal:       sess.AmountTotal,
		Currency:          string(sess.Currency),
	}
}
