package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/google/uuid"
)

type PaymentService interface {
	InitiatePayment(ctx context.Context, orderID uuid.UUID, payer models.Viewer) (*models.PaymentSession, error)
	// HandleWebhook verifies a gateway event and applies the payment status it implies.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	// ConfirmPayment checks the order's checkout session with the gateway and
	// completes the order when the session is paid.
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, viewer models.Viewer) (*models.Order, error)
}

type paymentService struct {
	orderRepo    repository.OrderRepository
	orderService OrderService
	gateway      stripe.Client
	cfg          config.Stripe
}

func NewPaymentService(orderRepo repository.OrderRepository, orderService OrderService, gateway stripe.Client, cfg config.Stripe) PaymentService {
	return &paymentService{orderRepo: orderRepo, orderService: orderService, gateway: gateway, cfg: cfg}
}

func (s *paymentService) InitiatePayment(ctx context.Context, orderID uuid.UUID, payer models.Viewer) (*models.PaymentSession, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", orderID.String()))

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, lookupError(err, "Order not found", "Failed to get order")
	}

	if !payer.CanAccess(order.OwnerID) {
		return nil, appErrors.NotFoundError("Order not found")
	}

	if order.OwnerID != payer.UserID {
		return nil, appErrors.ForbiddenError("Only the order owner can pay for it")
	}

	if order.PaymentStatus != models.PaymentStatusPending {
		return nil, appErrors.InvalidTransitionError(fmt.Sprintf("Order payment is already %s", order.PaymentStatus))
	}

	if err := priceOrder(order); err != nil {
		return nil, appErrors.InternalError("Failed to price order").WithError(err)
	}

	if !order.TotalPrice.IsPositive() {
		return nil, appErrors.BadRequestError("Order total must be greater than zero")
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, stripe.CheckoutRequest{
		OrderID:       order.ID.String(),
		AmountMinor:   order.TotalPrice.Shift(pricing.Places).IntPart(),
		Currency:      s.cfg.Currency,
		CustomerEmail: payer.Email,
		Description:   fmt.Sprintf("%d item(s)", len(order.Items)),
		SuccessURL:    s.cfg.SuccessURL,
		CancelURL:     s.cfg.CancelURL,
	})
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues("error").Inc()
		logger.Error("Checkout session creation failed", slog.Any("error", err))

		return nil, appErrors.ExternalServiceError("Payment gateway request failed").WithError(err)
	}

	metrics.CheckoutSessions.WithLabelValues("created").Inc()

	if err := s.orderRepo.SetPaymentSession(ctx, order.ID, sess.ID); err != nil {
		return nil, appErrors.DatabaseError("Failed to store payment session").WithError(err)
	}

	logger.Info("Checkout session created", slog.String("sessionId", sess.ID))

	return &models.PaymentSession{
		OrderID:     order.ID,
		SessionID:   sess.ID,
		RedirectURL: sess.URL,
		Amount:      order.TotalPrice,
		Currency:    s.cfg.Currency,
	}, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return appErrors.BadRequestError("Invalid webhook signature").WithError(err)
	}

	eventType := string(event.Type)
	logger := middleware.LoggerFromContext(ctx).With(slog.String("eventId", event.ID), slog.String("eventType", eventType))

	switch eventType {
	case stripe.EventCheckoutCompleted, stripe.EventCheckoutAsyncPaymentSuccess,
		stripe.EventCheckoutAsyncPaymentFailed, stripe.EventCheckoutExpired:
	default:
		logger.Debug("Ignoring webhook event")
		return nil
	}

	sess, err := stripe.ParseCheckoutSession(event)
	if err != nil {
		return appErrors.BadRequestError("Malformed checkout session event").WithError(err)
	}

	var target models.PaymentStatus

	switch eventType {
	case stripe.EventCheckoutCompleted:
		// delayed payment methods complete later through async_payment_succeeded
		if sess.PaymentStatus != stripe.PaymentStatusPaid {
			logger.Info("Checkout completed without payment, waiting for async result")
			return nil
		}

		target = models.PaymentStatusComplete
	case stripe.EventCheckoutAsyncPaymentSuccess:
		target = models.PaymentStatusComplete
	default:
		target = models.PaymentStatusFailed
	}

	orderID, err := uuid.Parse(sess.ClientReferenceID)
	if err != nil {
		logger.Warn("Webhook session has no order reference", slog.String("clientReferenceId", sess.ClientReferenceID))
		return nil
	}

	logger = logger.With(slog.String("orderId", orderID.String()))

	if target == models.PaymentStatusComplete {
		_, err = s.orderService.MarkPaymentComplete(ctx, orderID)
	} else {
		_, err = s.orderService.MarkPaymentFailed(ctx, orderID)
	}

	switch {
	case err == nil:
		return nil
	case appErrors.HasCode(err, appErrors.ErrCodeNotFound), appErrors.HasCode(err, appErrors.ErrCodeInvalidTransition):
		// acknowledged so the gateway does not keep redelivering an event we will never apply
		logger.Warn("Webhook event not applied", slog.Any("error", err))
		return nil
	default:
		return err
	}
}

func (s *paymentService) ConfirmPayment(ctx context.Context, orderID uuid.UUID, viewer models.Viewer) (*models.Order, error) {
	order, err := s.orderService.GetOrder(ctx, orderID, viewer)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus == models.PaymentStatusComplete {
		return order, nil
	}

	if order.PaymentSessionID == "" {
		return nil, appErrors.BadRequestError("Payment has not been initiated for this order")
	}

	sess, err := s.gateway.GetCheckoutSession(ctx, order.PaymentSessionID)
	if err != nil {
		return nil, appErrors.ExternalServiceError("Payment gateway request failed").WithError(err)
	}

	if sess.PaymentStatus != stripe.PaymentStatusPaid {
		return nil, appErrors.BadRequestError("Payment has not been completed")
	}

	return s.orderService.MarkPaymentComplete(ctx, orderID)
}
