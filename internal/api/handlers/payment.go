package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/google/uuid"
)

const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ConfirmPaymentResponse is returned once an order's payment is confirmed.
type ConfirmPaymentResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

// InitiatePayment godoc
//	@Summary		Start checkout for an order
//	@Description	Creates a hosted checkout session for the order total. Only the owner of a pending order may pay.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.PaymentSession	"Checkout session with redirect URL"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the order owner"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		409	{object}	response.ErrorResponse	"Order is not pending"
//	@Failure		502	{object}	response.ErrorResponse	"Payment gateway error"
//	@Security		BearerAuth
//	@Router			/orders/{id}/pay [post]
func (h *PaymentHandler) InitiatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, logger, ok := viewerFromRequest(w, r)
		if !ok {
			return
		}

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		sess, err := h.paymentService.InitiatePayment(r.Context(), orderID, viewer)
		if err != nil {
			logger.Error("Failed to initiate payment", slog.String("orderId", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment initiated", slog.String("orderId", orderID.String()), slog.String("sessionId", sess.SessionID))
		response.Success(w, http.StatusOK, sess)
	}
}

// ConfirmPayment godoc
//	@Summary		Confirm an order's payment
//	@Description	Checks the order's checkout session with the gateway and completes the order once it is paid.
//	@Tags			Payments
//	@Produce		json
//	@Param			o_id	query		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200		{object}	ConfirmPaymentResponse	"Payment was successful"
//	@Failure		400		{object}	response.ErrorResponse	"Missing order id or unpaid session"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		409		{object}	response.ErrorResponse	"Order payment already failed"
//	@Security		BearerAuth
//	@Router			/orders/confirm_payment [post]
func (h *PaymentHandler) ConfirmPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, logger, ok := viewerFromRequest(w, r)
		if !ok {
			return
		}

		raw := r.URL.Query().Get("o_id")
		if raw == "" {
			response.Error(w, errors.BadRequestError("Missing o_id"))
			return
		}

		orderID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid o_id format").WithError(err))
			return
		}

		order, err := h.paymentService.ConfirmPayment(r.Context(), orderID, viewer)
		if err != nil {
			logger.Error("Failed to confirm payment", slog.String("orderId", orderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment confirmed", slog.String("orderId", orderID.String()))
		response.Success(w, http.StatusOK, ConfirmPaymentResponse{Message: "Payment was successful", Order: order})
	}
}

// HandleStripeWebhook godoc
//	@Summary		Payment gateway webhook
//	@Description	Receives signed checkout events and applies the payment status they imply.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string					true	"Webhook signature"
//	@Success		200					{object}	map[string]bool
//	@Failure		400					{object}	response.ErrorResponse	"Missing or invalid signature"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		if err := h.paymentService.HandleWebhook(r.Context(), payload, signature); err != nil {
			logger.Error("Failed to process payment webhook", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
