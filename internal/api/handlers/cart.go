package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// CreateCart godoc
//	@Summary		Create a cart
//	@Description	Creates an anonymous cart. The returned id is the cart's only credential.
//	@Tags			Cart
//	@Produce		json
//	@Success		201	{object}	models.Cart
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/carts [post]
func (h *CartHandler) CreateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cart, err := h.cartService.CreateCart(r.Context())
		if err != nil {
			logger.Error("Failed to create cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart created", slog.String("cartId", cart.ID.String()))
		response.Success(w, http.StatusCreated, cart)
	}
}

// GetCart godoc
//	@Summary		Get a cart
//	@Description	Returns the cart with its items, subtotals and grand total priced at current product prices.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Cart
//	@Failure		400	{object}	response.ErrorResponse	"Invalid cart ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Cart not found"
//	@Router			/carts/{id} [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), cartID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to get cart",
				slog.String("cartId", cartID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// DeleteCart godoc
//	@Summary	Delete a cart and its items
//	@Tags		Cart
//	@Param		id	path	string	true	"Cart ID (UUID)"	Format(uuid)
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Cart not found"
//	@Router		/carts/{id} [delete]
func (h *CartHandler) DeleteCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.cartService.DeleteCart(r.Context(), cartID); err != nil {
			logger.Error("Failed to delete cart", slog.String("cartId", cartID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart deleted", slog.String("cartId", cartID.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListItems godoc
//	@Summary	List the items of a cart
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Success	200	{array}		models.CartItem
//	@Failure	404	{object}	response.ErrorResponse	"Cart not found"
//	@Router		/carts/{id}/items [get]
func (h *CartHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		items, err := h.cartService.ListItems(r.Context(), cartID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// AddItem godoc
//	@Summary		Add a product to a cart
//	@Description	Adding a product already in the cart increases that line's quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Cart ID (UUID)"	Format(uuid)
//	@Param			item	body		models.AddCartItemRequest	true	"Product and quantity"
//	@Success		201		{object}	models.CartItem
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input or quantity"
//	@Failure		404		{object}	response.ErrorResponse	"Cart or product not found"
//	@Router			/carts/{id}/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("cartId", cartID.String()))

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		item, err := h.cartService.AddItem(r.Context(), cartID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, item)
	}
}

// GetItem godoc
//	@Summary	Get a cart item
//	@Tags		Cart
//	@Produce	json
//	@Param		id		path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		itemID	path		string	true	"Item ID (UUID)"	Format(uuid)
//	@Success	200		{object}	models.CartItem
//	@Failure	404		{object}	response.ErrorResponse	"Cart item not found"
//	@Router		/carts/{id}/items/{itemID} [get]
func (h *CartHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, itemID, ok := parseCartItemIDs(w, r)
		if !ok {
			return
		}

		item, err := h.cartService.GetItem(r.Context(), cartID, itemID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// UpdateItem godoc
//	@Summary		Change the quantity of a cart item
//	@Description	Replaces the quantity. Use DELETE to remove the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Cart ID (UUID)"	Format(uuid)
//	@Param			itemID	path		string							true	"Item ID (UUID)"	Format(uuid)
//	@Param			item	body		models.UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	models.CartItem
//	@Failure		400		{object}	response.ErrorResponse	"Invalid quantity"
//	@Failure		404		{object}	response.ErrorResponse	"Cart item not found"
//	@Router			/carts/{id}/items/{itemID} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cartID, itemID, ok := parseCartItemIDs(w, r)
		if !ok {
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.UpdateItemQuantity(r.Context(), cartID, itemID, &req)
		if err != nil {
			logger.Error("Failed to update cart item", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// RemoveItem godoc
//	@Summary	Remove an item from a cart
//	@Tags		Cart
//	@Param		id		path	string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		itemID	path	string	true	"Item ID (UUID)"	Format(uuid)
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Cart item not found"
//	@Router		/carts/{id}/items/{itemID} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, itemID, ok := parseCartItemIDs(w, r)
		if !ok {
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), cartID, itemID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseCartItemIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	cartID, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)
		return uuid.Nil, uuid.Nil, false
	}

	itemID, err := utils.ParseID(r, "itemID")
	if err != nil {
		response.Error(w, err)
		return uuid.Nil, uuid.Nil, false
	}

	return cartID, itemID, true
}
