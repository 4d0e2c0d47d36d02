package rest

import (
	"errors"
	"net/http"

	"github.com/dkravtsov/shopfront/internal/api"
	"github.com/dkravtsov/shopfront/internal/cart"
	"github.com/dkravtsov/shopfront/internal/checkout"
	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	AddressID     string `json:"address_id"`
	PaymentMethod string `json:"payment_method"`
	CardID        string `json:"card_id"`
}

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

type sessionResponse struct {
	OrderID string           `json:"order_id"`
	State   checkout.State   `json:"state"`
	Outcome checkout.Outcome `json:"outcome,omitempty"`
}

func (h *Handler) cartSnapshot() cartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: h.cart.TotalItemCount(),
		TotalPrice: h.cart.TotalPrice(),
	}
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	candidate := domain.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		ImageURL:  req.ImageURL,
		Stock:     req.Stock,
	}
	if err := h.cart.AddItem(c.Request.Context(), candidate, req.Quantity); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *Handler) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *Handler) removeCartItem(c *gin.Context) {
	h.cart.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *Handler) clearCart(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *Handler) submitCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sel := checkout.Selection{
		AddressID:     req.AddressID,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		CardID:        req.CardID,
	}
	order, err := h.orch.Submit(c.Request.Context(), sel)
	if err != nil {
		h.renderError(c, err)
		return
	}

	next := "confirmation"
	if order.PaymentMethod == domain.PaymentPix {
		h.sessions.Watch(order.ID)
		next = "pix"
	}
	c.JSON(http.StatusCreated, gin.H{"order": order, "next": next})
}

func (h *Handler) getCheckoutSession(c *gin.Context) {
	orderID := c.Param("orderID")
	s, ok := h.sessions.Get(orderID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
		return
	}

	// Повторное открытие страницы оплаты после таймаута или отмены
	// перезапускает наблюдение за заказом.
	if s.State() == checkout.StateAwaitingManualCheck || s.Outcome() == checkout.OutcomeCanceled {
		s = h.sessions.Watch(orderID)
	}

	c.JSON(http.StatusOK, sessionResponse{
		OrderID: s.OrderID,
		State:   s.State(),
		Outcome: s.Outcome(),
	})
}

func (h *Handler) cancelCheckoutSession(c *gin.Context) {
	h.sessions.Cancel(c.Param("orderID"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listAddresses(c *gin.Context) {
	addrs, err := h.addresses.ListAddresses(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if addrs == nil {
		addrs = []domain.Address{}
	}
	c.JSON(http.StatusOK, addrs)
}

func (h *Handler) getDefaultAddress(c *gin.Context) {
	addr, err := h.addresses.GetDefaultAddress(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if addr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "default address is not set"})
		return
	}
	c.JSON(http.StatusOK, addr)
}

func (h *Handler) listCards(c *gin.Context) {
	cards, err := h.cards.ListCards(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	c.JSON(http.StatusOK, cards)
}

// renderError — перевод ошибки в HTTP-ответ: статус и текст бэкенда
// пробрасываются как есть (включая 401), локальные отказы валидации
// отдаются как 422, остальное — 502.
func (h *Handler) renderError(c *gin.Context, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.StatusCode)
		}
		c.JSON(apiErr.StatusCode, gin.H{"error": msg})
		return
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrNoAddress),
		errors.Is(err, checkout.ErrNoCard),
		errors.Is(err, checkout.ErrBadPaymentMethod),
		errors.Is(err, cart.ErrQuantityExceedsStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "request failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
	}
}
