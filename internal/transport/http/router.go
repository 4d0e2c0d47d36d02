package rest

import (
	"time"

	"github.com/dkravtsov/shopfront/internal/cart"
	"github.com/dkravtsov/shopfront/internal/checkout"
	"github.com/dkravtsov/shopfront/internal/ports"
	"github.com/dkravtsov/shopfront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики шлюза витрины.
type Handler struct {
	cart      *cart.Store
	orch      *checkout.Orchestrator
	sessions  *checkout.Registry
	orders    ports.OrderAPI
	addresses ports.AddressDirectory
	cards     ports.CardDirectory
	log       ports.Logger
}

// NewHandler — конструктор.
func NewHandler(
	cartStore *cart.Store,
	orch *checkout.Orchestrator,
	sessions *checkout.Registry,
	orders ports.OrderAPI,
	addresses ports.AddressDirectory,
	cards ports.CardDirectory,
	log ports.Logger,
) *Handler {
	return &Handler{
		cart:      cartStore,
		orch:      orch,
		sessions:  sessions,
		orders:    orders,
		addresses: addresses,
		cards:     cards,
		log:       log,
	}
}

// NewRouter — маршруты шлюза. otelServiceName непустой — включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.AuthTokenMiddleware())
	r.Use(requestLogger(h.log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/cart", h.getCart)
	r.POST("/cart/items", h.addCartItem)
	r.PUT("/cart/items/:id", h.updateCartItem)
	r.DELETE("/cart/items/:id", h.removeCartItem)
	r.DELETE("/cart", h.clearCart)

	r.POST("/checkout", h.submitCheckout)
	r.GET("/checkout/:orderID", h.getCheckoutSession)
	r.DELETE("/checkout/:orderID", h.cancelCheckoutSession)

	r.GET("/orders", h.listOrders)
	r.GET("/orders/:id", h.getOrder)
	r.GET("/addresses", h.listAddresses)
	r.GET("/addresses/default", h.getDefaultAddress)
	r.GET("/cards", h.listCards)

	return r
}

func requestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log.Infof(c.Request.Context(), "request method=%s path=%s status=%d duration=%s", c.Request.Method, c.FullPath(), c.Writer.Status(), duration)
	}
}
