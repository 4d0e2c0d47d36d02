package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/internal/ports"
	"github.com/dkravtsov/shopfront/pkg/ctxmeta"
)

// Проверки соответствия портам приложения.
var (
	_ ports.OrderAPI         = (*Client)(nil)
	_ ports.AddressDirectory = (*Client)(nil)
	_ ports.CardDirectory    = (*Client)(nil)
)

// Client — типизированный клиент сервиса заказов/платежей и справочников.
// Ответы разбираются в доменные структуры на границе: внутрь ядра
// «бесформенный» JSON не проходит. Bearer-токен пользователя пробрасывается
// из контекста запроса (ctxmeta), клиент сам сессиями не управляет.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

// NewClient — конструктор. timeout <= 0 означает 10s.
func NewClient(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// CreateOrder — POST /orders.
func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", draft, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.New("backend returned order without id")
	}
	return &order, nil
}

// GetOrder — GET /orders/{id}.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.New("backend returned order without id")
	}
	return &order, nil
}

// ListOrders — GET /orders.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAddresses — GET /addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var addrs []domain.Address
	if err := c.do(ctx, http.MethodGet, "/addresses", nil, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// GetDefaultAddress — GET /addresses/default; 404 трактуется как «не задан».
func (c *Client) GetDefaultAddress(ctx context.Context) (*domain.Address, error) {
	var addr domain.Address
	err := c.do(ctx, http.MethodGet, "/addresses/default", nil, &addr)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &addr, nil
}

// ListCards — GET /cards.
func (c *Client) ListCards(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	if err := c.do(ctx, http.MethodGet, "/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// do — общий вызов: JSON-тело, Bearer из контекста, разбор ответа.
// Не-2xx превращается в *Error с сообщением бэкенда, если оно есть.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := ctxmeta.AuthTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// asError — извлекает {"message": ...} из тела ошибки; тело ограничено,
// чтобы не читать произвольно большой ответ.
func (c *Client) asError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
