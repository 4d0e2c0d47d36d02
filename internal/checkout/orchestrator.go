package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/dkravtsov/shopfront/internal/api"
	"github.com/dkravtsov/shopfront/internal/cart"
	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/internal/ports"
	"github.com/dkravtsov/shopfront/pkg/metrics"
)

// State — клиентская фаза жизненного цикла оформления заказа.
type State string

const (
	StateIdle                State = "idle"
	StateValidating          State = "validating"
	StateSubmitting          State = "submitting"
	StateFailed              State = "failed"
	StateAwaitingPix         State = "awaiting_pix_payment"
	StateAwaitingManualCheck State = "awaiting_manual_check"
	StatePaymentFailed       State = "payment_failed"
	StateOrderConfirmed      State = "order_confirmed"
)

// Ошибки валидации предусловий: локальные, до любого сетевого вызова.
var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoAddress       = errors.New("select a delivery address")
	ErrNoCard          = errors.New("select a card")
	ErrBadPaymentMethod = errors.New("unknown payment method")
)

// Selection — выбор пользователя на шаге оформления.
type Selection struct {
	AddressID     string
	PaymentMethod domain.PaymentMethod
	CardID        string
}

// Orchestrator — оркестратор оформления: проверяет предусловия, отправляет
// заказ и выбирает пост-оплатный маршрут (PIX-ожидание или подтверждение).
// Сам ничего не ретраит: неудачная отправка возвращает управление
// пользователю, содержимое корзины при этом не теряется.
type Orchestrator struct {
	cart   *cart.Store
	orders ports.OrderAPI
	notify ports.Notifier
	log    ports.Logger

	mu    sync.Mutex
	state State
}

// NewOrchestrator — DI-конструктор.
func NewOrchestrator(cartStore *cart.Store, orders ports.OrderAPI, notify ports.Notifier, log ports.Logger) *Orchestrator {
	return &Orchestrator{
		cart:   cartStore,
		orders: orders,
		notify: notify,
		log:    log,
		state:  StateIdle,
	}
}

// State — текущая фаза оформления.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Submit — провести оформление: Validating -> Submitting -> {Failed | ветка по способу оплаты}.
// При успехе корзина очищается; дальнейшее (PIX-наблюдение) — забота вызывающего.
func (o *Orchestrator) Submit(ctx context.Context, sel Selection) (*domain.Order, error) {
	o.setState(StateValidating)

	items := o.cart.Items()
	if err := o.validate(items, sel); err != nil {
		// Отказ валидации локален: состояние возвращается в Idle,
		// сетевой вызов не выполняется.
		o.setState(StateIdle)
		metrics.CheckoutSubmissions.WithLabelValues("rejected").Inc()
		o.notify.Error(ctx, err.Error())
		return nil, err
	}

	draft := buildDraft(items, sel)

	o.setState(StateSubmitting)
	order, err := o.orders.CreateOrder(ctx, draft)
	if err != nil {
		o.setState(StateFailed)
		metrics.CheckoutSubmissions.WithLabelValues("failed").Inc()
		o.log.Errorf(ctx, "create order failed: %v", err)
		o.notify.Error(ctx, submissionMessage(err))
		return nil, err
	}

	// Заказ принят бэкендом: корзина очищается до ветвления по оплате.
	o.cart.Clear(ctx)
	metrics.CheckoutSubmissions.WithLabelValues("accepted").Inc()
	o.notify.Success(ctx, "order created")
	o.log.Infof(ctx, "order created id=%s method=%s amount=%d", order.ID, order.PaymentMethod, order.Amount)

	if order.PaymentMethod == domain.PaymentPix {
		o.setState(StateAwaitingPix)
	} else {
		// Списание с карты синхронно с точки зрения этого потока.
		o.setState(StateOrderConfirmed)
	}
	return order, nil
}

// validate — предусловия отправки; порядок проверок совпадает с UI:
// пустая корзина, адрес, способ оплаты, карта.
func (o *Orchestrator) validate(items []domain.CartItem, sel Selection) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	if sel.AddressID == "" {
		return ErrNoAddress
	}
	if !sel.PaymentMethod.Valid() {
		return ErrBadPaymentMethod
	}
	if sel.PaymentMethod == domain.PaymentCard && sel.CardID == "" {
		return ErrNoCard
	}
	return nil
}

// buildDraft — черновик заказа из снимка корзины и выбора пользователя.
// Цены переводятся в минорные единицы на границе протокола.
func buildDraft(items []domain.CartItem, sel Selection) domain.OrderDraft {
	draft := domain.OrderDraft{
		Items:         make([]domain.DraftItem, 0, len(items)),
		PaymentMethod: sel.PaymentMethod,
		AddressID:     sel.AddressID,
	}
	if sel.PaymentMethod == domain.PaymentCard {
		draft.CardID = sel.CardID
	}
	for _, it := range items {
		draft.Items = append(draft.Items, domain.DraftItem{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceMinorUnits: domain.MinorUnits(it.UnitPrice),
		})
	}
	return draft
}

// submissionMessage — сообщение для пользователя: текст бэкенда, если он
// его прислал, иначе общий ответ.
func submissionMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "failed to create order"
}
