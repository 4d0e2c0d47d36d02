package checkout

import (
	"context"
	"time"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/internal/ports"
	"github.com/dkravtsov/shopfront/pkg/metrics"
)

// Outcome — итог наблюдения за PIX-оплатой.
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed" // статус paid, подтверждение показано
	OutcomeFailed    Outcome = "failed"    // терминальный неуспех (failed/canceled)
	OutcomeTimeout   Outcome = "timeout"   // MaxWait исчерпан, нужна ручная проверка
	OutcomeCanceled  Outcome = "canceled"  // контекст отменён (уход со страницы/остановка)
)

// WatcherConfig — параметры цикла опроса.
type WatcherConfig struct {
	Interval     time.Duration // период опроса статуса
	ConfirmDelay time.Duration // пауза после paid, чтобы пользователь увидел подтверждение
	MaxWait      time.Duration // предел ожидания до ручной проверки
}

func (c WatcherConfig) withDefaults() WatcherConfig {
	if c.Interval <= 0 {
		c.Interval = 3 * time.Second
	}
	if c.ConfirmDelay < 0 {
		c.ConfirmDelay = 0
	}
	if c.MaxWait <= 0 {
		c.MaxWait = 15 * time.Minute
	}
	return c
}

// PixWatcher — наблюдатель за заказом до терминального статуса оплаты.
// Опрос — best-effort liveness-проверка, а не строгий RPC: произвольное
// число временных ошибок GetOrder не выводит наблюдателя из строя и не
// показывается пользователю по отдельности.
type PixWatcher struct {
	orders ports.OrderAPI
	notify ports.Notifier
	log    ports.Logger
	cfg    WatcherConfig
}

// NewPixWatcher — конструктор; нулевые поля конфига получают значения по умолчанию.
func NewPixWatcher(orders ports.OrderAPI, notify ports.Notifier, log ports.Logger, cfg WatcherConfig) *PixWatcher {
	return &PixWatcher{
		orders: orders,
		notify: notify,
		log:    log,
		cfg:    cfg.withDefaults(),
	}
}

// Watch — блокирующий цикл: первый опрос сразу, далее по тикеру.
// Возврат из цикла — единственный способ завершить наблюдение, поэтому
// переход «оплата подтверждена» срабатывает не более одного раза, даже если
// бэкенд продолжает отвечать paid. Тикер всегда останавливается при выходе.
func (w *PixWatcher) Watch(ctx context.Context, orderID string) Outcome {
	deadline := time.Now().Add(w.cfg.MaxWait)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.log.Infof(ctx, "pix watch started order_id=%s interval=%s max_wait=%s", orderID, w.cfg.Interval, w.cfg.MaxWait)

	for {
		if outcome, done := w.poll(ctx, orderID); done {
			metrics.PixWatches.WithLabelValues(string(outcome)).Inc()
			return outcome
		}

		if time.Now().After(deadline) {
			metrics.PixWatches.WithLabelValues(string(OutcomeTimeout)).Inc()
			w.log.Warnf(ctx, "pix watch timed out order_id=%s", orderID)
			return OutcomeTimeout
		}

		select {
		case <-ctx.Done():
			metrics.PixWatches.WithLabelValues(string(OutcomeCanceled)).Inc()
			w.log.Infof(ctx, "pix watch canceled order_id=%s", orderID)
			return OutcomeCanceled
		case <-ticker.C:
		}
	}
}

// poll — один опрос статуса; (outcome, true) при терминальном результате.
func (w *PixWatcher) poll(ctx context.Context, orderID string) (Outcome, bool) {
	order, err := w.orders.GetOrder(ctx, orderID)
	if err != nil {
		// Временные сбои опроса глотаются: следующая попытка по тикеру.
		metrics.PixPolls.WithLabelValues("error").Inc()
		w.log.Warnf(ctx, "pix poll failed order_id=%s: %v", orderID, err)
		return "", false
	}

	switch order.Status {
	case domain.StatusPaid:
		metrics.PixPolls.WithLabelValues("paid").Inc()
		w.notify.Success(ctx, "payment confirmed")
		w.confirmPause(ctx)
		return OutcomeConfirmed, true
	case domain.StatusFailed, domain.StatusCanceled:
		metrics.PixPolls.WithLabelValues("terminal").Inc()
		w.notify.Error(ctx, "payment was not completed")
		return OutcomeFailed, true
	default:
		metrics.PixPolls.WithLabelValues("pending").Inc()
		return "", false
	}
}

// confirmPause — короткая пауза перед переходом к подтверждению,
// чтобы уведомление успело отобразиться; отмена контекста её прерывает.
func (w *PixWatcher) confirmPause(ctx context.Context) {
	if w.cfg.ConfirmDelay <= 0 {
		return
	}
	t := time.NewTimer(w.cfg.ConfirmDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
