package checkout

import (
	"context"
	"sync"

	"github.com/dkravtsov/shopfront/internal/ports"
)

// Session — серверное состояние PIX-оформления одного заказа.
// UI опрашивает сессию, а не платёжный бэкенд напрямую.
type Session struct {
	OrderID string

	mu      sync.Mutex
	state   State
	outcome Outcome
	cancel  context.CancelFunc
}

// State — текущая фаза сессии.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Outcome — итог наблюдения; пустой, пока наблюдение активно.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *Session) finish(outcome Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcome = outcome
	switch outcome {
	case OutcomeConfirmed:
		s.state = StateOrderConfirmed
	case OutcomeFailed:
		s.state = StatePaymentFailed
	case OutcomeTimeout:
		s.state = StateAwaitingManualCheck
	case OutcomeCanceled:
		// Состояние не меняется: уход со страницы не факт об оплате.
		// Сессия при этом мертва (итог зафиксирован) и подлежит перезапуску.
	}
}

// active — наблюдатель ещё работает: итог не зафиксирован.
func (s *Session) active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAwaitingPix && s.outcome == ""
}

// Registry — реестр PIX-сессий по идентификатору заказа.
// Наблюдатели живут в горутинах с контекстом приложения: завершение
// процесса снимает их все; отдельную сессию можно снять через Cancel.
type Registry struct {
	base    context.Context
	watcher *PixWatcher
	log     ports.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry — конструктор. base — контекст времени жизни приложения.
func NewRegistry(base context.Context, watcher *PixWatcher, log ports.Logger) *Registry {
	return &Registry{
		base:     base,
		watcher:  watcher,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Watch — начать (или перезапустить после таймаута/отмены) наблюдение за
// заказом. Идемпотентно: активная сессия не дублируется — повторный вызов
// вернёт её же; завершённая заменяется новой.
func (r *Registry) Watch(orderID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[orderID]; ok && s.active() {
		return s
	}

	// Попутная уборка: сессии с окончательным итогом (оплата подтверждена
	// или не состоялась) больше никому не нужны и не копятся в реестре.
	for id, s := range r.sessions {
		if id == orderID {
			continue
		}
		switch s.Outcome() {
		case OutcomeConfirmed, OutcomeFailed:
			delete(r.sessions, id)
		}
	}

	ctx, cancel := context.WithCancel(r.base)
	s := &Session{
		OrderID: orderID,
		state:   StateAwaitingPix,
		cancel:  cancel,
	}
	r.sessions[orderID] = s

	go func() {
		defer cancel()
		s.finish(r.watcher.Watch(ctx, orderID))
	}()

	return s
}

// Get — сессия по заказу, если она есть.
func (r *Registry) Get(orderID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[orderID]
	return s, ok
}

// Cancel — снять наблюдение (аналог ухода со страницы оплаты).
// Сессия остаётся в реестре: её состояние можно перечитать и перезапустить.
func (r *Registry) Cancel(orderID string) {
	r.mu.Lock()
	s, ok := r.sessions[orderID]
	r.mu.Unlock()
	if ok {
		s.cancel()
	}
}
