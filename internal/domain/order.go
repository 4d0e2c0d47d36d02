package domain

import "time"

// PaymentMethod — способ оплаты заказа.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "credit_card"
)

// Valid — известен ли способ оплаты.
func (m PaymentMethod) Valid() bool {
	return m == PaymentPix || m == PaymentCard
}

// OrderStatus — статус заказа на стороне платёжного бэкенда.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusPaid       OrderStatus = "paid"
	StatusFailed     OrderStatus = "failed"
	StatusCanceled   OrderStatus = "canceled"
)

// Terminal — статус, после которого переходов не ожидается.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusPaid, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// DraftItem — позиция черновика заказа; цена — в минорных единицах,
// как того требует протокол бэкенда.
type DraftItem struct {
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	PriceMinorUnits int64  `json:"price"`
}

// OrderDraft — черновик заказа. Собирается непосредственно перед отправкой
// из корзины и выбора пользователя; никогда не сохраняется.
type OrderDraft struct {
	Items         []DraftItem   `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CardID        string        `json:"card_id,omitempty"`
	AddressID     string        `json:"address_id"`
}

// OrderItem — позиция уже созданного заказа (как её вернул бэкенд).
type OrderItem struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name,omitempty"`
	Quantity        int    `json:"quantity"`
	PriceMinorUnits int64  `json:"price"`
}

// Order — заказ, которым владеет внешний бэкенд. Ядро только читает его:
// создание через CreateOrder, опрос статуса через GetOrder.
// QRCode/QRCodeURL заполняются бэкендом только для оплат через PIX.
type Order struct {
	ID            string        `json:"id"`
	Status        OrderStatus   `json:"status"`
	Amount        int64         `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []OrderItem   `json:"items,omitempty"`
	QRCode        string        `json:"qr_code,omitempty"`
	QRCodeURL     string        `json:"qr_code_url,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
