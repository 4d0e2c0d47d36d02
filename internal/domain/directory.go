package domain

// Address — адрес доставки из справочника пользователя (только чтение).
type Address struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	IsDefault  bool   `json:"is_default"`
}

// Card — сохранённая карта пользователя (только чтение; PAN не хранится).
type Card struct {
	ID         string `json:"id"`
	Brand      string `json:"brand"`
	LastDigits string `json:"last_digits"`
	HolderName string `json:"holder_name"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
}
