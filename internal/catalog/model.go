package catalog

import "github.com/shopspring/decimal"

// MenuItem is one purchasable entry of the menu. The catalog owns these;
// they are never mutated after load. A zero price means "price not shown".
type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
}
