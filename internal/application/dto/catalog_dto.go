package dto

import "github.com/shopspring/decimal"

// CategoryResponse categoría del catálogo.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceResponse servicio del catálogo. BasePrice es nil si no tiene precio fijo.
type ServiceResponse struct {
	ID          string           `json:"id"`
	CategoryID  string           `json:"category_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
}
