package entity

import "github.com/shopspring/decimal"

// ServiceCategory agrupa servicios del catálogo (datos de referencia, sólo lectura).
type ServiceCategory struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// Service servicio del catálogo; sus valores por defecto precargan un nuevo orçamento.
type Service struct {
	ID          string              `db:"id"`
	CategoryID  string              `db:"category_id"`
	Name        string              `db:"name"`
	Description string              `db:"description"`
	BasePrice   decimal.NullDecimal `db:"base_price"` // inválido si el precio depende del proyecto
}
