package entity

import "time"

// Address dirección postal del cliente (se persiste como JSONB).
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`    // sigla UF, ej. "DF"
	ZipCode      string `json:"zip_code"` // CEP 00000-000
}

// Client representa un cliente (persona física con CPF o jurídica con CNPJ).
// Exactamente uno de CPF/CNPJ tiene valor. No se elimina nunca.
type Client struct {
	ID         string    `db:"id"`
	FullName   string    `db:"full_name"`
	Email      string    `db:"email"`
	CPF        string    `db:"cpf"`  // 000.000.000-00, vacío si es CNPJ
	CNPJ       string    `db:"cnpj"` // 00.000.000/0000-00, vacío si es CPF
	Phone      string    `db:"phone"`
	IsWhatsApp bool      `db:"is_whatsapp"`
	Address    Address   `db:"address"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// TaxID devuelve el documento presente (CPF o CNPJ).
func (c *Client) TaxID() string {
	if c.CPF != "" {
		return c.CPF
	}
	return c.CNPJ
}
