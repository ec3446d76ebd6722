package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/labora-api/pkg/brdoc"
)

// AddressRequest dirección postal del formulario de cliente.
type AddressRequest struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required,uf"`
	ZipCode      string `json:"zip_code" validate:"required,cep"`
}

// ClientRequest alta y edición (reemplazo completo) de un cliente.
// Exactamente uno de CPF/CNPJ debe venir informado.
type ClientRequest struct {
	FullName   string         `json:"full_name" validate:"required,max=100,person_name"`
	Email      string         `json:"email" validate:"required,email"`
	CPF        string         `json:"cpf" validate:"omitempty,cpf"`
	CNPJ       string         `json:"cnpj" validate:"omitempty,cnpj"`
	Phone      string         `json:"phone" validate:"required,br_phone"`
	IsWhatsApp bool           `json:"is_whatsapp"`
	Address    AddressRequest `json:"address"`
}

// Normalize recorta espacios y aplica las máscaras de CPF, CNPJ, teléfono y CEP.
func (r *ClientRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if strings.TrimSpace(r.CPF) != "" {
		r.CPF = brdoc.FormatCPF(r.CPF)
	} else {
		r.CPF = ""
	}
	if strings.TrimSpace(r.CNPJ) != "" {
		r.CNPJ = brdoc.FormatCNPJ(r.CNPJ)
	} else {
		r.CNPJ = ""
	}
	r.Phone = brdoc.FormatPhone(r.Phone)

	a := &r.Address
	a.Street = strings.TrimSpace(a.Street)
	a.Number = strings.TrimSpace(a.Number)
	a.Complement = strings.TrimSpace(a.Complement)
	a.Neighborhood = strings.TrimSpace(a.Neighborhood)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
	a.ZipCode = brdoc.FormatPostalCode(a.ZipCode)
}

// AddressResponse dirección en la salida de cliente.
type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID         string          `json:"id"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	CPF        string          `json:"cpf,omitempty"`
	CNPJ       string          `json:"cnpj,omitempty"`
	Phone      string          `json:"phone"`
	IsWhatsApp bool            `json:"is_whatsapp"`
	Address    AddressResponse `json:"address"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
