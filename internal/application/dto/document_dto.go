package dto

// DocumentCheckRequest valor a validar/formatear para las máscaras del front.
type DocumentCheckRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=cpf cnpj taxid phone cep"`
	Value string `json:"value"`
}

// DocumentCheckResponse valor con máscara y resultado de la validación.
type DocumentCheckResponse struct {
	Kind      string `json:"kind"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}
