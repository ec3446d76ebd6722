package validation

// messages mensajes por campo y tag. Clave "campo|tag"; "campo|*" aplica a cualquier tag.
var messages = map[string]string{
	// cliente
	"full_name|required":    "Nome completo é obrigatório",
	"full_name|max":         "Nome muito longo",
	"full_name|person_name": "Nome deve conter apenas letras",
	"email|*":               "E-mail inválido",
	"cpf|cpf":               "CPF inválido",
	"cpf|cpf_xor_cnpj":      "Preencha CPF ou CNPJ (não ambos)",
	"cnpj|cnpj":             "CNPJ inválido",
	"phone|*":               "Telefone inválido",

	"address.street|required":       "Rua é obrigatória",
	"address.number|required":       "Número é obrigatório",
	"address.complement|max":        "Complemento muito longo",
	"address.neighborhood|required": "Bairro é obrigatório",
	"address.city|required":         "Cidade é obrigatória",
	"address.state|required":        "Estado é obrigatório",
	"address.state|uf":              "Estado inválido",
	"address.zip_code|required":     "CEP é obrigatório",
	"address.zip_code|cep":          "CEP inválido",

	// orçamento
	"client_id|*":                  "Cliente inválido",
	"service_id|*":                 "Serviço inválido",
	"client_name|required":         "Nome do cliente é obrigatório",
	"client_name|max":              "Nome muito longo",
	"client_name|person_name":      "Nome deve conter apenas letras",
	"client_document|required":     "CPF ou CNPJ é obrigatório",
	"client_document|taxid":        "CPF ou CNPJ inválido",
	"service_description|required": "Descrição do serviço é obrigatória",
	"service_description|max":      "Descrição muito longa",
	"observations|max":             "Observações muito longas",
	"value|lte":                    "Valor acima do limite permitido",
	"value|*":                      "Valor deve ser maior que zero",
	"payment_method|required":      "Forma de pagamento é obrigatória",

	// auth
	"password|required":         "A senha deve ter no mínimo 6 caracteres",
	"password|min":              "A senha deve ter no mínimo 6 caracteres",
	"password|max":              "A senha deve ter no máximo 72 caracteres",
	"password|bcrypt_len":       "A senha deve ter no máximo 72 caracteres",
	"confirm_password|required": "As senhas não coincidem",
	"confirm_password|eqfield":  "As senhas não coincidem",

	// documentos
	"kind|*": "Tipo de documento inválido",
}

func message(field, tag, param string) string {
	if m, ok := messages[field+"|"+tag]; ok {
		return m
	}
	if m, ok := messages[field+"|*"]; ok {
		return m
	}
	switch tag {
	case "required":
		return "Campo obrigatório"
	case "max":
		return "Máximo de " + param + " caracteres"
	case "min":
		return "Mínimo de " + param + " caracteres"
	}
	return "Campo inválido"
}
