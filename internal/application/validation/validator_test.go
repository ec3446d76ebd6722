package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func validClient() *dto.ClientRequest {
	return &dto.ClientRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		CPF:      "529.982.247-25",
		Phone:    "(61) 99815-9297",
		Address: dto.AddressRequest{
			Street:       "Rua das Flores",
			Number:       "10",
			Neighborhood: "Asa Sul",
			City:         "Brasília",
			State:        "DF",
			ZipCode:      "70000-000",
		},
	}
}

func validQuote() *dto.CreateQuoteRequest {
	return &dto.CreateQuoteRequest{
		ClientName:         "Maria Silva",
		ClientDocument:     "529.982.247-25",
		ServiceDescription: "Site institucional",
		Value:              decimal.RequireFromString("1500"),
		PaymentMethod:      "PIX",
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, se obtuvo %v", err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_Valido(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Client(validClient()))

	c := validClient()
	c.CPF = ""
	c.CNPJ = "11.222.333/0001-81"
	assert.NoError(t, v.Client(c), "persona jurídica con CNPJ")
}

func TestClient_CPFyCNPJ_SoloUno(t *testing.T) {
	v := validation.New()

	both := validClient()
	both.CNPJ = "11.222.333/0001-81"
	assert.Equal(t, "Preencha CPF ou CNPJ (não ambos)", fieldMessages(t, v.Client(both))["cpf"])

	none := validClient()
	none.CPF = ""
	assert.Equal(t, "Preencha CPF ou CNPJ (não ambos)", fieldMessages(t, v.Client(none))["cpf"])
}

func TestClient_DocumentosInvalidos(t *testing.T) {
	v := validation.New()

	c := validClient()
	c.CPF = "111.111.111-11"
	assert.Equal(t, "CPF inválido", fieldMessages(t, v.Client(c))["cpf"])

	c = validClient()
	c.CPF = "52998224725" // sin máscara
	assert.Equal(t, "CPF inválido", fieldMessages(t, v.Client(c))["cpf"])

	c = validClient()
	c.CPF = ""
	c.CNPJ = "11.222.333/0001-82"
	assert.Equal(t, "CNPJ inválido", fieldMessages(t, v.Client(c))["cnpj"])
}

func TestClient_CamposObligatorios(t *testing.T) {
	v := validation.New()
	c := validClient()
	c.FullName = ""
	c.Address = dto.AddressRequest{}

	msgs := fieldMessages(t, v.Client(c))
	assert.Equal(t, "Nome completo é obrigatório", msgs["full_name"])
	assert.Equal(t, "Rua é obrigatória", msgs["address.street"])
	assert.Equal(t, "Número é obrigatório", msgs["address.number"])
	assert.Equal(t, "Bairro é obrigatório", msgs["address.neighborhood"])
	assert.Equal(t, "Cidade é obrigatória", msgs["address.city"])
	assert.Equal(t, "Estado é obrigatório", msgs["address.state"])
	assert.Equal(t, "CEP é obrigatório", msgs["address.zip_code"])
	assert.NotContains(t, msgs, "address.complement", "complemento es opcional")
}

func TestClient_FormatosInvalidos(t *testing.T) {
	v := validation.New()
	c := validClient()
	c.FullName = "Maria 2"
	c.Email = "maria@"
	c.Phone = "(61) 3333-4444"
	c.Address.State = "XX"
	c.Address.ZipCode = "70000000"

	msgs := fieldMessages(t, v.Client(c))
	assert.Equal(t, "Nome deve conter apenas letras", msgs["full_name"])
	assert.Equal(t, "E-mail inválido", msgs["email"])
	assert.Equal(t, "Telefone inválido", msgs["phone"])
	assert.Equal(t, "Estado inválido", msgs["address.state"])
	assert.Equal(t, "CEP inválido", msgs["address.zip_code"])
}

func TestClient_NombreConAcentos(t *testing.T) {
	v := validation.New()
	c := validClient()
	c.FullName = "João Conceição"
	assert.NoError(t, v.Client(c))
}

func TestClientRequest_Normalize(t *testing.T) {
	v := validation.New()
	c := validClient()
	c.CPF = "52998224725"
	c.Phone = "61998159297"
	c.Address.ZipCode = "70000000"
	c.Address.State = "df"
	c.Normalize()

	assert.Equal(t, "529.982.247-25", c.CPF)
	assert.Equal(t, "(61) 99815-9297", c.Phone)
	assert.Equal(t, "70000-000", c.Address.ZipCode)
	assert.Equal(t, "DF", c.Address.State)
	assert.NoError(t, v.Client(c), "entrada sin máscara es válida tras normalizar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orçamento
// ──────────────────────────────────────────────────────────────────────────────

func TestQuote_Valido(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Quote(validQuote()))

	q := validQuote()
	q.ClientDocument = "11.222.333/0001-81"
	assert.NoError(t, v.Quote(q), "CNPJ también es documento válido")
}

func TestQuote_Errores(t *testing.T) {
	v := validation.New()
	q := validQuote()
	q.ClientDocument = "123"
	q.ServiceDescription = ""
	q.Value = decimal.Zero
	q.PaymentMethod = ""

	msgs := fieldMessages(t, v.Quote(q))
	assert.Equal(t, "CPF ou CNPJ inválido", msgs["client_document"])
	assert.Equal(t, "Descrição do serviço é obrigatória", msgs["service_description"])
	assert.Equal(t, "Valor deve ser maior que zero", msgs["value"])
	assert.Equal(t, "Forma de pagamento é obrigatória", msgs["payment_method"])
}

func TestQuote_ValorNegativo(t *testing.T) {
	v := validation.New()
	q := validQuote()
	q.Value = decimal.RequireFromString("-10")
	assert.Equal(t, "Valor deve ser maior que zero", fieldMessages(t, v.Quote(q))["value"])
}

func TestQuote_LongitudesMaximas(t *testing.T) {
	v := validation.New()
	q := validQuote()
	q.ServiceDescription = strings.Repeat("a", 1001)
	q.Observations = strings.Repeat("b", 501)

	msgs := fieldMessages(t, v.Quote(q))
	assert.Equal(t, "Descrição muito longa", msgs["service_description"])
	assert.Equal(t, "Observações muito longas", msgs["observations"])
}


// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUp_SenhasNoCoinciden(t *testing.T) {
	v := validation.New()
	err := v.SignUp(&dto.SignUpRequest{Email: "a@b.com", Password: "123456", ConfirmPassword: "654321"})
	assert.Equal(t, "As senhas não coincidem", fieldMessages(t, err)["confirm_password"])
}

func TestSignIn_SenhaCorta(t *testing.T) {
	v := validation.New()
	err := v.SignIn(&dto.SignInRequest{Email: "a@b.com", Password: "123"})
	assert.Equal(t, "A senha deve ter no mínimo 6 caracteres", fieldMessages(t, err)["password"])
}

func TestSenha_LimiteDeBcrypt(t *testing.T) {
	v := validation.New()
	const msg = "A senha deve ter no máximo 72 caracteres"

	err := v.SignIn(&dto.SignInRequest{Email: "a@b.com", Password: strings.Repeat("a", 73)})
	assert.Equal(t, msg, fieldMessages(t, err)["password"])

	long := strings.Repeat("a", 73)
	err = v.SignUp(&dto.SignUpRequest{Email: "a@b.com", Password: long, ConfirmPassword: long})
	assert.Equal(t, msg, fieldMessages(t, err)["password"])

	// 40 runas, 80 bytes.
	accented := strings.Repeat("ç", 40)
	err = v.SignUp(&dto.SignUpRequest{Email: "a@b.com", Password: accented, ConfirmPassword: accented})
	assert.Equal(t, msg, fieldMessages(t, err)["password"])

	assert.NoError(t, v.SignIn(&dto.SignInRequest{Email: "a@b.com", Password: strings.Repeat("a", 72)}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Máscaras para el front
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckDocument(t *testing.T) {
	v := validation.New()
	cases := []struct {
		kind, value, want string
		valid             bool
	}{
		{"cpf", "52998224725", "529.982.247-25", true},
		{"cpf", "11111111111", "111.111.111-11", false},
		{"cnpj", "11222333000181", "11.222.333/0001-81", true},
		{"taxid", "11.222.333/0001-81", "11.222.333/0001-81", true},
		{"taxid", "5299822", "529.982.2", false},
		{"phone", "61998159297", "(61) 99815-9297", true},
		{"phone", "6133334444", "(61) 3333-4444", false},
		{"cep", "70000000", "70000-000", true},
		{"cep", "7000", "7000", false},
	}
	for _, c := range cases {
		out, err := v.CheckDocument(dto.DocumentCheckRequest{Kind: c.kind, Value: c.value})
		require.NoError(t, err)
		assert.Equal(t, c.want, out.Formatted, "%s(%q)", c.kind, c.value)
		assert.Equal(t, c.valid, out.Valid, "%s(%q)", c.kind, c.value)
	}
}

func TestCheckDocument_TipoDesconocido(t *testing.T) {
	_, err := validation.New().CheckDocument(dto.DocumentCheckRequest{Kind: "rg", Value: "123"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "kind", ve.Fields[0].Field)
	assert.Equal(t, "Tipo de documento inválido", ve.Fields[0].Message)
}
