package validation

import (
	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/pkg/brdoc"
)

// CheckDocument aplica la máscara del tipo pedido y valida el resultado.
// Lo usa el front para las máscaras de CPF/CNPJ, telefone e CEP.
func (v *Validator) CheckDocument(in dto.DocumentCheckRequest) (*dto.DocumentCheckResponse, error) {
	if err := v.Struct(&in); err != nil {
		return nil, err
	}
	out := &dto.DocumentCheckResponse{Kind: in.Kind}
	switch in.Kind {
	case "cpf":
		out.Formatted = brdoc.FormatCPF(in.Value)
		out.Valid = cpfPattern.MatchString(out.Formatted) && brdoc.ValidateCPF(out.Formatted)
	case "cnpj":
		out.Formatted = brdoc.FormatCNPJ(in.Value)
		out.Valid = cnpjPattern.MatchString(out.Formatted) && brdoc.ValidateCNPJ(out.Formatted)
	case "taxid":
		out.Formatted = brdoc.FormatTaxID(in.Value)
		out.Valid = brdoc.ValidateTaxID(out.Formatted)
	case "phone":
		out.Formatted = brdoc.FormatPhone(in.Value)
		out.Valid = phonePattern.MatchString(out.Formatted)
	case "cep":
		out.Formatted = brdoc.FormatPostalCode(in.Value)
		out.Valid = cepPattern.MatchString(out.Formatted)
	}
	return out, nil
}
