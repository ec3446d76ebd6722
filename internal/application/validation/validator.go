// Package validation valida los formularios de entrada con go-playground/validator.
//
// Los errores se devuelven como *domain.ValidationError con la ruta JSON del campo
// ("address.zip_code") y el mensaje en portugués que ve el usuario.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/pkg/brdoc"
)

var (
	cpfPattern        = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjPattern       = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	phonePattern      = regexp.MustCompile(`^\(\d{2}\)\s\d{5}-\d{4}$`)
	cepPattern        = regexp.MustCompile(`^\d{5}-\d{3}$`)
	personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]*$`)
)

// Validator envuelve *validator.Validate con las reglas brasileñas registradas.
type Validator struct {
	v *validator.Validate
}

// New registra los tags cpf, cnpj, taxid, br_phone, cep, uf, person_name y bcrypt_len.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// decimal.Decimal se compara como float64 (gt=0, max=...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "cpf", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return cpfPattern.MatchString(s) && brdoc.ValidateCPF(s)
	})
	mustRegister(v, "cnpj", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return cnpjPattern.MatchString(s) && brdoc.ValidateCNPJ(s)
	})
	mustRegister(v, "taxid", func(fl validator.FieldLevel) bool {
		return brdoc.ValidateTaxID(fl.Field().String())
	})
	mustRegister(v, "br_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "uf", func(fl validator.FieldLevel) bool {
		return brdoc.ValidState(fl.Field().String())
	})
	mustRegister(v, "person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})

	// bcrypt sólo usa los primeros 72 bytes; max=72 cuenta runas.
	mustRegister(v, "bcrypt_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= 72
	})

	v.RegisterStructValidation(clientTaxIDRule, dto.ClientRequest{})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: registrar " + tag + ": " + err.Error())
	}
}

// clientTaxIDRule exige exactamente uno de CPF/CNPJ.
func clientTaxIDRule(sl validator.StructLevel) {
	c := sl.Current().Interface().(dto.ClientRequest)
	hasCPF := strings.TrimSpace(c.CPF) != ""
	hasCNPJ := strings.TrimSpace(c.CNPJ) != ""
	if hasCPF == hasCNPJ {
		sl.ReportError(c.CPF, "cpf", "CPF", "cpf_xor_cnpj", "")
	}
}

// ── Formularios ─────────────────────────────────────────────────────────────

// Client valida el formulario de cliente. Llamar después de in.Normalize().
func (v *Validator) Client(in *dto.ClientRequest) error {
	return v.Struct(in)
}

// Quote valida el formulario de orçamento. Llamar después de in.Normalize().
func (v *Validator) Quote(in *dto.CreateQuoteRequest) error {
	return v.Struct(in)
}

// SignIn valida las credenciales del login.
func (v *Validator) SignIn(in *dto.SignInRequest) error {
	return v.Struct(in)
}

// SignUp valida el formulario de registro.
func (v *Validator) SignUp(in *dto.SignUpRequest) error {
	return v.Struct(in)
}

// Struct valida cualquier struct con tags validate y traduce los errores.
// Retorna nil o un *domain.ValidationError.
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "", Message: err.Error()}}}
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		// Un mensaje por campo: el primero reportado.
		if seen[path] {
			continue
		}
		seen[path] = true
		out.Fields = append(out.Fields, domain.FieldError{Field: path, Message: message(path, fe.Tag(), fe.Param())})
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "ClientRequest.address.zip_code" → "address.zip_code".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
