// Package document arma el texto de los documentos generados a partir de un orçamento:
// la propuesta comercial (orçamento) y el contrato de prestación de servicios.
//
// Las funciones son puras: no hacen I/O y la fecha actual llega como argumento.
package document

import "time"

// Partner socio que firma los contratos en nombre de la empresa.
type Partner struct {
	Name      string // en mayúsculas, como figura en la cláusula de identificación
	Signature string // nombre para el bloque de firma
	CPF       string
}

// Identidad fija de la empresa contratada.
const (
	CompanyName         = "LABORA TECH"
	CompanyTradeName    = "Labora Tech - Soluções em Tecnologia"
	CompanyTagline      = "Soluções em Tecnologia"
	CompanyCNPJ         = "55.707.870/0001-97"
	CompanyAddress      = "C1 LOTE 11, entrada C"
	CompanyCity         = "Brasília-DF"
	CompanyPhone        = "(61) 99815-9297"
	CompanyEmail        = "laborad.sign@gmail.com"
	CompanyJurisdiction = "Brasília-DF"
)

// Partners socios de la empresa, en el orden en que firman.
var Partners = []Partner{
	{Name: "HÉRICLES FRANCISCO SOUSA E SILVA", Signature: "Héricles Francisco Sousa e Silva", CPF: "109.775.426-02"},
	{Name: "EZEQUIEL ALVES DE SOUZA", Signature: "Ezequiel Alves de Souza", CPF: "076.572.981-46"},
	{Name: "BRUNA STÉFANE NOGUEIRA NUNES", Signature: "Bruna Stéfane Nogueira Nunes", CPF: "062.926.511-93"},
}

// CompanyContactLines líneas de contacto del encabezado de cada página.
func CompanyContactLines() []string {
	return []string{
		CompanyTradeName,
		"CNPJ: " + CompanyCNPJ,
		CompanyAddress,
		"Tel: " + CompanyPhone,
		"E-mail: " + CompanyEmail,
	}
}

// CompanyFooterLine dirección y contacto para el pie de página.
func CompanyFooterLine() string {
	return CompanyAddress + ", " + CompanyCity + "  |  " + CompanyPhone + "  |  " + CompanyEmail
}

// Location zona horaria en la que se fechan los documentos.
var Location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// FormatDate fecha dd/MM/yyyy en la zona horaria de los documentos.
func FormatDate(t time.Time) string {
	return t.In(Location).Format("02/01/2006")
}
