package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/pkg/money"
)

const contractTitle = "INSTRUMENTO PARTICULAR DE PRESTAÇÃO DE SERVIÇOS DE TECNOLOGIA"

const signatureLine = "_____________________________________________"

// Contract texto del contrato listo para editar o exportar.
type Contract struct {
	QuoteID string    `json:"quote_id"`
	Number  int64     `json:"number"`
	Date    time.Time `json:"date"`
	Blocks  []Block   `json:"blocks"`
}

// Title título de la banda superior del PDF.
func (c *Contract) Title() string {
	return fmt.Sprintf("CONTRATO Nº %d", c.Number)
}

// FileName nombre del archivo PDF del contrato.
func (c *Contract) FileName() string {
	return fmt.Sprintf("CONTRATO-%d.pdf", c.Number)
}

// Text texto plano editable del contrato.
func (c *Contract) Text() string {
	return joinBlocks(c.Blocks)
}

// ParseContractText convierte un texto editado a mano en bloques BlockAuto (uno por línea).
// Los títulos se detectan después con IsHeadingLine.
func ParseContractText(quoteID string, number int64, date time.Time, text string) *Contract {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, l := range lines {
		blocks = append(blocks, Block{Kind: BlockAuto, Text: l})
	}
	return &Contract{QuoteID: quoteID, Number: number, Date: date, Blocks: blocks}
}

// contractBuilder acumula bloques con una línea en blanco entre ellos por defecto.
type contractBuilder struct {
	blocks []Block
}

func (b *contractBuilder) add(kind BlockKind, blank int, lines ...string) {
	if len(b.blocks) == 0 {
		blank = 0
	}
	b.blocks = append(b.blocks, Block{Kind: kind, Text: strings.Join(lines, "\n"), BlankLinesBefore: blank})
}

func (b *contractBuilder) heading(s string) { b.add(BlockHeading, 1, s) }
func (b *contractBuilder) body(lines ...string) { b.add(BlockBody, 1, lines...) }
func (b *contractBuilder) signature(lines ...string) { b.add(BlockSignature, 2, lines...) }

// RenderContractDocument arma el contrato de prestación de servicios de un orçamento.
// date es la fecha de emisión que se imprime junto a las firmas.
func RenderContractDocument(q *entity.Quote, date time.Time) *Contract {
	b := &contractBuilder{}
	value := money.FormatBRL(q.Value)

	b.heading(contractTitle)

	b.heading("IDENTIFICAÇÃO DAS PARTES CONTRATANTES")
	b.body(fmt.Sprintf("CONTRATANTE: %s, inscrito(a) no CPF/CNPJ sob o nº %s, doravante denominado(a) simplesmente CONTRATANTE.",
		q.ClientName, q.ClientDocument))
	b.body(fmt.Sprintf("CONTRATADA: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede em %s, %s, representada neste ato por seus sócios:",
		CompanyName, CompanyCNPJ, CompanyAddress, CompanyCity))
	partners := make([]string, 0, len(Partners))
	for _, p := range Partners {
		partners = append(partners, fmt.Sprintf("- %s, CPF: %s", p.Name, p.CPF))
	}
	b.body(partners...)
	b.body("Doravante denominada simplesmente CONTRATADA.")
	b.body("As partes acima identificadas têm, entre si, justo e acertado o presente Contrato de Prestação de Serviços de Tecnologia, que se regerá pelas cláusulas seguintes e pelas condições descritas no presente.")

	b.heading("OBJETO DO CONTRATO")
	b.body("Cláusula 1ª. O presente contrato tem como objeto a prestação dos seguintes serviços de tecnologia:")
	b.body(q.ServiceDescription)

	b.heading("VIGÊNCIA E PRAZO")
	b.body("Cláusula 2ª. O presente contrato terá vigência de 12 (doze) meses, iniciando-se na data de sua assinatura, podendo ser prorrogado mediante acordo entre as partes.")
	b.body("Cláusula 3ª. O prazo para entrega do projeto inicial é de 30 (trinta) dias úteis, contados a partir da assinatura deste contrato e do recebimento de todos os materiais e informações necessários para sua execução.")

	b.heading("VALOR E FORMA DE PAGAMENTO")
	b.body(fmt.Sprintf("Cláusula 4ª. Pela prestação dos serviços, a CONTRATANTE pagará à CONTRATADA o valor total de %s, a ser pago da seguinte forma: %s.",
		value, q.PaymentMethod))

	b.heading("SERVIÇO DE MANUTENÇÃO MENSAL (OPCIONAL)")
	b.body(
		"Cláusula 5ª. Após a entrega do projeto, a CONTRATANTE poderá optar pela contratação do serviço de manutenção mensal, que inclui:",
		"- Atualizações de segurança",
		"- Backup periódico",
		"- Correção de bugs",
		"- Pequenas alterações de conteúdo",
		"- Suporte técnico por e-mail e WhatsApp",
	)
	b.body(
		"§1º O valor do serviço de manutenção mensal é de R$ 89,90 (oitenta e nove reais e noventa centavos).",
		"§2º O primeiro mês de manutenção será gratuito.",
		"§3º O serviço poderá ser cancelado a qualquer momento, com aviso prévio de 30 dias.",
	)

	b.heading("OBRIGAÇÕES DA CONTRATADA")
	b.body(
		"Cláusula 6ª. São obrigações da CONTRATADA:",
		"a) Executar os serviços conforme especificações deste contrato;",
		"b) Manter sigilo sobre todas as informações obtidas em função da prestação de serviços;",
		"c) Garantir a qualidade técnica dos serviços;",
		"d) Fornecer suporte técnico durante o desenvolvimento;",
		"e) Realizar backup periódico dos dados;",
		"f) Corrigir, sem ônus para a CONTRATANTE, quaisquer erros ou defeitos técnicos decorrentes da execução dos serviços.",
	)

	b.heading("OBRIGAÇÕES DA CONTRATANTE")
	b.body(
		"Cláusula 7ª. São obrigações da CONTRATANTE:",
		"a) Fornecer todas as informações necessárias para execução dos serviços;",
		"b) Realizar os pagamentos conforme acordado;",
		"c) Designar responsável para acompanhamento do projeto;",
		"d) Realizar a validação e testes necessários nos prazos estabelecidos;",
		"e) Respeitar os direitos de propriedade intelectual da CONTRATADA.",
	)

	b.heading("CONFIDENCIALIDADE E PROTEÇÃO DE DADOS")
	b.body(
		"Cláusula 8ª. As partes se comprometem a:",
		"a) Manter sigilo sobre informações confidenciais;",
		"b) Proteger dados pessoais conforme a LGPD (Lei 13.709/2018);",
		"c) Implementar medidas de segurança adequadas;",
		"d) Notificar imediatamente qualquer violação de dados.",
	)

	b.heading("PROPRIEDADE INTELECTUAL")
	b.body(
		"Cláusula 9ª. Os direitos de propriedade intelectual sobre os produtos desenvolvidos serão transferidos à CONTRATANTE após a quitação total do contrato, exceto:",
		"a) Bibliotecas e frameworks de terceiros;",
		"b) Componentes reutilizáveis desenvolvidos previamente pela CONTRATADA;",
		"c) Metodologias e conhecimentos técnicos da CONTRATADA.",
	)

	b.heading("RESCISÃO")
	b.body(
		"Cláusula 10ª. O presente contrato poderá ser rescindido:",
		"a) Por comum acordo entre as partes;",
		"b) Por inadimplemento de qualquer cláusula contratual;",
		"c) Mediante notificação prévia de 30 (trinta) dias;",
		"d) Por força maior ou caso fortuito.",
	)
	b.body("Parágrafo único: Em caso de rescisão, serão devidos os valores proporcionais aos serviços já executados.")

	b.heading("DISPOSIÇÕES GERAIS")
	b.body("Cláusula 11ª. Este contrato é celebrado em caráter irrevogável e irretratável.")
	b.body("Cláusula 12ª. Qualquer modificação deste contrato só será válida mediante aditivo contratual escrito.")
	b.body("Cláusula 13ª. Os casos omissos serão resolvidos de acordo com a legislação vigente.")

	b.heading("FORO")
	b.body(fmt.Sprintf("Cláusula 14ª. Para dirimir quaisquer controvérsias oriundas deste contrato, as partes elegem o foro da comarca de %s.",
		CompanyJurisdiction))
	b.body("Por estarem assim justos e contratados, firmam o presente instrumento em duas vias de igual teor.")
	b.body(CompanyCity + ", " + FormatDate(date))

	b.signature(signatureLine, q.ClientName, "CPF/CNPJ: "+q.ClientDocument)
	for _, p := range Partners {
		b.signature(signatureLine, p.Signature, "CPF: "+p.CPF)
	}

	b.add(BlockBody, 2, "TESTEMUNHAS:")
	b.add(BlockSignature, 1, "1. _________________________________________", "Nome:", "CPF:")
	b.add(BlockSignature, 2, "2. _________________________________________", "Nome:", "CPF:")

	return &Contract{QuoteID: q.ID, Number: q.Number, Date: date, Blocks: b.blocks}
}
