// Package quotes contiene los casos de uso de orçamentos: alta, consulta,
// ciclo de vida (aprobar/rechazar) y generación de documentos.
package quotes

import (
	"context"

	"github.com/jhoicas/labora-api/internal/domain/document"
)

// DocumentExporter dibuja los documentos en PDF.
// Cualquier fallo se devuelve como *domain.ExportError y nunca con bytes parciales.
type DocumentExporter interface {
	ExportQuote(ctx context.Context, doc *document.QuoteDocument) ([]byte, error)
	ExportContract(ctx context.Context, c *document.Contract) ([]byte, error)
}
