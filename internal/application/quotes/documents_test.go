package quotes_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/pkg/logger"
)

func newDocUC(repo *memQuoteRepo, exp *fakeExporter) *quotes.DocumentUseCase {
	return quotes.NewDocumentUseCase(repo, exp, logger.Nop()).
		WithClock(func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) })
}

func TestQuotePDF_NombreDeArchivo(t *testing.T) {
	repo := newMemQuoteRepo()
	id := repo.seed(entity.QuoteStatusPending)
	exp := &fakeExporter{}

	b, name, err := newDocUC(repo, exp).QuotePDF(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-quote", string(b))
	assert.Equal(t, "ORCAMENTO-LABORA-TECH-1.pdf", name)
	require.NotNil(t, exp.lastQuote)
	assert.Equal(t, "ORÇAMENTO Nº 1", exp.lastQuote.Title())
}

func TestQuotePDF_FalloDelExportador_ExportError(t *testing.T) {
	repo := newMemQuoteRepo()
	id := repo.seed(entity.QuoteStatusPending)

	b, _, err := newDocUC(repo, &fakeExporter{err: errors.New("fuente no encontrada")}).QuotePDF(context.Background(), id)
	var ee *domain.ExportError
	require.True(t, errors.As(err, &ee))
	assert.Nil(t, b, "sin bytes parciales")
}

func TestContractDraft_RequiereAprobado(t *testing.T) {
	repo := newMemQuoteRepo()
	uc := newDocUC(repo, &fakeExporter{})

	for _, st := range []entity.QuoteStatus{entity.QuoteStatusPending, entity.QuoteStatusRejected} {
		_, err := uc.ContractDraft(context.Background(), repo.seed(st))
		assert.ErrorIs(t, err, domain.ErrQuoteNotApproved, "estado %s", st)
	}

	c, err := uc.ContractDraft(context.Background(), repo.seed(entity.QuoteStatusApproved))
	require.NoError(t, err)
	assert.Contains(t, c.Text(), "Brasília-DF, 19/10/2026")
}

func TestContractPDF_PlantillaOTextoEditado(t *testing.T) {
	repo := newMemQuoteRepo()
	id := repo.seed(entity.QuoteStatusApproved)
	exp := &fakeExporter{}
	uc := newDocUC(repo, exp)

	_, name, err := uc.ContractPDF(context.Background(), id, "   ")
	require.NoError(t, err)
	assert.Equal(t, "CONTRATO-1.pdf", name)
	assert.Equal(t, document.BlockHeading, exp.lastContract.Blocks[0].Kind, "plantilla con bloques etiquetados")

	edited := "CONTRATO DE PRESTAÇÃO DE SERVIÇOS\nTexto livre"
	_, _, err = uc.ContractPDF(context.Background(), id, edited)
	require.NoError(t, err)
	assert.Equal(t, edited, exp.lastContract.Text())
	for _, b := range exp.lastContract.Blocks {
		assert.Equal(t, document.BlockAuto, b.Kind)
	}
	assert.True(t, strings.HasPrefix(exp.lastContract.Title(), "CONTRATO Nº 1"))
}
