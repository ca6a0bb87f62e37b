// Package report produce el reporte diario de ventas: la matriz
// (región, agente) × día renderizada como tabla monoespaciada.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/agentes-ledger/internal/domain"
	"github.com/tu-usuario/agentes-ledger/internal/domain/report"
	"github.com/tu-usuario/agentes-ledger/internal/domain/repository"
	"github.com/tu-usuario/agentes-ledger/pkg/config"
)

// EmptyMessage se devuelve cuando la ventana no contiene ninguna venta.
const EmptyMessage = "Sin ventas registradas en la ventana del reporte."

// UseCase caso de uso del reporte de ventas diarias.
type UseCase struct {
	sales repository.SaleRepository
	cfg   config.ReportConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(sales repository.SaleRepository, cfg config.ReportConfig) *UseCase {
	return &UseCase{sales: sales, cfg: cfg}
}

// DailySales construye y renderiza el pivote de la ventana configurada.
// Los totales cubren la ventana completa; el recorte de columnas visibles es
// solo presentación.
func (uc *UseCase) DailySales(ctx context.Context) (string, error) {
	// El corte es por fecha, no por instante: medianoche de hoy menos la
	// ventana, para no excluir ventas de la mañana del día límite.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -uc.cfg.WindowDays)
	records, err := uc.sales.RecordsSince(ctx, from)
	if err != nil {
		return "", storage(err)
	}
	if len(records) == 0 {
		return EmptyMessage, nil
	}
	pivot := report.Build(records, uc.cfg.MaxDayColumns)
	return pivot.Render(uc.cfg.Unit), nil
}

func storage(err error) error {
	if domain.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
