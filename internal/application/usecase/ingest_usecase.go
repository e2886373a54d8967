package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
	"github.com/jhoicas/Precios-api/internal/infrastructure/parser"
	"github.com/jhoicas/Precios-api/pkg/logger"
	"github.com/jhoicas/Precios-api/pkg/metrics"
)

// IngestUseCase persiste un lote parseado: crea productos nuevos de forma
// perezosa (con categoría derivada del nombre) y agrega una cotización por
// fila. Todo el lote corre dentro de una transacción.
//
// El supplierID no se valida contra la tabla de proveedores; un id inexistente
// rompe la foreign key y el lote completo falla.
type IngestUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(tx TxRunner, log *logger.Logger) *IngestUseCase {
	return &IngestUseCase{tx: tx, log: log}
}

// Ingest procesa el reporte de un lote. source identifica el origen ("text" o
// "xlsx") solo para métricas y logs. Devuelve el conteo de cotizaciones
// insertadas; un error deja el almacenamiento como estaba antes del lote.
func (uc *IngestUseCase) Ingest(ctx context.Context, supplierID, source string, report *parser.BatchReport) (*dto.UploadResponse, error) {
	for _, skip := range report.Skipped {
		uc.log.Warn().
			Str("source", source).
			Int("line", skip.Line).
			Str("reason", skip.Reason).
			Msg("fila descartada durante el parseo")
	}

	added := 0
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, quoteRepo repository.PriceQuoteRepository) error {
		for _, rec := range report.Records {
			product, err := productRepo.GetByNumber(rec.ProductNumber)
			if err != nil {
				return err
			}
			if product == nil {
				candidate := &entity.Product{
					ID:            uuid.New().String(),
					ProductNumber: rec.ProductNumber,
					CanonicalName: rec.ProductName,
					Category:      pricing.Categorize(rec.ProductName),
					CreatedAt:     time.Now().UTC(),
				}
				if err := productRepo.CreateIfAbsent(candidate); err != nil {
					return err
				}
				// Releer: si otra ingesta ganó la carrera, usamos su fila.
				product, err = productRepo.GetByNumber(rec.ProductNumber)
				if err != nil {
					return err
				}
				if product == nil {
					return fmt.Errorf("producto %s no visible tras el insert", rec.ProductNumber)
				}
			}

			quote := &entity.PriceQuote{
				ID:         uuid.New().String(),
				ProductID:  product.ID,
				SupplierID: supplierID,
				Price:      rec.Price,
				Currency:   rec.Currency,
				Available:  rec.AvailablePcs,
				Timestamp:  time.Now().UTC(),
			}
			if err := quoteRepo.Create(quote); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		metrics.IngestBatches.WithLabelValues(source, "error").Inc()
		return nil, err
	}

	metrics.IngestBatches.WithLabelValues(source, "ok").Inc()
	metrics.IngestRowsAdded.Add(float64(added))
	metrics.IngestRowsSkipped.Add(float64(len(report.Skipped)))

	uc.log.Info().
		Str("source", source).
		Str("supplier_id", supplierID).
		Int("added", added).
		Int("skipped", len(report.Skipped)).
		Msg("lote ingestado")

	return &dto.UploadResponse{
		Message: fmt.Sprintf("Successfully added %d price entries", added),
		Added:   added,
		Skipped: len(report.Skipped),
	}, nil
}
