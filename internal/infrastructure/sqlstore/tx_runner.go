package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/application/usecase"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQL. La ingesta usa una
// transacción por lote: cualquier fallo fatal revierte el lote completo.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	quoteRepo repository.PriceQuoteRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	productRepo := NewProductRepository(tx)
	quoteRepo := NewPriceQuoteRepository(tx)

	if err := fn(productRepo, quoteRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
