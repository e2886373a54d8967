package usecase

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// La unidad de durabilidad de la ingesta es el lote completo: si fn devuelve
// error, nada del lote queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		quoteRepo repository.PriceQuoteRepository,
	) error) error
}
