package sqlstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.PriceQuoteRepository = (*PriceQuoteRepo)(nil)

// PriceQuoteRepo implementación del puerto PriceQuoteRepository sobre SQL.
// El historial es append-only: no hay Update ni Delete.
type PriceQuoteRepo struct {
	q Querier
}

// NewPriceQuoteRepository construye el adaptador. Pasar db o tx (Querier).
func NewPriceQuoteRepository(q Querier) *PriceQuoteRepo {
	return &PriceQuoteRepo{q: q}
}

// Create agrega una cotización al historial.
func (r *PriceQuoteRepo) Create(quote *entity.PriceQuote) error {
	query := `
		INSERT INTO price_entries (id, product_id, supplier_id, price, currency, available, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.ExecContext(context.Background(), query,
		quote.ID, quote.ProductID, quote.SupplierID,
		quote.Price, quote.Currency, quote.Available, quote.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert price entry: %w", err)
	}
	return nil
}

// ListOffersByProduct devuelve las cotizaciones del producto con el nombre del
// proveedor, ordenadas ascendente por precio. Las filas sin precio van al
// final; SQLite y PostgreSQL discrepan en dónde caen los NULL, así que el
// orden se fija en la consulta.
func (r *PriceQuoteRepo) ListOffersByProduct(productID string) ([]*entity.Offer, error) {
	rows, err := r.q.QueryContext(context.Background(), `
		SELECT s.name, e.price, e.currency, e.available, e.timestamp
		FROM price_entries e
		JOIN suppliers s ON s.id = e.supplier_id
		WHERE e.product_id = $1
		ORDER BY (e.price IS NULL), e.price ASC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.SupplierName, &o.Price, &o.Currency, &o.Available, &o.Timestamp); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, &o)
	}
	return offers, rows.Err()
}
