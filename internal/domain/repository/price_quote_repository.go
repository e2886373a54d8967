package repository

import "github.com/jhoicas/Precios-api/internal/domain/entity"

// PriceQuoteRepository define el puerto de persistencia para PriceQuote.
type PriceQuoteRepository interface {
	Create(quote *entity.PriceQuote) error
	// ListOffersByProduct devuelve las cotizaciones del producto unidas con el
	// nombre del proveedor, ordenadas ascendente por precio.
	ListOffersByProduct(productID string) ([]*entity.Offer, error)
}
