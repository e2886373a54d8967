package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResult proyección de un producto en búsquedas y comparaciones.
type ProductResult struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SearchResponse resultado de la búsqueda de productos.
type SearchResponse struct {
	Results []ProductResult `json:"results"`
}

// OfferResponse una cotización de proveedor en la comparación de precios.
// Price es null cuando la fila original no traía un precio interpretable.
type OfferResponse struct {
	Supplier  string           `json:"supplier"`
	Price     *decimal.Decimal `json:"price"`
	Currency  string           `json:"currency"`
	Available int              `json:"available"`
	Updated   time.Time        `json:"updated"`
}

// PriceComparisonResponse comparación de ofertas de un producto, ascendente por precio.
type PriceComparisonResponse struct {
	Product ProductResult   `json:"product"`
	Offers  []OfferResponse `json:"offers"`
}
