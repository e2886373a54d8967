package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote es la observación de precio/disponibilidad de un proveedor para un
// producto en un momento dado. El historial es append-only: re-ingestar el mismo
// lote crea cotizaciones nuevas, nunca actualiza las existentes.
type PriceQuote struct {
	ID         string
	ProductID  string
	SupplierID string
	Price      decimal.NullDecimal // null cuando el texto de precio no pudo normalizarse
	Currency   string              // código de 3 letras, por defecto EUR
	Available  int
	Timestamp  time.Time
}

// Offer es una cotización proyectada con el nombre del proveedor, lista para
// la comparación de precios.
type Offer struct {
	SupplierName string
	Price        decimal.NullDecimal
	Currency     string
	Available    int
	Timestamp    time.Time
}
