package parser

import "github.com/shopspring/decimal"

// RawRecord es una fila de lista de precios ya estructurada, lista para ingesta.
// Price queda null cuando el texto de precio no pudo normalizarse; eso no
// descarta la fila, la cotización se guarda sin monto.
type RawRecord struct {
	ProductNumber string
	ProductName   string
	AvailablePcs  int
	PriceOriginal string
	Price         decimal.NullDecimal
	Currency      string
}

// SkippedRow describe una fila descartada y el motivo. Line es 1-based sobre la
// entrada original (incluyendo el encabezado si lo había).
type SkippedRow struct {
	Line   int
	Reason string
}

// BatchReport es el resultado de parsear un lote completo: las filas válidas
// más las descartadas con su motivo, para que los descartes sean observables y
// no solo un log.
type BatchReport struct {
	Records []RawRecord
	Skipped []SkippedRow
}
