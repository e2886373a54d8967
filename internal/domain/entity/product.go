package entity

import "time"

// Product representa un artículo de catálogo identificado por el número de producto
// que asigna el proveedor. Se crea de forma perezosa la primera vez que aparece un
// número nuevo durante la ingesta y no se vuelve a modificar desde ese flujo.
type Product struct {
	ID            string
	ProductNumber string // único en todo el catálogo
	CanonicalName string
	Category      string
	Description   string
	CreatedAt     time.Time
}
