package entity

import "time"

// Supplier representa un proveedor que envía listas de precios. Name es único.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
}
