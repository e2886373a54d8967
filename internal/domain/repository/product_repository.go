package repository

import "github.com/jhoicas/Precios-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	// CreateIfAbsent inserta el producto salvo que ya exista uno con el mismo
	// product_number; en ese caso no hace nada ni falla. Resuelve la carrera de
	// dos ingestas concurrentes sobre un número nuevo vía constraint único.
	CreateIfAbsent(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByNumber(productNumber string) (*entity.Product, error)
	// Search devuelve los productos cuyo número o nombre canónico contienen query
	// como substring. La sensibilidad a mayúsculas la decide el collation del store.
	Search(query string) ([]*entity.Product, error)
}
