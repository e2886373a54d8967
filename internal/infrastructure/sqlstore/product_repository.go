package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar db o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// CreateIfAbsent inserta el producto si su product_number aún no existe.
// ON CONFLICT DO NOTHING funciona igual en PostgreSQL y SQLite y evita abortar
// la transacción del lote cuando dos ingestas compiten por el mismo número.
func (r *ProductRepo) CreateIfAbsent(product *entity.Product) error {
	query := `
		INSERT INTO products (id, product_number, canonical_name, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_number) DO NOTHING`
	_, err := r.q.ExecContext(context.Background(), query,
		product.ID, product.ProductNumber, product.CanonicalName,
		product.Category, nullString(product.Description), product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT id, product_number, canonical_name, category, description, created_at
		FROM products WHERE id = $1`, id)
}

// GetByNumber obtiene un producto por número de producto (match exacto).
func (r *ProductRepo) GetByNumber(productNumber string) (*entity.Product, error) {
	return r.getOne(`SELECT id, product_number, canonical_name, category, description, created_at
		FROM products WHERE product_number = $1`, productNumber)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	var description sql.NullString
	err := r.q.QueryRowContext(context.Background(), query, arg).Scan(
		&p.ID, &p.ProductNumber, &p.CanonicalName, &p.Category, &description, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Description = description.String
	return &p, nil
}

// Search busca productos cuyo número o nombre canónico contienen query como
// substring. La sensibilidad a mayúsculas depende del collation del backend.
func (r *ProductRepo) Search(query string) ([]*entity.Product, error) {
	pattern := "%" + query + "%"
	rows, err := r.q.QueryContext(context.Background(), `
		SELECT id, product_number, canonical_name, category, description, created_at
		FROM products
		WHERE product_number LIKE $1 OR canonical_name LIKE $2
		ORDER BY product_number`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.ProductNumber, &p.CanonicalName, &p.Category, &description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Description = description.String
		list = append(list, &p)
	}
	return list, rows.Err()
}

// nullString mapea "" a NULL para columnas opcionales.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
