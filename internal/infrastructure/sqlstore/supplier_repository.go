package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre SQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar db o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor. name tiene constraint único.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.ExecContext(context.Background(), query,
		supplier.ID, supplier.Name, nullString(supplier.ContactEmail),
		nullString(supplier.Phone), supplier.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	var email, phone sql.NullString
	err := r.q.QueryRowContext(context.Background(), `
		SELECT id, name, contact_email, phone, created_at
		FROM suppliers WHERE id = $1`, id).Scan(&s.ID, &s.Name, &email, &phone, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	s.ContactEmail = email.String
	s.Phone = phone.String
	return &s, nil
}

// List lista todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.q.QueryContext(context.Background(), `
		SELECT id, name, contact_email, phone, created_at
		FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var email, phone sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &email, &phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		s.ContactEmail = email.String
		s.Phone = phone.String
		list = append(list, &s)
	}
	return list, rows.Err()
}
