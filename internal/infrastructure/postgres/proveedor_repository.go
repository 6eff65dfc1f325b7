package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorCols = `id, codigo, nombre, contacto, telefono, email, direccion, ciudad, pais, notas, activo, fecha_creacion, fecha_actualizacion`

// Create persiste un proveedor. Código repetido -> domain.ErrDuplicate.
func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (` + proveedorCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Contacto, p.Telefono, p.Email,
		p.Direccion, p.Ciudad, p.Pais, p.Notas, p.Activo, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor activo por ID; nil si no existe.
func (r *ProveedorRepo) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE id = $1 AND activo = true`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByCodigo obtiene un proveedor activo por código; nil si no existe.
func (r *ProveedorRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE codigo = $1 AND activo = true`
	return r.scanOne(r.q.QueryRow(ctx, query, codigo))
}

// List devuelve los proveedores activos ordenados por nombre.
func (r *ProveedorRepo) List(ctx context.Context) ([]*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE activo = true ORDER BY nombre ASC`
	return r.scanMany(ctx, query)
}

// Search busca proveedores activos por nombre, código o contacto.
func (r *ProveedorRepo) Search(ctx context.Context, termino string) ([]*entity.Proveedor, error) {
	query := `
		SELECT ` + proveedorCols + `
		FROM proveedores
		WHERE activo = true
		  AND (nombre ILIKE $1 OR codigo ILIKE $1 OR contacto ILIKE $1)
		ORDER BY nombre ASC`
	return r.scanMany(ctx, query, "%"+termino+"%")
}

// Update actualiza los campos editables del proveedor (el código es fijo).
func (r *ProveedorRepo) Update(ctx context.Context, p *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET nombre = $2, contacto = $3, telefono = $4, email = $5,
		    direccion = $6, ciudad = $7, pais = $8, notas = $9,
		    fecha_actualizacion = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Contacto, p.Telefono, p.Email,
		p.Direccion, p.Ciudad, p.Pais, p.Notas, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// SoftDelete marca el proveedor como inactivo.
func (r *ProveedorRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE proveedores SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email,
			&p.Direccion, &p.Ciudad, &p.Pais, &p.Notas, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProveedorRepo) scanOne(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email,
		&p.Direccion, &p.Ciudad, &p.Pais, &p.Notas, &p.Activo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}
