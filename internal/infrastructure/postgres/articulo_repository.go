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

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación de ArticuloRepository sobre PostgreSQL
// (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

const articuloCols = `id, codigo, nombre, descripcion, categoria, proveedor_id, fecha_caducidad, activo, fecha_creacion, fecha_actualizacion`

// Create persiste un nuevo artículo. Código repetido -> domain.ErrDuplicate.
func (r *ArticuloRepo) Create(ctx context.Context, a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (` + articuloCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Codigo, a.Nombre, a.Descripcion, a.Categoria,
		a.ProveedorID, a.FechaCaducidad, a.Activo, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo activo por ID; nil si no existe.
func (r *ArticuloRepo) GetByID(ctx context.Context, id string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloCols + ` FROM articulos WHERE id = $1 AND activo = true`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByCodigo obtiene un artículo activo por código; nil si no existe.
func (r *ArticuloRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloCols + ` FROM articulos WHERE codigo = $1 AND activo = true`
	return r.scanOne(r.q.QueryRow(ctx, query, codigo))
}

// List devuelve los artículos activos, más recientes primero.
func (r *ArticuloRepo) List(ctx context.Context) ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloCols + ` FROM articulos WHERE activo = true ORDER BY fecha_creacion DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Descripcion, &a.Categoria,
			&a.ProveedorID, &a.FechaCaducidad, &a.Activo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del artículo (el código es fijo).
func (r *ArticuloRepo) Update(ctx context.Context, a *entity.Articulo) error {
	query := `
		UPDATE articulos
		SET nombre = $2, descripcion = $3, categoria = $4, proveedor_id = $5,
		    fecha_caducidad = $6, fecha_actualizacion = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Nombre, a.Descripcion, a.Categoria, a.ProveedorID, a.FechaCaducidad, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// SoftDelete marca el artículo como inactivo.
func (r *ArticuloRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE articulos SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete articulo: %w", err)
	}
	return nil
}

func (r *ArticuloRepo) scanOne(row pgx.Row) (*entity.Articulo, error) {
	var a entity.Articulo
	err := row.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Descripcion, &a.Categoria,
		&a.ProveedorID, &a.FechaCaducidad, &a.Activo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return &a, nil
}
