package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación de CompraRepository sobre PostgreSQL.
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// CreateConDetalles inserta la orden y sus líneas. Número de orden repetido
// -> domain.ErrDuplicate. Debe llamarse dentro de una tx para que orden y
// líneas queden o no queden juntas.
func (r *CompraRepo) CreateConDetalles(ctx context.Context, c *entity.Compra, detalles []*entity.CompraDetalle) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO compras (id, proveedor_id, usuario_id, numero_orden, estado, observaciones, fecha_orden)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.ProveedorID, c.UsuarioID, c.NumeroOrden, c.Estado, c.Observaciones, c.FechaOrden)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert compra: %w", err)
	}
	for _, d := range detalles {
		_, err := r.q.Exec(ctx, `
			INSERT INTO compras_detalle (id, compra_id, articulo_id, cantidad)
			VALUES ($1, $2, $3, $4)`,
			d.ID, d.CompraID, d.ArticuloID, d.Cantidad)
		if err != nil {
			return fmt.Errorf("insert detalle: %w", err)
		}
	}
	return nil
}

const compraCols = `id, proveedor_id, usuario_id, numero_orden, estado, observaciones, fecha_orden, fecha_recepcion`

// GetByID obtiene una orden por ID; nil si no existe.
func (r *CompraRepo) GetByID(ctx context.Context, id string) (*entity.Compra, error) {
	query := `SELECT ` + compraCols + ` FROM compras WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetForUpdate obtiene la orden y bloquea su fila. La transición de estado
// lee el estado bajo el lock, de modo que dos recepciones concurrentes se
// serializan y la segunda ve "recibida".
func (r *CompraRepo) GetForUpdate(ctx context.Context, id string) (*entity.Compra, error) {
	query := `SELECT ` + compraCols + ` FROM compras WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetDetalles devuelve las líneas de una orden.
func (r *CompraRepo) GetDetalles(ctx context.Context, compraID string) ([]*entity.CompraDetalle, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, compra_id, articulo_id, cantidad FROM compras_detalle WHERE compra_id = $1 ORDER BY id`,
		compraID)
	if err != nil {
		return nil, fmt.Errorf("get detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompraDetalle
	for rows.Next() {
		var d entity.CompraDetalle
		if err := rows.Scan(&d.ID, &d.CompraID, &d.ArticuloID, &d.Cantidad); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la orden. fechaRecepcion solo llega no
// nula en la transición a "recibida".
func (r *CompraRepo) UpdateEstado(ctx context.Context, id, estado string, fechaRecepcion *time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE compras SET estado = $2, fecha_recepcion = $3 WHERE id = $1`,
		id, estado, fechaRecepcion)
	if err != nil {
		return fmt.Errorf("update estado compra: %w", err)
	}
	return nil
}

// List devuelve órdenes con datos de proveedor y agregados de líneas, más
// recientes primero.
func (r *CompraRepo) List(ctx context.Context, f repository.CompraFiltro) ([]*entity.CompraResumen, error) {
	query := `
		SELECT c.id, c.proveedor_id, c.usuario_id, c.numero_orden, c.estado,
		       c.observaciones, c.fecha_orden, c.fecha_recepcion,
		       p.nombre, p.codigo, COALESCE(u.nombre, ''),
		       COUNT(d.id), COALESCE(SUM(d.cantidad), 0)
		FROM compras c
		JOIN proveedores p ON p.id = c.proveedor_id
		LEFT JOIN usuarios u ON u.id = c.usuario_id
		LEFT JOIN compras_detalle d ON d.compra_id = c.id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Estado != "" {
		query += fmt.Sprintf(" AND c.estado = $%d", pos)
		args = append(args, f.Estado)
		pos++
	}
	if f.ProveedorID != "" {
		query += fmt.Sprintf(" AND c.proveedor_id = $%d", pos)
		args = append(args, f.ProveedorID)
		pos++
	}
	query += `
		GROUP BY c.id, p.nombre, p.codigo, u.nombre
		ORDER BY c.fecha_orden DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, f.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompraResumen
	for rows.Next() {
		var c entity.CompraResumen
		if err := rows.Scan(&c.ID, &c.ProveedorID, &c.UsuarioID, &c.NumeroOrden, &c.Estado,
			&c.Observaciones, &c.FechaOrden, &c.FechaRecepcion,
			&c.ProveedorNombre, &c.ProveedorCodigo, &c.RegistradoPor,
			&c.TotalItems, &c.TotalUnidades); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CompraRepo) scanOne(row pgx.Row) (*entity.Compra, error) {
	var c entity.Compra
	err := row.Scan(&c.ID, &c.ProveedorID, &c.UsuarioID, &c.NumeroOrden, &c.Estado,
		&c.Observaciones, &c.FechaOrden, &c.FechaRecepcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}
