package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL.
// Los movimientos son append-only; no existen UPDATE ni DELETE.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento del libro de inventario.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, articulo_id, usuario_id, tipo, cantidad, motivo, observaciones, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ArticuloID, m.UsuarioID, m.Tipo, m.Cantidad, m.Motivo, m.Observaciones, m.Fecha)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

const movimientoDetalleQuery = `
	SELECT m.id, m.articulo_id, m.usuario_id, m.tipo, m.cantidad, m.motivo,
	       m.observaciones, m.fecha,
	       a.codigo, a.nombre, COALESCE(u.nombre, '')
	FROM movimientos m
	JOIN articulos a ON a.id = m.articulo_id
	LEFT JOIN usuarios u ON u.id = m.usuario_id`

// GetByID obtiene un movimiento con datos de artículo y usuario; nil si no
// existe.
func (r *MovimientoRepo) GetByID(ctx context.Context, id string) (*entity.MovimientoDetalle, error) {
	row := r.q.QueryRow(ctx, movimientoDetalleQuery+` WHERE m.id = $1`, id)
	var d entity.MovimientoDetalle
	err := row.Scan(&d.ID, &d.ArticuloID, &d.UsuarioID, &d.Tipo, &d.Cantidad, &d.Motivo,
		&d.Observaciones, &d.Fecha, &d.ArticuloCodigo, &d.ArticuloNombre, &d.UsuarioNombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &d, nil
}

// List devuelve movimientos con detalle, más recientes primero.
func (r *MovimientoRepo) List(ctx context.Context, f repository.MovimientoFiltro) ([]*entity.MovimientoDetalle, error) {
	query := movimientoDetalleQuery + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Tipo != "" {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, f.Tipo)
		pos++
	}
	if f.ArticuloID != "" {
		query += fmt.Sprintf(" AND m.articulo_id = $%d", pos)
		args = append(args, f.ArticuloID)
		pos++
	}
	query += " ORDER BY m.fecha DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, f.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoDetalle
	for rows.Next() {
		var d entity.MovimientoDetalle
		if err := rows.Scan(&d.ID, &d.ArticuloID, &d.UsuarioID, &d.Tipo, &d.Cantidad, &d.Motivo,
			&d.Observaciones, &d.Fecha, &d.ArticuloCodigo, &d.ArticuloNombre, &d.UsuarioNombre); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Estadisticas resume la actividad del libro: movimientos de hoy y totales
// por tipo de los últimos 30 días.
func (r *MovimientoRepo) Estadisticas(ctx context.Context) (*entity.MovimientoEstadisticas, error) {
	var stats entity.MovimientoEstadisticas

	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimientos WHERE fecha >= date_trunc('day', now())`,
	).Scan(&stats.MovimientosHoy)
	if err != nil {
		return nil, fmt.Errorf("movimientos hoy: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT tipo, COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientos
		WHERE fecha >= now() - interval '30 days'
		GROUP BY tipo
		ORDER BY tipo`)
	if err != nil {
		return nil, fmt.Errorf("totales por tipo: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.MovimientoTipoTotal
		if err := rows.Scan(&t.Tipo, &t.Total, &t.CantidadTotal); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		stats.PorTipo = append(stats.PorTipo, t)
	}
	return &stats, rows.Err()
}
