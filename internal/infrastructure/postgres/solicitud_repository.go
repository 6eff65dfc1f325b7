package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación de SolicitudRepository sobre PostgreSQL.
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

const solicitudCols = `id, usuario_id, estado, observaciones, fecha_creacion`

// CreateConDetalles inserta la solicitud y sus líneas. Debe llamarse dentro
// de una tx para que solicitud y líneas queden o no queden juntas.
func (r *SolicitudRepo) CreateConDetalles(ctx context.Context, s *entity.Solicitud, detalles []*entity.SolicitudDetalle) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO solicitudes (`+solicitudCols+`)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UsuarioID, s.Estado, s.Observaciones, s.FechaCreacion)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}
	for _, d := range detalles {
		_, err := r.q.Exec(ctx, `
			INSERT INTO solicitudes_detalle (id, solicitud_id, articulo_id, cantidad)
			VALUES ($1, $2, $3, $4)`,
			d.ID, d.SolicitudID, d.ArticuloID, d.Cantidad)
		if err != nil {
			return fmt.Errorf("insert detalle solicitud: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una solicitud por ID; nil si no existe.
func (r *SolicitudRepo) GetByID(ctx context.Context, id string) (*entity.Solicitud, error) {
	row := r.q.QueryRow(ctx, `SELECT `+solicitudCols+` FROM solicitudes WHERE id = $1`, id)
	var s entity.Solicitud
	err := row.Scan(&s.ID, &s.UsuarioID, &s.Estado, &s.Observaciones, &s.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return &s, nil
}

// GetDetalles devuelve las líneas con código y nombre del artículo.
func (r *SolicitudRepo) GetDetalles(ctx context.Context, solicitudID string) ([]*entity.SolicitudDetalleInfo, error) {
	rows, err := r.q.Query(ctx, `
		SELECT d.id, d.solicitud_id, d.articulo_id, d.cantidad, a.codigo, a.nombre
		FROM solicitudes_detalle d
		JOIN articulos a ON a.id = d.articulo_id
		WHERE d.solicitud_id = $1
		ORDER BY d.id`,
		solicitudID)
	if err != nil {
		return nil, fmt.Errorf("get detalles solicitud: %w", err)
	}
	defer rows.Close()
	var list []*entity.SolicitudDetalleInfo
	for rows.Next() {
		var d entity.SolicitudDetalleInfo
		if err := rows.Scan(&d.ID, &d.SolicitudID, &d.ArticuloID, &d.Cantidad,
			&d.ArticuloCodigo, &d.ArticuloNombre); err != nil {
			return nil, fmt.Errorf("scan detalle solicitud: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la solicitud.
func (r *SolicitudRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	_, err := r.q.Exec(ctx, `UPDATE solicitudes SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado solicitud: %w", err)
	}
	return nil
}

// List devuelve solicitudes con el nombre del solicitante y agregados de
// sus líneas, más recientes primero.
func (r *SolicitudRepo) List(ctx context.Context, f repository.SolicitudFiltro) ([]*entity.SolicitudResumen, error) {
	query := `
		SELECT s.id, s.usuario_id, s.estado, s.observaciones, s.fecha_creacion,
		       COALESCE(u.nombre, ''),
		       COUNT(d.id), COALESCE(SUM(d.cantidad), 0)
		FROM solicitudes s
		LEFT JOIN usuarios u ON u.id = s.usuario_id
		LEFT JOIN solicitudes_detalle d ON d.solicitud_id = s.id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if f.UsuarioID != "" {
		query += fmt.Sprintf(" AND s.usuario_id = $%d", pos)
		args = append(args, f.UsuarioID)
		pos++
	}
	if f.Estado != "" {
		query += fmt.Sprintf(" AND s.estado = $%d", pos)
		args = append(args, f.Estado)
		pos++
	}
	query += `
		GROUP BY s.id, u.nombre
		ORDER BY s.fecha_creacion DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, f.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.SolicitudResumen
	for rows.Next() {
		var s entity.SolicitudResumen
		if err := rows.Scan(&s.ID, &s.UsuarioID, &s.Estado, &s.Observaciones, &s.FechaCreacion,
			&s.UsuarioNombre, &s.TotalItems, &s.TotalUnidades); err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
