package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx
// (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un artículo. Si no hay fila devuelve un
// registro en cero: el stock se materializa con el primer movimiento.
func (r *StockRepo) Get(ctx context.Context, articuloID string) (*entity.Stock, error) {
	query := `
		SELECT articulo_id, cantidad, stock_minimo, stock_maximo, ubicacion, fecha_actualizacion
		FROM stock WHERE articulo_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, articuloID), articuloID)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT ... FOR UPDATE)
// para proteger el read-modify-write de cantidad frente a escritores
// concurrentes.
func (r *StockRepo) GetForUpdate(ctx context.Context, articuloID string) (*entity.Stock, error) {
	query := `
		SELECT articulo_id, cantidad, stock_minimo, stock_maximo, ubicacion, fecha_actualizacion
		FROM stock WHERE articulo_id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, articuloID), articuloID)
}

// Upsert inserta o actualiza el registro de stock del artículo.
func (r *StockRepo) Upsert(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO stock (articulo_id, cantidad, stock_minimo, stock_maximo, ubicacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (articulo_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad,
		              stock_minimo = EXCLUDED.stock_minimo,
		              stock_maximo = EXCLUDED.stock_maximo,
		              ubicacion = EXCLUDED.ubicacion,
		              fecha_actualizacion = now()`
	_, err := r.q.Exec(ctx, query,
		s.ArticuloID, s.Cantidad, s.StockMinimo, s.StockMaximo, s.Ubicacion)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// UpdateNiveles compila un UPDATE parametrizado solo con los campos
// presentes del field set. Las columnas están fijadas en código; nada del
// request llega al texto SQL.
func (r *StockRepo) UpdateNiveles(ctx context.Context, articuloID string, n repository.StockNiveles) error {
	set := make([]string, 0, 4)
	args := []any{articuloID}
	pos := 2
	if n.StockMinimo != nil {
		set = append(set, fmt.Sprintf("stock_minimo = $%d", pos))
		args = append(args, *n.StockMinimo)
		pos++
	}
	if n.StockMaximo != nil {
		set = append(set, fmt.Sprintf("stock_maximo = $%d", pos))
		args = append(args, *n.StockMaximo)
		pos++
	}
	if n.Ubicacion != nil {
		set = append(set, fmt.Sprintf("ubicacion = $%d", pos))
		args = append(args, *n.Ubicacion)
		pos++
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "fecha_actualizacion = now()")

	query := "UPDATE stock SET "
	for i, s := range set {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += " WHERE articulo_id = $1"

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update niveles: %w", err)
	}
	return nil
}

// Listado devuelve artículos activos con stock y proveedor, por nombre.
func (r *StockRepo) Listado(ctx context.Context, categoria string) ([]*entity.ArticuloStock, error) {
	query := `
		SELECT a.id, a.codigo, a.nombre, a.categoria, a.fecha_caducidad,
		       COALESCE(p.nombre, ''),
		       COALESCE(s.cantidad, 0), COALESCE(s.stock_minimo, 0),
		       COALESCE(s.stock_maximo, 0), COALESCE(s.ubicacion, ''),
		       COALESCE(s.fecha_actualizacion, a.fecha_actualizacion)
		FROM articulos a
		LEFT JOIN stock s ON s.articulo_id = a.id
		LEFT JOIN proveedores p ON p.id = a.proveedor_id
		WHERE a.activo = true`
	args := []any{}
	if categoria != "" {
		query += " AND a.categoria = $1"
		args = append(args, categoria)
	}
	query += " ORDER BY a.nombre ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listado stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.ArticuloStock
	for rows.Next() {
		var f entity.ArticuloStock
		if err := rows.Scan(&f.ArticuloID, &f.Codigo, &f.Nombre, &f.Categoria, &f.FechaCaducidad,
			&f.ProveedorNombre, &f.Cantidad, &f.StockMinimo, &f.StockMaximo, &f.Ubicacion,
			&f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fila stock: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *StockRepo) scanOne(row pgx.Row, articuloID string) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ArticuloID, &s.Cantidad, &s.StockMinimo, &s.StockMaximo, &s.Ubicacion, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ArticuloID: articuloID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}
