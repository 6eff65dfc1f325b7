package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acampos/inventario-api/internal/application/auth"
	"github.com/acampos/inventario-api/internal/application/compras"
	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/application/solicitudes"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// Ensure TxRunner implements the application-level runner ports.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ compras.TxRunner = (*TxRunner)(nil)
var _ solicitudes.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// lockRegistroUsuarios serializa los registros de usuario dentro de la
// transacción que decide el bootstrap del primer admin.
const lockRegistroUsuarios = 7341

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	articuloRepo repository.ArticuloRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimientoRepository(tx), NewStockRepository(tx), NewArticuloRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompra inicia una transacción con los repos que necesita la recepción
// de una orden de compra.
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	compraRepo repository.CompraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimientoRepository(tx), NewStockRepository(tx), NewCompraRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSolicitud inicia una transacción con el repo de solicitudes, para que
// la solicitud y sus líneas queden en la misma unidad atómica.
func (r *TxRunner) RunSolicitud(ctx context.Context, fn func(
	solicitudRepo repository.SolicitudRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSolicitudRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistro inicia una transacción para el alta de un usuario y toma un
// advisory lock transaccional antes de ejecutar fn. Dos registros
// concurrentes se serializan, de modo que el conteo que decide el bootstrap
// del primer admin nunca se lee dos veces en cero.
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockRegistroUsuarios); err != nil {
		return fmt.Errorf("advisory lock registro: %w", err)
	}
	if err := fn(NewUsuarioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
