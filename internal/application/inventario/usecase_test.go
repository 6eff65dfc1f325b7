package inventario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeArticuloRepo struct {
	articulos map[string]*entity.Articulo
}

func (r *fakeArticuloRepo) Create(_ context.Context, a *entity.Articulo) error {
	r.articulos[a.ID] = a
	return nil
}
func (r *fakeArticuloRepo) GetByID(_ context.Context, id string) (*entity.Articulo, error) {
	return r.articulos[id], nil
}
func (r *fakeArticuloRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Articulo, error) {
	for _, a := range r.articulos {
		if a.Codigo == codigo {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeArticuloRepo) List(context.Context) ([]*entity.Articulo, error) { return nil, nil }
func (r *fakeArticuloRepo) Update(context.Context, *entity.Articulo) error { return nil }
func (r *fakeArticuloRepo) SoftDelete(context.Context, string) error      { return nil }

type fakeStockRepo struct {
	stocks map[string]*entity.Stock
}

func (r *fakeStockRepo) Get(ctx context.Context, articuloID string) (*entity.Stock, error) {
	return r.GetForUpdate(ctx, articuloID)
}
func (r *fakeStockRepo) GetForUpdate(_ context.Context, articuloID string) (*entity.Stock, error) {
	if s, ok := r.stocks[articuloID]; ok {
		copia := *s
		return &copia, nil
	}
	return &entity.Stock{ArticuloID: articuloID}, nil
}
func (r *fakeStockRepo) Upsert(_ context.Context, s *entity.Stock) error {
	copia := *s
	r.stocks[s.ArticuloID] = &copia
	return nil
}
func (r *fakeStockRepo) UpdateNiveles(context.Context, string, repository.StockNiveles) error {
	return nil
}
func (r *fakeStockRepo) Listado(context.Context, string) ([]*entity.ArticuloStock, error) {
	return nil, nil
}

type fakeMovimientoRepo struct {
	movimientos []*entity.Movimiento
	failCreate  error
}

func (r *fakeMovimientoRepo) Create(_ context.Context, m *entity.Movimiento) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.movimientos = append(r.movimientos, m)
	return nil
}
func (r *fakeMovimientoRepo) GetByID(context.Context, string) (*entity.MovimientoDetalle, error) {
	return nil, nil
}
func (r *fakeMovimientoRepo) List(context.Context, repository.MovimientoFiltro) ([]*entity.MovimientoDetalle, error) {
	return nil, nil
}
func (r *fakeMovimientoRepo) Estadisticas(context.Context) (*entity.MovimientoEstadisticas, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback con los fakes; si fn falla descarta las
// escrituras de stock para imitar el rollback.
type fakeTxRunner struct {
	movRepo      *fakeMovimientoRepo
	stockRepo    *fakeStockRepo
	articuloRepo *fakeArticuloRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	articuloRepo repository.ArticuloRepository,
) error) error {
	backupStocks := make(map[string]*entity.Stock, len(r.stockRepo.stocks))
	for k, v := range r.stockRepo.stocks {
		copia := *v
		backupStocks[k] = &copia
	}
	backupMovs := len(r.movRepo.movimientos)

	if err := fn(r.movRepo, r.stockRepo, r.articuloRepo); err != nil {
		r.stockRepo.stocks = backupStocks
		r.movRepo.movimientos = r.movRepo.movimientos[:backupMovs]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const articuloID = "art-1"

func newFixture(permitirNegativo bool) (*inventario.RegistrarMovimientoUseCase, *fakeTxRunner) {
	articuloRepo := &fakeArticuloRepo{articulos: map[string]*entity.Articulo{
		articuloID: {ID: articuloID, Codigo: "TORN-01", Nombre: "Tornillo 3mm", Categoria: "ferreteria", Activo: true},
	}}
	runner := &fakeTxRunner{
		movRepo:      &fakeMovimientoRepo{},
		stockRepo:    &fakeStockRepo{stocks: map[string]*entity.Stock{}},
		articuloRepo: articuloRepo,
	}
	uc := inventario.NewRegistrarMovimientoUseCase(runner, articuloRepo, permitirNegativo)
	return uc, runner
}

func registrar(t *testing.T, uc *inventario.RegistrarMovimientoUseCase, tipo string, cantidad int) *inventario.MovimientoResultado {
	t.Helper()
	res, err := uc.RegistrarMovimiento(context.Background(), inventario.MovimientoInput{
		ArticuloID: articuloID,
		UsuarioID:  "user-1",
		Tipo:       tipo,
		Cantidad:   cantidad,
		Motivo:     "test",
	})
	require.NoError(t, err)
	return res
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Secuencia completa: entrada, salida, salida rechazada y ajuste a cero.
func TestRegistrarMovimiento_Secuencia(t *testing.T) {
	uc, runner := newFixture(false)

	// Entrada sobre un artículo sin fila de stock: la crea desde cero.
	res := registrar(t, uc, entity.MovimientoEntrada, 10)
	assert.Equal(t, 0, res.StockAnterior)
	assert.Equal(t, 10, res.StockNuevo)

	res = registrar(t, uc, entity.MovimientoEntrada, 20)
	assert.Equal(t, 10, res.StockAnterior)
	assert.Equal(t, 30, res.StockNuevo)

	res = registrar(t, uc, entity.MovimientoSalida, 25)
	assert.Equal(t, 5, res.StockNuevo)

	// Salida que excede el stock: se rechaza con el detalle y nada cambia.
	_, err := uc.RegistrarMovimiento(context.Background(), inventario.MovimientoInput{
		ArticuloID: articuloID, UsuarioID: "user-1", Tipo: entity.MovimientoSalida, Cantidad: 8,
	})
	var stockErr *domain.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.StockActual)
	assert.Equal(t, 8, stockErr.Solicitado)
	assert.Equal(t, 5, runner.stockRepo.stocks[articuloID].Cantidad)
	assert.Len(t, runner.movRepo.movimientos, 3, "la salida rechazada no deja movimiento")

	// Ajuste a cero: fija el absoluto y el movimiento guarda 0, no el delta.
	res = registrar(t, uc, entity.MovimientoAjuste, 0)
	assert.Equal(t, 5, res.StockAnterior)
	assert.Equal(t, 0, res.StockNuevo)
	ultimo := runner.movRepo.movimientos[len(runner.movRepo.movimientos)-1]
	assert.Equal(t, 0, ultimo.Cantidad, "el movimiento persiste la cantidad original del request")
}

// El movimiento guarda siempre el valor original, nunca el total resultante.
func TestRegistrarMovimiento_GuardaCantidadOriginal(t *testing.T) {
	uc, runner := newFixture(false)

	registrar(t, uc, entity.MovimientoEntrada, 10)
	registrar(t, uc, entity.MovimientoAjuste, 42)

	require.Len(t, runner.movRepo.movimientos, 2)
	assert.Equal(t, 10, runner.movRepo.movimientos[0].Cantidad)
	assert.Equal(t, 42, runner.movRepo.movimientos[1].Cantidad)
	assert.Equal(t, 42, runner.stockRepo.stocks[articuloID].Cantidad)
}

// Con permitirNegativo la salida pasa y el stock queda bajo cero.
func TestRegistrarMovimiento_PermitirNegativo(t *testing.T) {
	uc, _ := newFixture(true)

	registrar(t, uc, entity.MovimientoEntrada, 3)
	res := registrar(t, uc, entity.MovimientoSalida, 10)
	assert.Equal(t, -7, res.StockNuevo)
}

func TestRegistrarMovimiento_Validaciones(t *testing.T) {
	uc, _ := newFixture(false)
	ctx := context.Background()

	casos := []struct {
		nombre string
		input  inventario.MovimientoInput
	}{
		{"tipo desconocido", inventario.MovimientoInput{ArticuloID: articuloID, UsuarioID: "u", Tipo: "traslado", Cantidad: 1}},
		{"entrada con cantidad cero", inventario.MovimientoInput{ArticuloID: articuloID, UsuarioID: "u", Tipo: entity.MovimientoEntrada, Cantidad: 0}},
		{"salida con cantidad negativa", inventario.MovimientoInput{ArticuloID: articuloID, UsuarioID: "u", Tipo: entity.MovimientoSalida, Cantidad: -5}},
		{"ajuste a valor negativo", inventario.MovimientoInput{ArticuloID: articuloID, UsuarioID: "u", Tipo: entity.MovimientoAjuste, Cantidad: -1}},
		{"sin usuario", inventario.MovimientoInput{ArticuloID: articuloID, Tipo: entity.MovimientoEntrada, Cantidad: 1}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.RegistrarMovimiento(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegistrarMovimiento_ArticuloInexistente(t *testing.T) {
	uc, _ := newFixture(false)
	_, err := uc.RegistrarMovimiento(context.Background(), inventario.MovimientoInput{
		ArticuloID: "no-existe", UsuarioID: "u", Tipo: entity.MovimientoEntrada, Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un fallo al persistir el movimiento revierte también el stock.
func TestRegistrarMovimiento_RollbackAnteFallo(t *testing.T) {
	uc, runner := newFixture(false)
	registrar(t, uc, entity.MovimientoEntrada, 10)

	runner.movRepo.failCreate = errors.New("db down")
	_, err := uc.RegistrarMovimiento(context.Background(), inventario.MovimientoInput{
		ArticuloID: articuloID, UsuarioID: "u", Tipo: entity.MovimientoEntrada, Cantidad: 5,
	})
	require.Error(t, err)
	assert.Equal(t, 10, runner.stockRepo.stocks[articuloID].Cantidad, "el stock no debe cambiar si el movimiento no se persistió")
}
