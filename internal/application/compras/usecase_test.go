package compras_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampos/inventario-api/internal/application/compras"
	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProveedorRepo struct {
	proveedores map[string]*entity.Proveedor
}

func (r *fakeProveedorRepo) Create(_ context.Context, p *entity.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}
func (r *fakeProveedorRepo) GetByID(_ context.Context, id string) (*entity.Proveedor, error) {
	return r.proveedores[id], nil
}
func (r *fakeProveedorRepo) GetByCodigo(context.Context, string) (*entity.Proveedor, error) {
	return nil, nil
}
func (r *fakeProveedorRepo) List(context.Context) ([]*entity.Proveedor, error) { return nil, nil }
func (r *fakeProveedorRepo) Search(context.Context, string) ([]*entity.Proveedor, error) {
	return nil, nil
}
func (r *fakeProveedorRepo) Update(context.Context, *entity.Proveedor) error { return nil }
func (r *fakeProveedorRepo) SoftDelete(context.Context, string) error        { return nil }

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
func (r *fakeArticuloRepo) GetByCodigo(context.Context, string) (*entity.Articulo, error) {
	return nil, nil
}
func (r *fakeArticuloRepo) List(context.Context) ([]*entity.Articulo, error) { return nil, nil }
func (r *fakeArticuloRepo) Update(context.Context, *entity.Articulo) error { return nil }
func (r *fakeArticuloRepo) SoftDelete(context.Context, string) error      { return nil }

type fakeStockRepo struct {
	stocks map[string]*entity.Stock
}

func (r *fakeStockRepo) Get(ctx context.Context, id string) (*entity.Stock, error) {
	return r.GetForUpdate(ctx, id)
}
func (r *fakeStockRepo) GetForUpdate(_ context.Context, id string) (*entity.Stock, error) {
	if s, ok := r.stocks[id]; ok {
		copia := *s
		return &copia, nil
	}
	return &entity.Stock{ArticuloID: id}, nil
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
}

func (r *fakeMovimientoRepo) Create(_ context.Context, m *entity.Movimiento) error {
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

type fakeCompraRepo struct {
	compras  map[string]*entity.Compra
	detalles map[string][]*entity.CompraDetalle
	ordenes  map[string]bool // numero_orden usados
}

func (r *fakeCompraRepo) CreateConDetalles(_ context.Context, c *entity.Compra, detalles []*entity.CompraDetalle) error {
	if r.ordenes[c.NumeroOrden] {
		return domain.ErrDuplicate
	}
	r.ordenes[c.NumeroOrden] = true
	copia := *c
	r.compras[c.ID] = &copia
	r.detalles[c.ID] = detalles
	return nil
}
func (r *fakeCompraRepo) GetByID(_ context.Context, id string) (*entity.Compra, error) {
	if c, ok := r.compras[id]; ok {
		copia := *c
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeCompraRepo) GetForUpdate(ctx context.Context, id string) (*entity.Compra, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeCompraRepo) GetDetalles(_ context.Context, compraID string) ([]*entity.CompraDetalle, error) {
	return r.detalles[compraID], nil
}
func (r *fakeCompraRepo) UpdateEstado(_ context.Context, id, estado string, fechaRecepcion *time.Time) error {
	c := r.compras[id]
	c.Estado = estado
	c.FechaRecepcion = fechaRecepcion
	return nil
}
func (r *fakeCompraRepo) List(context.Context, repository.CompraFiltro) ([]*entity.CompraResumen, error) {
	return nil, nil
}

// fakeTxRunner pasa los fakes al callback; el rollback de los fakes no se
// simula aquí porque estos tests solo ejercitan caminos que comitean o que
// fallan antes de escribir.
type fakeTxRunner struct {
	movRepo    *fakeMovimientoRepo
	stockRepo  *fakeStockRepo
	compraRepo *fakeCompraRepo
}

func (r *fakeTxRunner) RunCompra(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	compraRepo repository.CompraRepository,
) error) error {
	return fn(r.movRepo, r.stockRepo, r.compraRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc     *compras.CompraUseCase
	runner *fakeTxRunner
}

func newFixture() *fixture {
	proveedorRepo := &fakeProveedorRepo{proveedores: map[string]*entity.Proveedor{
		"prov-1": {ID: "prov-1", Codigo: "ACME", Nombre: "ACME SA", Activo: true},
	}}
	articuloRepo := &fakeArticuloRepo{articulos: map[string]*entity.Articulo{
		"art-1": {ID: "art-1", Codigo: "A1", Nombre: "Articulo 1", Activo: true},
		"art-2": {ID: "art-2", Codigo: "A2", Nombre: "Articulo 2", Activo: true},
	}}
	runner := &fakeTxRunner{
		movRepo:   &fakeMovimientoRepo{},
		stockRepo: &fakeStockRepo{stocks: map[string]*entity.Stock{}},
		compraRepo: &fakeCompraRepo{
			compras:  map[string]*entity.Compra{},
			detalles: map[string][]*entity.CompraDetalle{},
			ordenes:  map[string]bool{},
		},
	}
	ledger := inventario.NewRegistrarMovimientoUseCase(nil, articuloRepo, false)
	uc := compras.NewCompraUseCase(runner, runner.compraRepo, proveedorRepo, articuloRepo, ledger)
	return &fixture{uc: uc, runner: runner}
}

func (f *fixture) crearOrden(t *testing.T, numero string) *entity.Compra {
	t.Helper()
	compra, err := f.uc.CrearCompra(context.Background(), compras.CrearCompraInput{
		ProveedorID: "prov-1",
		UsuarioID:   "user-1",
		NumeroOrden: numero,
		Items: []compras.CompraItemInput{
			{ArticuloID: "art-1", Cantidad: 10},
			{ArticuloID: "art-2", Cantidad: 4},
		},
	})
	require.NoError(t, err)
	return compra
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearCompra_NaceEnPendienteSinTocarStock(t *testing.T) {
	f := newFixture()
	compra := f.crearOrden(t, "OC-001")

	assert.Equal(t, entity.CompraPendiente, compra.Estado)
	assert.Nil(t, compra.FechaRecepcion)
	assert.Empty(t, f.runner.movRepo.movimientos, "crear la orden no genera movimientos")
	assert.Empty(t, f.runner.stockRepo.stocks, "crear la orden no toca el stock")
}

func TestCrearCompra_NumeroOrdenDuplicado(t *testing.T) {
	f := newFixture()
	f.crearOrden(t, "OC-001")

	_, err := f.uc.CrearCompra(context.Background(), compras.CrearCompraInput{
		ProveedorID: "prov-1", UsuarioID: "user-1", NumeroOrden: "OC-001",
		Items: []compras.CompraItemInput{{ArticuloID: "art-1", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCrearCompra_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.CrearCompra(ctx, compras.CrearCompraInput{
		ProveedorID: "prov-1", UsuarioID: "u", NumeroOrden: "OC-X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin items")

	_, err = f.uc.CrearCompra(ctx, compras.CrearCompraInput{
		ProveedorID: "prov-1", UsuarioID: "u", NumeroOrden: "OC-X",
		Items: []compras.CompraItemInput{{ArticuloID: "art-1", Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.uc.CrearCompra(ctx, compras.CrearCompraInput{
		ProveedorID: "no-existe", UsuarioID: "u", NumeroOrden: "OC-X",
		Items: []compras.CompraItemInput{{ArticuloID: "art-1", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")

	_, err = f.uc.CrearCompra(ctx, compras.CrearCompraInput{
		ProveedorID: "prov-1", UsuarioID: "u", NumeroOrden: "OC-X",
		Items: []compras.CompraItemInput{{ArticuloID: "no-existe", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "artículo inexistente")
}

// La recepción asienta una entrada por línea y sella la fecha.
func TestCambiarEstado_RecepcionGeneraEntradas(t *testing.T) {
	f := newFixture()
	compra := f.crearOrden(t, "OC-001")

	recibida, err := f.uc.CambiarEstado(context.Background(), compra.ID, entity.CompraRecibida, "user-2")
	require.NoError(t, err)

	assert.Equal(t, entity.CompraRecibida, recibida.Estado)
	require.NotNil(t, recibida.FechaRecepcion)

	require.Len(t, f.runner.movRepo.movimientos, 2, "una entrada por línea")
	for _, m := range f.runner.movRepo.movimientos {
		assert.Equal(t, entity.MovimientoEntrada, m.Tipo)
		assert.Equal(t, "user-2", m.UsuarioID, "el movimiento referencia a quien recibió, no a quien creó la orden")
		assert.Equal(t, "Recepción orden #OC-001", m.Motivo)
	}
	assert.Equal(t, 10, f.runner.stockRepo.stocks["art-1"].Cantidad)
	assert.Equal(t, 4, f.runner.stockRepo.stocks["art-2"].Cantidad)
}

// Una segunda recepción de la misma orden se rechaza sin duplicar stock.
func TestCambiarEstado_DobleRecepcionRechazada(t *testing.T) {
	f := newFixture()
	compra := f.crearOrden(t, "OC-001")

	_, err := f.uc.CambiarEstado(context.Background(), compra.ID, entity.CompraRecibida, "user-2")
	require.NoError(t, err)

	_, err = f.uc.CambiarEstado(context.Background(), compra.ID, entity.CompraRecibida, "user-2")
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Len(t, f.runner.movRepo.movimientos, 2, "la segunda recepción no genera movimientos")
	assert.Equal(t, 10, f.runner.stockRepo.stocks["art-1"].Cantidad, "el stock no se duplica")
}

func TestCambiarEstado_CancelarNoTocaStock(t *testing.T) {
	f := newFixture()
	compra := f.crearOrden(t, "OC-001")

	cancelada, err := f.uc.CambiarEstado(context.Background(), compra.ID, entity.CompraCancelada, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.CompraCancelada, cancelada.Estado)
	assert.Nil(t, cancelada.FechaRecepcion)
	assert.Empty(t, f.runner.movRepo.movimientos)
	assert.Empty(t, f.runner.stockRepo.stocks)
}

// cancelada también es terminal: no se puede recibir después.
func TestCambiarEstado_CanceladaEsTerminal(t *testing.T) {
	f := newFixture()
	compra := f.crearOrden(t, "OC-001")

	_, err := f.uc.CambiarEstado(context.Background(), compra.ID, entity.CompraCancelada, "user-1")
	require.NoError(t, err)

	_, err = f.uc.CambiarEstado(context.Background(), compra.ID, entity.CompraRecibida, "user-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCambiarEstado_DestinoInvalido(t *testing.T) {
	f := newFixture()
	compra := f.crearOrden(t, "OC-001")

	_, err := f.uc.CambiarEstado(context.Background(), compra.ID, "pendiente", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "volver a pendiente no es una transición válida")

	_, err = f.uc.CambiarEstado(context.Background(), compra.ID, "enviada", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_OrdenInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CambiarEstado(context.Background(), "no-existe", entity.CompraRecibida, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
