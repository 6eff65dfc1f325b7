package solicitudes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampos/inventario-api/internal/application/solicitudes"
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
func (r *fakeArticuloRepo) GetByCodigo(context.Context, string) (*entity.Articulo, error) {
	return nil, nil
}
func (r *fakeArticuloRepo) List(context.Context) ([]*entity.Articulo, error) { return nil, nil }
func (r *fakeArticuloRepo) Update(context.Context, *entity.Articulo) error   { return nil }
func (r *fakeArticuloRepo) SoftDelete(context.Context, string) error         { return nil }

type fakeSolicitudRepo struct {
	solicitudes map[string]*entity.Solicitud
	detalles    map[string][]*entity.SolicitudDetalle
}

func (r *fakeSolicitudRepo) CreateConDetalles(_ context.Context, s *entity.Solicitud, detalles []*entity.SolicitudDetalle) error {
	copia := *s
	r.solicitudes[s.ID] = &copia
	r.detalles[s.ID] = detalles
	return nil
}
func (r *fakeSolicitudRepo) GetByID(_ context.Context, id string) (*entity.Solicitud, error) {
	if s, ok := r.solicitudes[id]; ok {
		copia := *s
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeSolicitudRepo) GetDetalles(_ context.Context, solicitudID string) ([]*entity.SolicitudDetalleInfo, error) {
	var out []*entity.SolicitudDetalleInfo
	for _, d := range r.detalles[solicitudID] {
		out = append(out, &entity.SolicitudDetalleInfo{SolicitudDetalle: *d})
	}
	return out, nil
}
func (r *fakeSolicitudRepo) UpdateEstado(_ context.Context, id, estado string) error {
	r.solicitudes[id].Estado = estado
	return nil
}
func (r *fakeSolicitudRepo) List(_ context.Context, f repository.SolicitudFiltro) ([]*entity.SolicitudResumen, error) {
	var out []*entity.SolicitudResumen
	for _, s := range r.solicitudes {
		if f.UsuarioID != "" && s.UsuarioID != f.UsuarioID {
			continue
		}
		if f.Estado != "" && s.Estado != f.Estado {
			continue
		}
		out = append(out, &entity.SolicitudResumen{Solicitud: *s, TotalItems: len(r.detalles[s.ID])})
	}
	return out, nil
}

type fakeSolicitudRunner struct {
	repo *fakeSolicitudRepo
}

func (r *fakeSolicitudRunner) RunSolicitud(_ context.Context, fn func(
	solicitudRepo repository.SolicitudRepository,
) error) error {
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newFixture() (*solicitudes.SolicitudUseCase, *fakeSolicitudRepo) {
	articuloRepo := &fakeArticuloRepo{articulos: map[string]*entity.Articulo{
		"art-1": {ID: "art-1", Codigo: "A1", Nombre: "Articulo 1", Activo: true},
		"art-2": {ID: "art-2", Codigo: "A2", Nombre: "Articulo 2", Activo: true},
	}}
	solicitudRepo := &fakeSolicitudRepo{
		solicitudes: map[string]*entity.Solicitud{},
		detalles:    map[string][]*entity.SolicitudDetalle{},
	}
	runner := &fakeSolicitudRunner{repo: solicitudRepo}
	return solicitudes.NewSolicitudUseCase(runner, solicitudRepo, articuloRepo), solicitudRepo
}

func crear(t *testing.T, uc *solicitudes.SolicitudUseCase, usuarioID string) *entity.Solicitud {
	t.Helper()
	s, err := uc.Crear(context.Background(), solicitudes.CrearSolicitudInput{
		UsuarioID: usuarioID,
		Items: []solicitudes.SolicitudItemInput{
			{ArticuloID: "art-1", Cantidad: 3},
			{ArticuloID: "art-2", Cantidad: 1},
		},
	})
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_NaceEnPendienteConSusLineas(t *testing.T) {
	uc, repo := newFixture()

	s := crear(t, uc, "sol-1")
	assert.Equal(t, entity.SolicitudPendiente, s.Estado)
	assert.WithinDuration(t, time.Now(), s.FechaCreacion, time.Minute)
	require.Len(t, repo.detalles[s.ID], 2)
	assert.Equal(t, 3, repo.detalles[s.ID][0].Cantidad)
}

func TestCrear_Validaciones(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Crear(ctx, solicitudes.CrearSolicitudInput{UsuarioID: "sol-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin items")

	_, err = uc.Crear(ctx, solicitudes.CrearSolicitudInput{
		UsuarioID: "sol-1",
		Items:     []solicitudes.SolicitudItemInput{{ArticuloID: "art-1", Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Crear(ctx, solicitudes.CrearSolicitudInput{
		UsuarioID: "sol-1",
		Items:     []solicitudes.SolicitudItemInput{{ArticuloID: "no-existe", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "artículo inexistente")
}

// Un solicitante solo ve sus propias solicitudes; otros roles ven todas.
func TestListar_SolicitanteSoloVeLasSuyas(t *testing.T) {
	uc, _ := newFixture()
	mia := crear(t, uc, "sol-1")
	crear(t, uc, "sol-2")

	propias, err := uc.Listar(context.Background(), "sol-1", entity.RolSolicitante, "")
	require.NoError(t, err)
	require.Len(t, propias, 1)
	assert.Equal(t, mia.ID, propias[0].ID)

	todas, err := uc.Listar(context.Background(), "admin-1", entity.RolAdmin, "")
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestListar_EstadoDesconocido(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Listar(context.Background(), "admin-1", entity.RolAdmin, "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El detalle de una solicitud ajena está vedado para un solicitante.
func TestObtener_SolicitanteNoVeAjenas(t *testing.T) {
	uc, _ := newFixture()
	ajena := crear(t, uc, "sol-2")

	_, err := uc.Obtener(context.Background(), ajena.ID, "sol-1", entity.RolSolicitante)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	det, err := uc.Obtener(context.Background(), ajena.ID, "sol-2", entity.RolSolicitante)
	require.NoError(t, err)
	assert.Len(t, det.Items, 2)

	det, err = uc.Obtener(context.Background(), ajena.ID, "enc-1", entity.RolEncargado)
	require.NoError(t, err)
	assert.Equal(t, ajena.ID, det.Solicitud.ID)
}

func TestObtener_Inexistente(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Obtener(context.Background(), "no-existe", "sol-1", entity.RolSolicitante)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Admin y encargado pueden aprobar, rechazar o completar libremente.
func TestCambiarEstado_AdminYEncargado(t *testing.T) {
	uc, repo := newFixture()
	s := crear(t, uc, "sol-1")

	aprobada, err := uc.CambiarEstado(context.Background(), s.ID, entity.SolicitudAprobado, entity.RolEncargado)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudAprobado, aprobada.Estado)
	assert.Equal(t, entity.SolicitudAprobado, repo.solicitudes[s.ID].Estado)

	rechazada, err := uc.CambiarEstado(context.Background(), s.ID, entity.SolicitudRechazado, entity.RolAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudRechazado, rechazada.Estado)
}

// Un operador solo puede completar, y solo solicitudes ya aprobadas.
func TestCambiarEstado_ReglasDelOperador(t *testing.T) {
	uc, _ := newFixture()
	s := crear(t, uc, "sol-1")
	ctx := context.Background()

	_, err := uc.CambiarEstado(ctx, s.ID, entity.SolicitudAprobado, entity.RolOperador)
	assert.ErrorIs(t, err, domain.ErrForbidden, "el operador no aprueba")

	_, err = uc.CambiarEstado(ctx, s.ID, entity.SolicitudCompletado, entity.RolOperador)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se completa una pendiente")

	_, err = uc.CambiarEstado(ctx, s.ID, entity.SolicitudAprobado, entity.RolEncargado)
	require.NoError(t, err)

	completada, err := uc.CambiarEstado(ctx, s.ID, entity.SolicitudCompletado, entity.RolOperador)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudCompletado, completada.Estado)
}

func TestCambiarEstado_EstadoDesconocido(t *testing.T) {
	uc, _ := newFixture()
	s := crear(t, uc, "sol-1")

	_, err := uc.CambiarEstado(context.Background(), s.ID, "archivado", entity.RolAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_Inexistente(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CambiarEstado(context.Background(), "no-existe", entity.SolicitudAprobado, entity.RolAdmin)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
