package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampos/inventario-api/internal/application/usecase"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}
func (r *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	if u, ok := r.usuarios[id]; ok {
		copia := *u
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}
func (r *fakeUsuarioRepo) List(context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuarioRepo) Count(context.Context) (int, error) { return len(r.usuarios), nil }
func (r *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}
func (r *fakeUsuarioRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.usuarios[id].PasswordHash = hash
	return nil
}
func (r *fakeUsuarioRepo) Desactivar(_ context.Context, id string) error {
	r.usuarios[id].Activo = false
	return nil
}

func newUsuarioFixture() (*usecase.UsuarioUseCase, *fakeUsuarioRepo) {
	repo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"admin-1": {ID: "admin-1", Nombre: "Ana", Email: "ana@acme.com", Rol: entity.RolAdmin, Activo: true, CreatedAt: time.Now()},
		"oper-1":  {ID: "oper-1", Nombre: "Omar", Email: "omar@acme.com", Rol: entity.RolOperador, Activo: true, CreatedAt: time.Now()},
	}}
	return usecase.NewUsuarioUseCase(repo), repo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// Un admin puede cambiar el rol de otro usuario.
func TestActualizarUsuario_CambiaRolDeOtro(t *testing.T) {
	uc, _ := newUsuarioFixture()

	u, err := uc.Actualizar(context.Background(), "admin-1", "oper-1", usecase.ActualizarUsuarioInput{Rol: strPtr(entity.RolEncargado)})
	require.NoError(t, err)
	assert.Equal(t, entity.RolEncargado, u.Rol)
}

// Autoprotección: nadie se quita su propio rol de admin.
func TestActualizarUsuario_NoPuedeDegradarseASiMismo(t *testing.T) {
	uc, repo := newUsuarioFixture()

	_, err := uc.Actualizar(context.Background(), "admin-1", "admin-1", usecase.ActualizarUsuarioInput{Rol: strPtr(entity.RolOperador)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.RolAdmin, repo.usuarios["admin-1"].Rol)
}

// Autoprotección: nadie se desactiva a sí mismo, ni por update ni por delete.
func TestUsuario_NoPuedeDesactivarseASiMismo(t *testing.T) {
	uc, repo := newUsuarioFixture()

	_, err := uc.Actualizar(context.Background(), "admin-1", "admin-1", usecase.ActualizarUsuarioInput{Activo: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Desactivar(context.Background(), "admin-1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, repo.usuarios["admin-1"].Activo)
}

// El propio nombre o mantener el rol admin sí está permitido.
func TestActualizarUsuario_PuedeEditarseSinDegradarse(t *testing.T) {
	uc, _ := newUsuarioFixture()

	u, err := uc.Actualizar(context.Background(), "admin-1", "admin-1", usecase.ActualizarUsuarioInput{
		Nombre: strPtr("Ana María"),
		Rol:    strPtr(entity.RolAdmin),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", u.Nombre)
	assert.Equal(t, entity.RolAdmin, u.Rol)
}

func TestActualizarUsuario_EmailEnUso(t *testing.T) {
	uc, _ := newUsuarioFixture()

	_, err := uc.Actualizar(context.Background(), "admin-1", "oper-1", usecase.ActualizarUsuarioInput{Email: strPtr("ana@acme.com")})
	assert.ErrorIs(t, err, domain.ErrEmailEnUso)
}

func TestActualizarUsuario_RolInvalido(t *testing.T) {
	uc, _ := newUsuarioFixture()

	_, err := uc.Actualizar(context.Background(), "admin-1", "oper-1", usecase.ActualizarUsuarioInput{Rol: strPtr("superadmin")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDesactivarUsuario_OtroUsuario(t *testing.T) {
	uc, repo := newUsuarioFixture()

	require.NoError(t, uc.Desactivar(context.Background(), "admin-1", "oper-1"))
	assert.False(t, repo.usuarios["oper-1"].Activo)
}

func TestUsuario_TargetInexistente(t *testing.T) {
	uc, _ := newUsuarioFixture()

	_, err := uc.Actualizar(context.Background(), "admin-1", "no-existe", usecase.ActualizarUsuarioInput{Nombre: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Desactivar(context.Background(), "admin-1", "no-existe"), domain.ErrNotFound)
}
