package usecase

import (
	"context"
	"time"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios (solo admin).
// La regla de autoprotección vive aquí: un usuario no puede quitarse su
// propio rol de administrador ni desactivar su propia cuenta. Se aplica
// comparando el id del actor con el del objetivo antes de cualquier
// mutación.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

// Listar devuelve todos los usuarios.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.usuarioRepo.List(ctx)
}

// ActualizarUsuarioInput field set de actualización; nil = no tocar.
type ActualizarUsuarioInput struct {
	Nombre *string
	Email  *string
	Rol    *string
	Activo *bool
}

// Actualizar aplica los campos presentes sobre el usuario objetivo.
// actorID es el usuario autenticado que ejecuta la operación.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, actorID, targetID string, input ActualizarUsuarioInput) (*entity.Usuario, error) {
	if input.Rol != nil && !entity.RolValido(*input.Rol) {
		return nil, domain.ErrInvalidInput
	}

	// Autoprotección: nadie se degrada ni se desactiva a sí mismo.
	if actorID == targetID {
		if input.Rol != nil && *input.Rol != entity.RolAdmin {
			return nil, domain.ErrForbidden
		}
		if input.Activo != nil && !*input.Activo {
			return nil, domain.ErrForbidden
		}
	}

	usuario, err := uc.usuarioRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}

	if input.Nombre != nil {
		if *input.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		usuario.Nombre = *input.Nombre
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		existente, err := uc.usuarioRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != targetID {
			return nil, domain.ErrEmailEnUso
		}
		usuario.Email = *input.Email
	}
	if input.Rol != nil {
		usuario.Rol = *input.Rol
	}
	if input.Activo != nil {
		usuario.Activo = *input.Activo
	}
	usuario.UpdatedAt = time.Now()

	if err := uc.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Desactivar marca al usuario objetivo como inactivo. Rechaza la propia
// cuenta del actor.
func (uc *UsuarioUseCase) Desactivar(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrForbidden
	}
	usuario, err := uc.usuarioRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}
	return uc.usuarioRepo.Desactivar(ctx, targetID)
}
