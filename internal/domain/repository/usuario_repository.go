package repository

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, u *entity.Usuario) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// Desactivar marca el usuario como inactivo; los movimientos que registró
	// lo siguen referenciando.
	Desactivar(ctx context.Context, id string) error
}
