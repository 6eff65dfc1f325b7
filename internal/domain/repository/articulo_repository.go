package repository

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// ArticuloRepository define el puerto de persistencia para artículos.
// GetByID y GetByCodigo solo devuelven artículos activos; nil sin error si
// no existe.
type ArticuloRepository interface {
	Create(ctx context.Context, a *entity.Articulo) error
	GetByID(ctx context.Context, id string) (*entity.Articulo, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Articulo, error)
	List(ctx context.Context) ([]*entity.Articulo, error)
	Update(ctx context.Context, a *entity.Articulo) error
	// SoftDelete marca el artículo como inactivo; nunca borra la fila.
	SoftDelete(ctx context.Context, id string) error
}
