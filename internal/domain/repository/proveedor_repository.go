package repository

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// ProveedorRepository define el puerto de persistencia para proveedores.
// GetByID solo devuelve proveedores activos; nil sin error si no existe.
type ProveedorRepository interface {
	Create(ctx context.Context, p *entity.Proveedor) error
	GetByID(ctx context.Context, id string) (*entity.Proveedor, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Proveedor, error)
	List(ctx context.Context) ([]*entity.Proveedor, error)
	Search(ctx context.Context, termino string) ([]*entity.Proveedor, error)
	Update(ctx context.Context, p *entity.Proveedor) error
	SoftDelete(ctx context.Context, id string) error
}
