package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// ProveedorUseCase CRUD y búsqueda de proveedores.
type ProveedorUseCase struct {
	proveedorRepo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(proveedorRepo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedorRepo: proveedorRepo}
}

// CrearProveedorInput entrada para el alta de un proveedor.
type CrearProveedorInput struct {
	Codigo    string
	Nombre    string
	Contacto  string
	Telefono  string
	Email     string
	Direccion string
	Ciudad    string
	Pais      string
	Notas     string
}

// Crear da de alta un proveedor. Código repetido devuelve domain.ErrDuplicate.
func (uc *ProveedorUseCase) Crear(ctx context.Context, input CrearProveedorInput) (*entity.Proveedor, error) {
	if input.Codigo == "" || input.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		Codigo:    input.Codigo,
		Nombre:    input.Nombre,
		Contacto:  input.Contacto,
		Telefono:  input.Telefono,
		Email:     input.Email,
		Direccion: input.Direccion,
		Ciudad:    input.Ciudad,
		Pais:      input.Pais,
		Notas:     input.Notas,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.proveedorRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Listar devuelve los proveedores activos.
func (uc *ProveedorUseCase) Listar(ctx context.Context) ([]*entity.Proveedor, error) {
	return uc.proveedorRepo.List(ctx)
}

// Obtener devuelve un proveedor activo por id.
func (uc *ProveedorUseCase) Obtener(ctx context.Context, id string) (*entity.Proveedor, error) {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Buscar busca proveedores por nombre, código, contacto o ciudad.
func (uc *ProveedorUseCase) Buscar(ctx context.Context, termino string) ([]*entity.Proveedor, error) {
	if termino == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.proveedorRepo.Search(ctx, termino)
}

// ActualizarProveedorInput field set de actualización; nil = no tocar.
type ActualizarProveedorInput struct {
	Nombre    *string
	Contacto  *string
	Telefono  *string
	Email     *string
	Direccion *string
	Ciudad    *string
	Pais      *string
	Notas     *string
}

// Actualizar aplica los campos presentes del field set.
func (uc *ProveedorUseCase) Actualizar(ctx context.Context, id string, input ActualizarProveedorInput) (*entity.Proveedor, error) {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if input.Nombre != nil {
		if *input.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = *input.Nombre
	}
	if input.Contacto != nil {
		p.Contacto = *input.Contacto
	}
	if input.Telefono != nil {
		p.Telefono = *input.Telefono
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.Direccion != nil {
		p.Direccion = *input.Direccion
	}
	if input.Ciudad != nil {
		p.Ciudad = *input.Ciudad
	}
	if input.Pais != nil {
		p.Pais = *input.Pais
	}
	if input.Notas != nil {
		p.Notas = *input.Notas
	}
	p.UpdatedAt = time.Now()

	if err := uc.proveedorRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Eliminar hace soft delete; los artículos conservan su referencia.
func (uc *ProveedorUseCase) Eliminar(ctx context.Context, id string) error {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.proveedorRepo.SoftDelete(ctx, id)
}
