package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// ArticuloUseCase CRUD de artículos. El alta con stock inicial pasa por el
// motor de movimientos para que el primer saldo también quede asentado como
// movimiento.
type ArticuloUseCase struct {
	txRunner      inventario.TxRunner
	articuloRepo  repository.ArticuloRepository
	stockRepo     repository.StockRepository
	proveedorRepo repository.ProveedorRepository
	ledger        *inventario.RegistrarMovimientoUseCase
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(
	txRunner inventario.TxRunner,
	articuloRepo repository.ArticuloRepository,
	stockRepo repository.StockRepository,
	proveedorRepo repository.ProveedorRepository,
	ledger *inventario.RegistrarMovimientoUseCase,
) *ArticuloUseCase {
	return &ArticuloUseCase{
		txRunner:      txRunner,
		articuloRepo:  articuloRepo,
		stockRepo:     stockRepo,
		proveedorRepo: proveedorRepo,
		ledger:        ledger,
	}
}

// CrearArticuloInput entrada para el alta de un artículo.
type CrearArticuloInput struct {
	Codigo         string
	Nombre         string
	Descripcion    string
	Categoria      string
	ProveedorID    *string
	FechaCaducidad *time.Time
	UsuarioID      string
	StockInicial   int
	StockMinimo    int
	StockMaximo    int
	Ubicacion      string
}

// Crear da de alta un artículo con su registro de stock y, si hay stock
// inicial, el movimiento de entrada correspondiente; todo en una
// transacción. Código repetido devuelve domain.ErrDuplicate.
func (uc *ArticuloUseCase) Crear(ctx context.Context, input CrearArticuloInput) (*entity.Articulo, error) {
	if input.Codigo == "" || input.Nombre == "" || input.Categoria == "" || input.UsuarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.StockInicial < 0 || input.StockMinimo < 0 || input.StockMaximo < 0 {
		return nil, domain.ErrInvalidInput
	}

	if input.ProveedorID != nil {
		proveedor, err := uc.proveedorRepo.GetByID(ctx, *input.ProveedorID)
		if err != nil {
			return nil, err
		}
		if proveedor == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	articulo := &entity.Articulo{
		ID:             uuid.New().String(),
		Codigo:         input.Codigo,
		Nombre:         input.Nombre,
		Descripcion:    input.Descripcion,
		Categoria:      input.Categoria,
		ProveedorID:    input.ProveedorID,
		FechaCaducidad: input.FechaCaducidad,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		articuloRepo repository.ArticuloRepository,
	) error {
		if err := articuloRepo.Create(ctx, articulo); err != nil {
			return err
		}
		if err := stockRepo.Upsert(ctx, &entity.Stock{
			ArticuloID:  articulo.ID,
			Cantidad:    0,
			StockMinimo: input.StockMinimo,
			StockMaximo: input.StockMaximo,
			Ubicacion:   input.Ubicacion,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}
		if input.StockInicial > 0 {
			_, err := uc.ledger.RegistrarEnTx(ctx, movRepo, stockRepo, inventario.MovimientoInput{
				ArticuloID: articulo.ID,
				UsuarioID:  input.UsuarioID,
				Tipo:       entity.MovimientoEntrada,
				Cantidad:   input.StockInicial,
				Motivo:     "Stock inicial",
			}, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articulo, nil
}

// Listar devuelve los artículos activos.
func (uc *ArticuloUseCase) Listar(ctx context.Context) ([]*entity.Articulo, error) {
	return uc.articuloRepo.List(ctx)
}

// Obtener devuelve un artículo activo con su stock actual.
func (uc *ArticuloUseCase) Obtener(ctx context.Context, id string) (*entity.Articulo, *entity.Stock, error) {
	articulo, err := uc.articuloRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if articulo == nil {
		return nil, nil, domain.ErrNotFound
	}
	stock, err := uc.stockRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return articulo, stock, nil
}

// ActualizarArticuloInput field set de actualización; nil = no tocar.
type ActualizarArticuloInput struct {
	Nombre         *string
	Descripcion    *string
	Categoria      *string
	ProveedorID    *string
	FechaCaducidad *time.Time
}

// Actualizar aplica los campos presentes del field set. El código no es
// modificable una vez creado el artículo.
func (uc *ArticuloUseCase) Actualizar(ctx context.Context, id string, input ActualizarArticuloInput) (*entity.Articulo, error) {
	articulo, err := uc.articuloRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}

	if input.ProveedorID != nil && *input.ProveedorID != "" {
		proveedor, err := uc.proveedorRepo.GetByID(ctx, *input.ProveedorID)
		if err != nil {
			return nil, err
		}
		if proveedor == nil {
			return nil, domain.ErrNotFound
		}
	}

	if input.Nombre != nil {
		if *input.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		articulo.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		articulo.Descripcion = *input.Descripcion
	}
	if input.Categoria != nil {
		if *input.Categoria == "" {
			return nil, domain.ErrInvalidInput
		}
		articulo.Categoria = *input.Categoria
	}
	if input.ProveedorID != nil {
		if *input.ProveedorID == "" {
			articulo.ProveedorID = nil
		} else {
			articulo.ProveedorID = input.ProveedorID
		}
	}
	if input.FechaCaducidad != nil {
		articulo.FechaCaducidad = input.FechaCaducidad
	}
	articulo.UpdatedAt = time.Now()

	if err := uc.articuloRepo.Update(ctx, articulo); err != nil {
		return nil, err
	}
	return articulo, nil
}

// Eliminar hace soft delete: el artículo queda inactivo pero sus movimientos
// históricos se conservan.
func (uc *ArticuloUseCase) Eliminar(ctx context.Context, id string) error {
	articulo, err := uc.articuloRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if articulo == nil {
		return domain.ErrNotFound
	}
	return uc.articuloRepo.SoftDelete(ctx, id)
}
