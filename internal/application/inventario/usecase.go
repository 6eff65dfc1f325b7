// Package inventario contiene el motor de movimientos: la única vía
// permitida para mutar la cantidad en stock de un artículo.
package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// RegistrarMovimientoUseCase registra movimientos (entrada, salida, ajuste)
// de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el
// stock y Commit/Rollback todo-o-nada.
type RegistrarMovimientoUseCase struct {
	txRunner     TxRunner
	articuloRepo repository.ArticuloRepository
	// permitirNegativo deja pasar salidas que dejan la cantidad en negativo.
	// La política vive en configuración, fuera del motor.
	permitirNegativo bool
}

// NewRegistrarMovimientoUseCase construye el motor de movimientos.
func NewRegistrarMovimientoUseCase(txRunner TxRunner, articuloRepo repository.ArticuloRepository, permitirNegativo bool) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{
		txRunner:         txRunner,
		articuloRepo:     articuloRepo,
		permitirNegativo: permitirNegativo,
	}
}

// MovimientoInput es la entrada para registrar un movimiento. UsuarioID es
// el usuario autenticado, inyectado explícitamente por el caller.
type MovimientoInput struct {
	ArticuloID    string
	UsuarioID     string
	Tipo          string
	Cantidad      int
	Motivo        string
	Observaciones string
}

// MovimientoResultado es el movimiento creado junto con la cantidad previa
// y la resultante.
type MovimientoResultado struct {
	Movimiento    *entity.Movimiento
	StockAnterior int
	StockNuevo    int
}

// validar rechaza la entrada antes de abrir cualquier transacción.
// entrada/salida exigen cantidad > 0; ajuste admite cantidad >= 0 (el valor
// es el nuevo absoluto, y un ajuste a negativo se rechaza igual que una
// salida sin respaldo).
func validar(input MovimientoInput) error {
	if input.ArticuloID == "" || input.UsuarioID == "" {
		return domain.ErrInvalidInput
	}
	if !entity.TipoMovimientoValido(input.Tipo) {
		return domain.ErrInvalidInput
	}
	if input.Tipo == entity.MovimientoAjuste {
		if input.Cantidad < 0 {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if input.Cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// RegistrarMovimiento valida la entrada, abre una transacción, bloquea la
// fila de stock, aplica el movimiento y hace Commit (o Rollback ante
// cualquier fallo). El movimiento persiste la cantidad original del request,
// nunca el total calculado.
func (uc *RegistrarMovimientoUseCase) RegistrarMovimiento(ctx context.Context, input MovimientoInput) (*MovimientoResultado, error) {
	if err := validar(input); err != nil {
		return nil, err
	}

	articulo, err := uc.articuloRepo.GetByID(ctx, input.ArticuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}

	var resultado *MovimientoResultado
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		_ repository.ArticuloRepository,
	) error {
		res, err := uc.aplicar(ctx, movRepo, stockRepo, input, time.Now())
		if err != nil {
			return err
		}
		resultado = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// RegistrarEnTx aplica un movimiento usando repositorios ya atados a la
// transacción del caller. Lo usan la recepción de órdenes de compra y el
// alta de artículos con stock inicial para que sus movimientos queden en la
// misma unidad atómica.
func (uc *RegistrarMovimientoUseCase) RegistrarEnTx(
	ctx context.Context,
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	input MovimientoInput,
	now time.Time,
) (*MovimientoResultado, error) {
	if err := validar(input); err != nil {
		return nil, err
	}
	return uc.aplicar(ctx, movRepo, stockRepo, input, now)
}

// aplicar ejecuta el read-modify-write bajo el bloqueo de fila del stock.
func (uc *RegistrarMovimientoUseCase) aplicar(
	ctx context.Context,
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	input MovimientoInput,
	now time.Time,
) (*MovimientoResultado, error) {
	// Bloquea la fila de stock; si el artículo aún no tiene fila, el repo
	// devuelve un registro en cero y el Upsert posterior la crea.
	stock, err := stockRepo.GetForUpdate(ctx, input.ArticuloID)
	if err != nil {
		return nil, err
	}

	anterior := stock.Cantidad
	var nueva int
	switch input.Tipo {
	case entity.MovimientoEntrada:
		nueva = anterior + input.Cantidad
	case entity.MovimientoSalida:
		if anterior < input.Cantidad && !uc.permitirNegativo {
			return nil, &domain.StockInsuficienteError{StockActual: anterior, Solicitado: input.Cantidad}
		}
		nueva = anterior - input.Cantidad
	case entity.MovimientoAjuste:
		nueva = input.Cantidad
	default:
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movimiento{
		ID:            uuid.New().String(),
		ArticuloID:    input.ArticuloID,
		UsuarioID:     input.UsuarioID,
		Tipo:          input.Tipo,
		Cantidad:      input.Cantidad,
		Motivo:        input.Motivo,
		Observaciones: input.Observaciones,
		Fecha:         now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}

	stock.Cantidad = nueva
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(ctx, stock); err != nil {
		return nil, err
	}

	return &MovimientoResultado{Movimiento: mov, StockAnterior: anterior, StockNuevo: nueva}, nil
}
