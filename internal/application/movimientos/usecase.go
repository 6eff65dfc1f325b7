// Package movimientos expone el lado de lectura del historial de
// movimientos; el registro pasa siempre por el paquete inventario.
package movimientos

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// ConsultaUseCase listados y estadísticas de movimientos.
type ConsultaUseCase struct {
	movRepo repository.MovimientoRepository
}

// NewConsultaUseCase construye el caso de uso.
func NewConsultaUseCase(movRepo repository.MovimientoRepository) *ConsultaUseCase {
	return &ConsultaUseCase{movRepo: movRepo}
}

// Listar devuelve movimientos con filtros opcionales de tipo y artículo.
func (uc *ConsultaUseCase) Listar(ctx context.Context, f repository.MovimientoFiltro) ([]*entity.MovimientoDetalle, error) {
	if f.Tipo != "" && !entity.TipoMovimientoValido(f.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 50
	}
	return uc.movRepo.List(ctx, f)
}

// Obtener devuelve un movimiento por id con datos de artículo y usuario.
func (uc *ConsultaUseCase) Obtener(ctx context.Context, id string) (*entity.MovimientoDetalle, error) {
	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// Estadisticas devuelve el resumen de actividad reciente.
func (uc *ConsultaUseCase) Estadisticas(ctx context.Context) (*entity.MovimientoEstadisticas, error) {
	return uc.movRepo.Estadisticas(ctx)
}
