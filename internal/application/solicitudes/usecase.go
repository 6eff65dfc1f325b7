// Package solicitudes gestiona las solicitudes de material: un solicitante
// pide artículos, un encargado o admin aprueba o rechaza, y un operador
// marca como completadas las aprobadas.
package solicitudes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// SolicitudUseCase alta, consulta y transiciones de estado de solicitudes.
type SolicitudUseCase struct {
	txRunner      TxRunner
	solicitudRepo repository.SolicitudRepository
	articuloRepo  repository.ArticuloRepository
}

// NewSolicitudUseCase construye el caso de uso.
func NewSolicitudUseCase(
	txRunner TxRunner,
	solicitudRepo repository.SolicitudRepository,
	articuloRepo repository.ArticuloRepository,
) *SolicitudUseCase {
	return &SolicitudUseCase{
		txRunner:      txRunner,
		solicitudRepo: solicitudRepo,
		articuloRepo:  articuloRepo,
	}
}

// SolicitudItemInput es una línea pedida en la solicitud.
type SolicitudItemInput struct {
	ArticuloID string
	Cantidad   int
}

// CrearSolicitudInput entrada para crear una solicitud en estado pendiente.
type CrearSolicitudInput struct {
	UsuarioID     string
	Observaciones string
	Items         []SolicitudItemInput
}

// Detalle es la solicitud completa: cabecera más líneas con los datos del
// artículo.
type Detalle struct {
	Solicitud *entity.Solicitud
	Items     []*entity.SolicitudDetalleInfo
}

// Crear valida los artículos e inserta la solicitud con sus líneas en una
// transacción. Nace siempre en estado pendiente.
func (uc *SolicitudUseCase) Crear(ctx context.Context, input CrearSolicitudInput) (*entity.Solicitud, error) {
	if input.UsuarioID == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.ArticuloID == "" || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, item := range input.Items {
		articulo, err := uc.articuloRepo.GetByID(ctx, item.ArticuloID)
		if err != nil {
			return nil, err
		}
		if articulo == nil {
			return nil, domain.ErrNotFound
		}
	}

	solicitud := &entity.Solicitud{
		ID:            uuid.New().String(),
		UsuarioID:     input.UsuarioID,
		Estado:        entity.SolicitudPendiente,
		Observaciones: input.Observaciones,
		FechaCreacion: time.Now(),
	}
	detalles := make([]*entity.SolicitudDetalle, 0, len(input.Items))
	for _, item := range input.Items {
		detalles = append(detalles, &entity.SolicitudDetalle{
			ID:          uuid.New().String(),
			SolicitudID: solicitud.ID,
			ArticuloID:  item.ArticuloID,
			Cantidad:    item.Cantidad,
		})
	}

	err := uc.txRunner.RunSolicitud(ctx, func(solicitudRepo repository.SolicitudRepository) error {
		return solicitudRepo.CreateConDetalles(ctx, solicitud, detalles)
	})
	if err != nil {
		return nil, err
	}
	return solicitud, nil
}

// Listar devuelve solicitudes con filtro opcional de estado. Un solicitante
// solo ve las suyas; los demás roles ven todas.
func (uc *SolicitudUseCase) Listar(ctx context.Context, actorID, actorRol, estado string) ([]*entity.SolicitudResumen, error) {
	if estado != "" && !entity.SolicitudEstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	f := repository.SolicitudFiltro{Estado: estado, Limit: 100}
	if actorRol == entity.RolSolicitante {
		f.UsuarioID = actorID
	}
	return uc.solicitudRepo.List(ctx, f)
}

// Obtener devuelve la solicitud con sus líneas. Un solicitante solo puede
// ver solicitudes propias; acceder a una ajena devuelve domain.ErrForbidden.
func (uc *SolicitudUseCase) Obtener(ctx context.Context, id, actorID, actorRol string) (*Detalle, error) {
	solicitud, err := uc.solicitudRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if solicitud == nil {
		return nil, domain.ErrNotFound
	}
	if actorRol == entity.RolSolicitante && solicitud.UsuarioID != actorID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.solicitudRepo.GetDetalles(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detalle{Solicitud: solicitud, Items: items}, nil
}

// CambiarEstado aplica una transición de estado. Admin y encargado pueden
// fijar cualquier estado válido; un operador solo puede marcar como
// completada una solicitud ya aprobada. Cualquier otro rol queda fuera por
// el permiso de la ruta.
func (uc *SolicitudUseCase) CambiarEstado(ctx context.Context, id, estado, actorRol string) (*entity.Solicitud, error) {
	if !entity.SolicitudEstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	solicitud, err := uc.solicitudRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if solicitud == nil {
		return nil, domain.ErrNotFound
	}

	if actorRol == entity.RolOperador {
		if estado != entity.SolicitudCompletado {
			return nil, domain.ErrForbidden
		}
		if solicitud.Estado != entity.SolicitudAprobado {
			return nil, domain.ErrInvalidInput
		}
	}

	if err := uc.solicitudRepo.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	solicitud.Estado = estado
	return solicitud, nil
}
