package repository

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// SolicitudFiltro filtra el listado de solicitudes. Campos vacíos no filtran.
type SolicitudFiltro struct {
	UsuarioID string
	Estado    string
	Limit     int
}

// SolicitudRepository define el puerto de persistencia para solicitudes de
// material.
type SolicitudRepository interface {
	// CreateConDetalles inserta la solicitud y sus líneas.
	CreateConDetalles(ctx context.Context, s *entity.Solicitud, detalles []*entity.SolicitudDetalle) error
	GetByID(ctx context.Context, id string) (*entity.Solicitud, error)
	GetDetalles(ctx context.Context, solicitudID string) ([]*entity.SolicitudDetalleInfo, error)
	UpdateEstado(ctx context.Context, id, estado string) error
	List(ctx context.Context, f SolicitudFiltro) ([]*entity.SolicitudResumen, error)
}
