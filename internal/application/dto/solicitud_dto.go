package dto

import "github.com/acampos/inventario-api/internal/domain/entity"

// SolicitudItemRequest línea pedida al crear la solicitud.
type SolicitudItemRequest struct {
	ArticuloID string `json:"articuloId"`
	Cantidad   int    `json:"cantidad"`
}

// CrearSolicitudRequest body para POST /api/solicitudes.
type CrearSolicitudRequest struct {
	Observaciones string                 `json:"observaciones,omitempty"`
	Items         []SolicitudItemRequest `json:"items"`
}

// CambiarEstadoSolicitudRequest body para PUT /api/solicitudes/:id/estado.
type CambiarEstadoSolicitudRequest struct {
	Estado string `json:"estado"` // pendiente|aprobado|rechazado|completado
}

// SolicitudResponse solicitud en respuestas.
type SolicitudResponse struct {
	ID            string `json:"id"`
	UsuarioID     string `json:"usuarioId"`
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones,omitempty"`
	FechaCreacion string `json:"fechaCreacion"`
}

// SolicitudResumenResponse fila de listado con solicitante y agregados.
type SolicitudResumenResponse struct {
	SolicitudResponse
	UsuarioNombre string `json:"usuarioNombre,omitempty"`
	TotalItems    int    `json:"totalItems"`
	TotalUnidades int    `json:"totalUnidades"`
}

// SolicitudItemResponse línea de la solicitud con datos del artículo.
type SolicitudItemResponse struct {
	ID             string `json:"id"`
	ArticuloID     string `json:"articuloId"`
	ArticuloCodigo string `json:"articuloCodigo"`
	ArticuloNombre string `json:"articuloNombre"`
	Cantidad       int    `json:"cantidad"`
}

// SolicitudConItemsResponse solicitud con sus líneas, para el detalle.
type SolicitudConItemsResponse struct {
	SolicitudResponse
	Items []SolicitudItemResponse `json:"items"`
}

// ToSolicitudResponse convierte la entidad a DTO.
func ToSolicitudResponse(s *entity.Solicitud) SolicitudResponse {
	return SolicitudResponse{
		ID:            s.ID,
		UsuarioID:     s.UsuarioID,
		Estado:        s.Estado,
		Observaciones: s.Observaciones,
		FechaCreacion: s.FechaCreacion.Format(fechaHora),
	}
}

// ToSolicitudResumenListResponse convierte la lista de resúmenes a DTOs.
func ToSolicitudResumenListResponse(list []*entity.SolicitudResumen) []SolicitudResumenResponse {
	out := make([]SolicitudResumenResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SolicitudResumenResponse{
			SolicitudResponse: ToSolicitudResponse(&s.Solicitud),
			UsuarioNombre:     s.UsuarioNombre,
			TotalItems:        s.TotalItems,
			TotalUnidades:     s.TotalUnidades,
		})
	}
	return out
}

// ToSolicitudConItemsResponse arma el detalle de la solicitud con sus líneas.
func ToSolicitudConItemsResponse(s *entity.Solicitud, items []*entity.SolicitudDetalleInfo) SolicitudConItemsResponse {
	resp := SolicitudConItemsResponse{
		SolicitudResponse: ToSolicitudResponse(s),
		Items:             make([]SolicitudItemResponse, 0, len(items)),
	}
	for _, d := range items {
		resp.Items = append(resp.Items, SolicitudItemResponse{
			ID:             d.ID,
			ArticuloID:     d.ArticuloID,
			ArticuloCodigo: d.ArticuloCodigo,
			ArticuloNombre: d.ArticuloNombre,
			Cantidad:       d.Cantidad,
		})
	}
	return resp
}
