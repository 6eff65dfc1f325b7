package dto

import (
	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/domain/entity"
)

// RegistrarMovimientoRequest body para POST /api/movimientos.
type RegistrarMovimientoRequest struct {
	ArticuloID    string `json:"articuloId"`
	Tipo          string `json:"tipo"` // entrada|salida|ajuste
	Cantidad      int    `json:"cantidad"`
	Motivo        string `json:"motivo,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
}

// MovimientoResponse movimiento registrado, con la cantidad previa y la
// resultante.
type MovimientoResponse struct {
	ID            string `json:"id"`
	ArticuloID    string `json:"articuloId"`
	UsuarioID     string `json:"usuarioId"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	Motivo        string `json:"motivo,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
	Fecha         string `json:"fecha"`
	StockAnterior int    `json:"stockAnterior"`
	StockNuevo    int    `json:"stockNuevo"`
}

// MovimientoDetalleResponse fila del historial con datos de artículo y
// usuario.
type MovimientoDetalleResponse struct {
	ID             string `json:"id"`
	ArticuloID     string `json:"articuloId"`
	ArticuloCodigo string `json:"articuloCodigo"`
	ArticuloNombre string `json:"articuloNombre"`
	UsuarioID      string `json:"usuarioId"`
	UsuarioNombre  string `json:"usuarioNombre,omitempty"`
	Tipo           string `json:"tipo"`
	Cantidad       int    `json:"cantidad"`
	Motivo         string `json:"motivo,omitempty"`
	Observaciones  string `json:"observaciones,omitempty"`
	Fecha          string `json:"fecha"`
}

// MovimientoTipoTotalResponse agregado por tipo.
type MovimientoTipoTotalResponse struct {
	Tipo          string `json:"tipo"`
	Total         int    `json:"total"`
	CantidadTotal int    `json:"cantidadTotal"`
}

// MovimientoEstadisticasResponse resumen de actividad reciente.
type MovimientoEstadisticasResponse struct {
	MovimientosHoy int                           `json:"movimientosHoy"`
	PorTipo        []MovimientoTipoTotalResponse `json:"porTipo"`
}

// ToMovimientoResponse convierte el resultado del motor a DTO.
func ToMovimientoResponse(r *inventario.MovimientoResultado) MovimientoResponse {
	m := r.Movimiento
	return MovimientoResponse{
		ID:            m.ID,
		ArticuloID:    m.ArticuloID,
		UsuarioID:     m.UsuarioID,
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		Motivo:        m.Motivo,
		Observaciones: m.Observaciones,
		Fecha:         m.Fecha.Format(fechaHora),
		StockAnterior: r.StockAnterior,
		StockNuevo:    r.StockNuevo,
	}
}

// ToMovimientoDetalleResponse convierte la entidad a DTO.
func ToMovimientoDetalleResponse(d *entity.MovimientoDetalle) MovimientoDetalleResponse {
	return MovimientoDetalleResponse{
		ID:             d.ID,
		ArticuloID:     d.ArticuloID,
		ArticuloCodigo: d.ArticuloCodigo,
		ArticuloNombre: d.ArticuloNombre,
		UsuarioID:      d.UsuarioID,
		UsuarioNombre:  d.UsuarioNombre,
		Tipo:           d.Tipo,
		Cantidad:       d.Cantidad,
		Motivo:         d.Motivo,
		Observaciones:  d.Observaciones,
		Fecha:          d.Fecha.Format(fechaHora),
	}
}

// ToMovimientoDetalleListResponse convierte la lista de detalles a DTOs.
func ToMovimientoDetalleListResponse(list []*entity.MovimientoDetalle) []MovimientoDetalleResponse {
	out := make([]MovimientoDetalleResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToMovimientoDetalleResponse(d))
	}
	return out
}

// ToMovimientoEstadisticasResponse convierte las estadísticas a DTO.
func ToMovimientoEstadisticasResponse(s *entity.MovimientoEstadisticas) MovimientoEstadisticasResponse {
	resp := MovimientoEstadisticasResponse{
		MovimientosHoy: s.MovimientosHoy,
		PorTipo:        make([]MovimientoTipoTotalResponse, 0, len(s.PorTipo)),
	}
	for _, t := range s.PorTipo {
		resp.PorTipo = append(resp.PorTipo, MovimientoTipoTotalResponse{
			Tipo:          t.Tipo,
			Total:         t.Total,
			CantidadTotal: t.CantidadTotal,
		})
	}
	return resp
}
