package dto

import "github.com/acampos/inventario-api/internal/domain/entity"

// CompraItemRequest línea solicitada al crear la orden.
type CompraItemRequest struct {
	ArticuloID string `json:"articuloId"`
	Cantidad   int    `json:"cantidad"`
}

// CrearCompraRequest body para POST /api/compras.
type CrearCompraRequest struct {
	ProveedorID   string              `json:"proveedorId"`
	NumeroOrden   string              `json:"numeroOrden"`
	Observaciones string              `json:"observaciones,omitempty"`
	Items         []CompraItemRequest `json:"items"`
}

// CambiarEstadoCompraRequest body para PUT /api/compras/:id/estado.
type CambiarEstadoCompraRequest struct {
	Estado string `json:"estado"` // recibida|cancelada
}

// CompraResponse orden de compra en respuestas.
type CompraResponse struct {
	ID             string `json:"id"`
	ProveedorID    string `json:"proveedorId"`
	UsuarioID      string `json:"usuarioId"`
	NumeroOrden    string `json:"numeroOrden"`
	Estado         string `json:"estado"`
	Observaciones  string `json:"observaciones,omitempty"`
	FechaOrden     string `json:"fechaOrden"`
	FechaRecepcion string `json:"fechaRecepcion,omitempty"`
}

// CompraResumenResponse fila de listado con proveedor y agregados de líneas.
type CompraResumenResponse struct {
	CompraResponse
	ProveedorNombre string `json:"proveedorNombre"`
	ProveedorCodigo string `json:"proveedorCodigo"`
	RegistradoPor   string `json:"registradoPor,omitempty"`
	TotalItems      int    `json:"totalItems"`
	TotalUnidades   int    `json:"totalUnidades"`
}

// CompraDetalleResponse línea de la orden.
type CompraDetalleResponse struct {
	ID         string `json:"id"`
	ArticuloID string `json:"articuloId"`
	Cantidad   int    `json:"cantidad"`
}

// CompraConDetallesResponse orden con sus líneas, para el detalle.
type CompraConDetallesResponse struct {
	CompraResponse
	Detalles []CompraDetalleResponse `json:"detalles"`
}

// ToCompraResponse convierte la entidad a DTO.
func ToCompraResponse(c *entity.Compra) CompraResponse {
	resp := CompraResponse{
		ID:            c.ID,
		ProveedorID:   c.ProveedorID,
		UsuarioID:     c.UsuarioID,
		NumeroOrden:   c.NumeroOrden,
		Estado:        c.Estado,
		Observaciones: c.Observaciones,
		FechaOrden:    c.FechaOrden.Format(fechaHora),
	}
	if c.FechaRecepcion != nil {
		resp.FechaRecepcion = c.FechaRecepcion.Format(fechaHora)
	}
	return resp
}

// ToCompraResumenListResponse convierte la lista de resúmenes a DTOs.
func ToCompraResumenListResponse(list []*entity.CompraResumen) []CompraResumenResponse {
	out := make([]CompraResumenResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CompraResumenResponse{
			CompraResponse:  ToCompraResponse(&c.Compra),
			ProveedorNombre: c.ProveedorNombre,
			ProveedorCodigo: c.ProveedorCodigo,
			RegistradoPor:   c.RegistradoPor,
			TotalItems:      c.TotalItems,
			TotalUnidades:   c.TotalUnidades,
		})
	}
	return out
}

// ToCompraConDetallesResponse arma el detalle de la orden con sus líneas.
func ToCompraConDetallesResponse(c *entity.Compra, detalles []*entity.CompraDetalle) CompraConDetallesResponse {
	resp := CompraConDetallesResponse{
		CompraResponse: ToCompraResponse(c),
		Detalles:       make([]CompraDetalleResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, CompraDetalleResponse{
			ID:         d.ID,
			ArticuloID: d.ArticuloID,
			Cantidad:   d.Cantidad,
		})
	}
	return resp
}
