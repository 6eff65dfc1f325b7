package dto

import (
	"time"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// Formatos de fecha en la API: fecha sola para caducidades, fecha y hora en
// el resto de timestamps.
const (
	fecha     = "2006-01-02"
	fechaHora = time.RFC3339
)

// CrearArticuloRequest body para POST /api/articulos.
type CrearArticuloRequest struct {
	Codigo         string  `json:"codigo"`
	Nombre         string  `json:"nombre"`
	Descripcion    string  `json:"descripcion,omitempty"`
	Categoria      string  `json:"categoria"`
	ProveedorID    *string `json:"proveedorId,omitempty"`
	FechaCaducidad string  `json:"fechaCaducidad,omitempty"` // YYYY-MM-DD
	StockInicial   int     `json:"stockInicial,omitempty"`
	StockMinimo    int     `json:"stockMinimo,omitempty"`
	StockMaximo    int     `json:"stockMaximo,omitempty"`
	Ubicacion      string  `json:"ubicacion,omitempty"`
}

// ActualizarArticuloRequest body para PUT /api/articulos/:id. Campos
// ausentes no se tocan; el código no es modificable.
type ActualizarArticuloRequest struct {
	Nombre         *string `json:"nombre,omitempty"`
	Descripcion    *string `json:"descripcion,omitempty"`
	Categoria      *string `json:"categoria,omitempty"`
	ProveedorID    *string `json:"proveedorId,omitempty"` // "" desvincula el proveedor
	FechaCaducidad *string `json:"fechaCaducidad,omitempty"`
}

// ArticuloResponse artículo en respuestas.
type ArticuloResponse struct {
	ID             string  `json:"id"`
	Codigo         string  `json:"codigo"`
	Nombre         string  `json:"nombre"`
	Descripcion    string  `json:"descripcion,omitempty"`
	Categoria      string  `json:"categoria"`
	ProveedorID    *string `json:"proveedorId,omitempty"`
	FechaCaducidad string  `json:"fechaCaducidad,omitempty"`
	Activo         bool    `json:"activo"`
	CreatedAt      string  `json:"fechaCreacion"`
	UpdatedAt      string  `json:"fechaActualizacion"`
}

// ArticuloConStockResponse artículo con su stock actual, para el detalle.
type ArticuloConStockResponse struct {
	ArticuloResponse
	Stock StockResponse `json:"stock"`
}

// ToArticuloResponse convierte la entidad a DTO.
func ToArticuloResponse(a *entity.Articulo) ArticuloResponse {
	resp := ArticuloResponse{
		ID:          a.ID,
		Codigo:      a.Codigo,
		Nombre:      a.Nombre,
		Descripcion: a.Descripcion,
		Categoria:   a.Categoria,
		ProveedorID: a.ProveedorID,
		Activo:      a.Activo,
		CreatedAt:   a.CreatedAt.Format(fechaHora),
		UpdatedAt:   a.UpdatedAt.Format(fechaHora),
	}
	if a.FechaCaducidad != nil {
		resp.FechaCaducidad = a.FechaCaducidad.Format(fecha)
	}
	return resp
}

// ToArticuloListResponse convierte la lista de entidades a DTOs.
func ToArticuloListResponse(list []*entity.Articulo) []ArticuloResponse {
	out := make([]ArticuloResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToArticuloResponse(a))
	}
	return out
}
