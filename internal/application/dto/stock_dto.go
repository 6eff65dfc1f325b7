package dto

import (
	appstock "github.com/acampos/inventario-api/internal/application/stock"
	"github.com/acampos/inventario-api/internal/domain/entity"
)

// StockResponse registro de stock de un artículo.
type StockResponse struct {
	ArticuloID  string `json:"articuloId"`
	Cantidad    int    `json:"cantidad"`
	StockMinimo int    `json:"stockMinimo"`
	StockMaximo int    `json:"stockMaximo"`
	Ubicacion   string `json:"ubicacion,omitempty"`
	UpdatedAt   string `json:"fechaActualizacion"`
}

// StockFilaResponse fila del listado de stock con el estado clasificado.
type StockFilaResponse struct {
	ArticuloID      string `json:"articuloId"`
	Codigo          string `json:"codigo"`
	Nombre          string `json:"nombre"`
	Categoria       string `json:"categoria"`
	ProveedorNombre string `json:"proveedor,omitempty"`
	FechaCaducidad  string `json:"fechaCaducidad,omitempty"`
	Cantidad        int    `json:"cantidad"`
	StockMinimo     int    `json:"stockMinimo"`
	StockMaximo     int    `json:"stockMaximo"`
	Ubicacion       string `json:"ubicacion,omitempty"`
	Estado          string `json:"estado"` // sin-stock|critico|bajo|normal|sobre-stock
}

// ActualizarNivelesRequest body para PUT /api/stock/:articuloId/niveles.
// Campos ausentes no se tocan; 0 es válido y significa "sin configurar".
type ActualizarNivelesRequest struct {
	StockMinimo *int    `json:"stockMinimo,omitempty"`
	StockMaximo *int    `json:"stockMaximo,omitempty"`
	Ubicacion   *string `json:"ubicacion,omitempty"`
}

// StockResumenResponse contadores globales por estado.
type StockResumenResponse struct {
	TotalArticulos int `json:"totalArticulos"`
	TotalUnidades  int `json:"totalUnidades"`
	SinStock       int `json:"sinStock"`
	Criticos       int `json:"criticos"`
	BajoStock      int `json:"bajoStock"`
	Normal         int `json:"normal"`
	SobreStock     int `json:"sobreStock"`
}

// ToStockResponse convierte la entidad a DTO.
func ToStockResponse(s *entity.Stock) StockResponse {
	return StockResponse{
		ArticuloID:  s.ArticuloID,
		Cantidad:    s.Cantidad,
		StockMinimo: s.StockMinimo,
		StockMaximo: s.StockMaximo,
		Ubicacion:   s.Ubicacion,
		UpdatedAt:   s.UpdatedAt.Format(fechaHora),
	}
}

// ToStockFilaResponse convierte una fila clasificada a DTO.
func ToStockFilaResponse(f appstock.Fila) StockFilaResponse {
	resp := StockFilaResponse{
		ArticuloID:      f.ArticuloID,
		Codigo:          f.Codigo,
		Nombre:          f.Nombre,
		Categoria:       f.Categoria,
		ProveedorNombre: f.ProveedorNombre,
		Cantidad:        f.Cantidad,
		StockMinimo:     f.StockMinimo,
		StockMaximo:     f.StockMaximo,
		Ubicacion:       f.Ubicacion,
		Estado:          string(f.Estado),
	}
	if f.FechaCaducidad != nil {
		resp.FechaCaducidad = f.FechaCaducidad.Format(fecha)
	}
	return resp
}

// ToStockFilaListResponse convierte la lista de filas clasificadas a DTOs.
func ToStockFilaListResponse(filas []appstock.Fila) []StockFilaResponse {
	out := make([]StockFilaResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, ToStockFilaResponse(f))
	}
	return out
}

// ToStockResumenResponse convierte el resumen a DTO.
func ToStockResumenResponse(r *appstock.Resumen) StockResumenResponse {
	return StockResumenResponse{
		TotalArticulos: r.TotalArticulos,
		TotalUnidades:  r.TotalUnidades,
		SinStock:       r.SinStock,
		Criticos:       r.Criticos,
		BajoStock:      r.BajoStock,
		Normal:         r.Normal,
		SobreStock:     r.SobreStock,
	}
}
