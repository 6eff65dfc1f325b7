package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/dto"
	appstock "github.com/acampos/inventario-api/internal/application/stock"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// StockHandler maneja consultas de stock y actualización de niveles
// (protegido).
type StockHandler struct {
	uc *appstock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appstock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Listado godoc
// @Summary      Listado de stock con estado clasificado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        estado     query  string  false  "sin-stock|critico|bajo|normal|sobre-stock"
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Success      200  {array}   dto.StockFilaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Listado(c *fiber.Ctx) error {
	filas, err := h.uc.Listado(c.Context(), c.Query("estado"), c.Query("categoria"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStockFilaListResponse(filas))
}

// Alertas godoc
// @Summary      Artículos en o por debajo de su mínimo
// @Description  Devuelve sin-stock, críticos y bajos, los más urgentes primero.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockFilaResponse
// @Router       /api/stock/alertas [get]
func (h *StockHandler) Alertas(c *fiber.Ctx) error {
	filas, err := h.uc.Alertas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStockFilaListResponse(filas))
}

// Resumen godoc
// @Summary      Contadores globales por estado de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockResumenResponse
// @Router       /api/stock/resumen [get]
func (h *StockHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.uc.ObtenerResumen(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStockResumenResponse(resumen))
}

// ActualizarNiveles godoc
// @Summary      Actualizar umbrales y ubicación del stock de un artículo
// @Description  Solo modifica los campos presentes; la cantidad nunca se toca
//               por esta vía (solo con movimientos).
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        articuloId  path  string  true  "ID del artículo"
// @Param        body  body  dto.ActualizarNivelesRequest  true  "stockMinimo, stockMaximo, ubicacion"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{articuloId}/niveles [put]
func (h *StockHandler) ActualizarNiveles(c *fiber.Ctx) error {
	var in dto.ActualizarNivelesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	stock, err := h.uc.ActualizarNiveles(c.Context(), c.Params("articuloId"), repository.StockNiveles{
		StockMinimo: in.StockMinimo,
		StockMaximo: in.StockMaximo,
		Ubicacion:   in.Ubicacion,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStockResponse(stock))
}
