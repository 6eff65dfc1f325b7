package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/application/movimientos"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// MovimientoHandler maneja el registro y la consulta de movimientos
// (protegido).
type MovimientoHandler struct {
	registrar *inventario.RegistrarMovimientoUseCase
	consulta  *movimientos.ConsultaUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrar *inventario.RegistrarMovimientoUseCase, consulta *movimientos.ConsultaUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrar: registrar, consulta: consulta}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  entrada suma, salida resta, ajuste fija el valor absoluto.
//               La respuesta incluye la cantidad previa y la resultante.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "articuloId, tipo, cantidad, motivo"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resultado, err := h.registrar.RegistrarMovimiento(c.Context(), inventario.MovimientoInput{
		ArticuloID:    in.ArticuloID,
		UsuarioID:     GetUserID(c),
		Tipo:          in.Tipo,
		Cantidad:      in.Cantidad,
		Motivo:        in.Motivo,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovimientoResponse(resultado))
}

// Listar godoc
// @Summary      Historial de movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        tipo        query  string  false  "entrada|salida|ajuste"
// @Param        articuloId  query  string  false  "Filtrar por artículo"
// @Param        limit       query  int     false  "Máximo de filas (default 50, max 500)"
// @Success      200  {array}   dto.MovimientoDetalleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	list, err := h.consulta.Listar(c.Context(), repository.MovimientoFiltro{
		Tipo:       c.Query("tipo"),
		ArticuloID: c.Query("articuloId"),
		Limit:      c.QueryInt("limit"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovimientoDetalleListResponse(list))
}

// Obtener godoc
// @Summary      Detalle de un movimiento
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [get]
func (h *MovimientoHandler) Obtener(c *fiber.Ctx) error {
	mov, err := h.consulta.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovimientoDetalleResponse(mov))
}

// Estadisticas godoc
// @Summary      Resumen de actividad de movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovimientoEstadisticasResponse
// @Router       /api/movimientos/estadisticas [get]
func (h *MovimientoHandler) Estadisticas(c *fiber.Ctx) error {
	stats, err := h.consulta.Estadisticas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovimientoEstadisticasResponse(stats))
}
