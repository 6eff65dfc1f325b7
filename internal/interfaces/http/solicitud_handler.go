package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/application/solicitudes"
)

// SolicitudHandler maneja las solicitudes de material (protegido).
type SolicitudHandler struct {
	uc *solicitudes.SolicitudUseCase
}

// NewSolicitudHandler construye el handler.
func NewSolicitudHandler(uc *solicitudes.SolicitudUseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear solicitud de material
// @Description  La solicitud nace en estado pendiente a nombre del usuario
//               autenticado.
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearSolicitudRequest  true  "items y observaciones"
// @Success      201   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items := make([]solicitudes.SolicitudItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, solicitudes.SolicitudItemInput{ArticuloID: item.ArticuloID, Cantidad: item.Cantidad})
	}
	solicitud, err := h.uc.Crear(c.Context(), solicitudes.CrearSolicitudInput{
		UsuarioID:     GetUserID(c),
		Observaciones: in.Observaciones,
		Items:         items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSolicitudResponse(solicitud))
}

// Listar godoc
// @Summary      Listar solicitudes
// @Description  Un solicitante solo ve sus propias solicitudes; los demás
//               roles ven todas.
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "pendiente|aprobado|rechazado|completado"
// @Success      200  {array}   dto.SolicitudResumenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), GetUserID(c), GetRol(c), c.Query("estado"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSolicitudResumenListResponse(list))
}

// Obtener godoc
// @Summary      Detalle de una solicitud con sus líneas
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudConItemsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [get]
func (h *SolicitudHandler) Obtener(c *fiber.Ctx) error {
	detalle, err := h.uc.Obtener(c.Context(), c.Params("id"), GetUserID(c), GetRol(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSolicitudConItemsResponse(detalle.Solicitud, detalle.Items))
}

// CambiarEstado godoc
// @Summary      Cambiar el estado de una solicitud
// @Description  Admin y encargado fijan cualquier estado; un operador solo
//               puede completar solicitudes aprobadas.
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.CambiarEstadoSolicitudRequest  true  "estado destino"
// @Success      200   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/estado [put]
func (h *SolicitudHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	solicitud, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Estado, GetRol(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSolicitudResponse(solicitud))
}
