package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/application/usecase"
)

// UsuarioHandler administración de usuarios (protegido, solo admin).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToUsuarioListResponse(list))
}

// Actualizar godoc
// @Summary      Actualizar usuario
// @Description  Solo modifica los campos presentes. Un admin no puede
//               quitarse su propio rol ni desactivar su propia cuenta.
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.ActualizarUsuarioRequest  true  "campos a modificar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	usuario, err := h.uc.Actualizar(c.Context(), GetUserID(c), c.Params("id"), usecase.ActualizarUsuarioInput{
		Nombre: in.Nombre,
		Email:  in.Email,
		Rol:    in.Rol,
		Activo: in.Activo,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToUsuarioResponse(usuario))
}

// Desactivar godoc
// @Summary      Desactivar usuario
// @Description  Soft delete; la propia cuenta del actor se rechaza con 403.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Desactivar(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "usuario desactivado"})
}
