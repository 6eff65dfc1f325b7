package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/compras"
	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/application/usecase"
	"github.com/acampos/inventario-api/internal/domain/entity"
)

// ProveedorHandler maneja el CRUD y la búsqueda de proveedores (protegido).
type ProveedorHandler struct {
	uc       *usecase.ProveedorUseCase
	compraUC *compras.CompraUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase, compraUC *compras.CompraUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc, compraUC: compraUC}
}

// Crear godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProveedorRequest  true  "codigo, nombre y opcionales"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.Crear(c.Context(), usecase.CrearProveedorInput{
		Codigo:    in.Codigo,
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		Ciudad:    in.Ciudad,
		Pais:      in.Pais,
		Notas:     in.Notas,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProveedorResponse(p))
}

// Listar godoc
// @Summary      Listar proveedores activos
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Buscar por nombre, código o contacto"
// @Success      200  {array}  dto.ProveedorResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	termino := c.Query("q")
	var (
		list []*entity.Proveedor
		err  error
	)
	if termino != "" {
		list, err = h.uc.Buscar(c.Context(), termino)
	} else {
		list, err = h.uc.Listar(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProveedorListResponse(list))
}

// Obtener godoc
// @Summary      Detalle de proveedor
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ProveedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) Obtener(c *fiber.Ctx) error {
	p, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProveedorResponse(p))
}

// Compras godoc
// @Summary      Historial de compras de un proveedor
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {array}   dto.CompraResumenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id}/compras [get]
func (h *ProveedorHandler) Compras(c *fiber.Ctx) error {
	list, err := h.compraUC.ListarPorProveedor(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCompraResumenListResponse(list))
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Description  Solo modifica los campos presentes en el body; el código es fijo.
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.ActualizarProveedorRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ProveedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.Actualizar(c.Context(), c.Params("id"), usecase.ActualizarProveedorInput{
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		Ciudad:    in.Ciudad,
		Pais:      in.Pais,
		Notas:     in.Notas,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProveedorResponse(p))
}

// Eliminar godoc
// @Summary      Eliminar proveedor (soft delete)
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "proveedor eliminado"})
}
