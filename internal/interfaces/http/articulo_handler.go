package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/application/usecase"
)

// ArticuloHandler maneja el CRUD de artículos (protegido).
type ArticuloHandler struct {
	uc *usecase.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *usecase.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear artículo
// @Description  Da de alta el artículo con su registro de stock; si lleva
//               stockInicial se asienta también el movimiento de entrada.
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearArticuloRequest  true  "codigo, nombre, categoria y opcionales"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := usecase.CrearArticuloInput{
		Codigo:       in.Codigo,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Categoria:    in.Categoria,
		ProveedorID:  in.ProveedorID,
		UsuarioID:    GetUserID(c),
		StockInicial: in.StockInicial,
		StockMinimo:  in.StockMinimo,
		StockMaximo:  in.StockMaximo,
		Ubicacion:    in.Ubicacion,
	}
	if in.FechaCaducidad != "" {
		fecha, err := time.Parse("2006-01-02", in.FechaCaducidad)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechaCaducidad debe ser YYYY-MM-DD"})
		}
		input.FechaCaducidad = &fecha
	}
	articulo, err := h.uc.Crear(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToArticuloResponse(articulo))
}

// Listar godoc
// @Summary      Listar artículos activos
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ArticuloResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToArticuloListResponse(list))
}

// Obtener godoc
// @Summary      Detalle de artículo con su stock
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ArticuloConStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [get]
func (h *ArticuloHandler) Obtener(c *fiber.Ctx) error {
	articulo, stock, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ArticuloConStockResponse{
		ArticuloResponse: dto.ToArticuloResponse(articulo),
		Stock:            dto.ToStockResponse(stock),
	})
}

// Actualizar godoc
// @Summary      Actualizar artículo
// @Description  Solo modifica los campos presentes en el body; el código es fijo.
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.ActualizarArticuloRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [put]
func (h *ArticuloHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := usecase.ActualizarArticuloInput{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Categoria:   in.Categoria,
		ProveedorID: in.ProveedorID,
	}
	if in.FechaCaducidad != nil {
		fecha, err := time.Parse("2006-01-02", *in.FechaCaducidad)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechaCaducidad debe ser YYYY-MM-DD"})
		}
		input.FechaCaducidad = &fecha
	}
	articulo, err := h.uc.Actualizar(c.Context(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToArticuloResponse(articulo))
}

// Eliminar godoc
// @Summary      Eliminar artículo (soft delete)
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [delete]
func (h *ArticuloHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "artículo eliminado"})
}
