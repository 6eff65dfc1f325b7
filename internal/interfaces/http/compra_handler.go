package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/compras"
	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// CompraHandler maneja las órdenes de compra (protegido).
type CompraHandler struct {
	uc         *compras.CompraUseCase
	compraRepo repository.CompraRepository
}

// NewCompraHandler construye el handler. compraRepo se usa para el detalle
// de lectura (orden + líneas) sin pasar por el ciclo de estados.
func NewCompraHandler(uc *compras.CompraUseCase, compraRepo repository.CompraRepository) *CompraHandler {
	return &CompraHandler{uc: uc, compraRepo: compraRepo}
}

// Crear godoc
// @Summary      Crear orden de compra
// @Description  La orden nace en estado pendiente; ninguna línea toca el
//               stock hasta la recepción.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCompraRequest  true  "proveedorId, numeroOrden, items"
// @Success      201   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items := make([]compras.CompraItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, compras.CompraItemInput{ArticuloID: item.ArticuloID, Cantidad: item.Cantidad})
	}
	compra, err := h.uc.CrearCompra(c.Context(), compras.CrearCompraInput{
		ProveedorID:   in.ProveedorID,
		UsuarioID:     GetUserID(c),
		NumeroOrden:   in.NumeroOrden,
		Observaciones: in.Observaciones,
		Items:         items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCompraResponse(compra))
}

// Listar godoc
// @Summary      Listar órdenes de compra
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        estado       query  string  false  "pendiente|recibida|cancelada"
// @Param        proveedorId  query  string  false  "Filtrar por proveedor"
// @Param        limit        query  int     false  "Máximo de filas (default 50)"
// @Success      200  {array}   dto.CompraResumenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/compras [get]
func (h *CompraHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), repository.CompraFiltro{
		Estado:      c.Query("estado"),
		ProveedorID: c.Query("proveedorId"),
		Limit:       c.QueryInt("limit"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCompraResumenListResponse(list))
}

// Obtener godoc
// @Summary      Detalle de una orden con sus líneas
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.CompraConDetallesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *CompraHandler) Obtener(c *fiber.Ctx) error {
	compra, err := h.compraRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if compra == nil {
		return respondError(c, domain.ErrNotFound)
	}
	detalles, err := h.compraRepo.GetDetalles(c.Context(), compra.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCompraConDetallesResponse(compra, detalles))
}

// CambiarEstado godoc
// @Summary      Recibir o cancelar una orden
// @Description  recibida asienta una entrada de stock por cada línea, en la
//               misma transacción que el cambio de estado; ambos destinos son
//               terminales y una orden ya cerrada devuelve 409.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CambiarEstadoCompraRequest  true  "estado destino"
// @Success      200   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/{id}/estado [put]
func (h *CompraHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	compra, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCompraResponse(compra))
}
