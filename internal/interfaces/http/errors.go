package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/authz"
	"github.com/acampos/inventario-api/internal/application/dto"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/pkg/logger"
)

// errLog recibe los errores no mapeados a la taxonomía de dominio. Arranca
// en no-op hasta que el router inyecta el logger real.
var errLog = logger.Nop()

// SetLogger fija el logger usado para los errores internos.
func SetLogger(l *logger.Logger) {
	if l != nil {
		errLog = l
	}
}

// respondError traduce un error de dominio a la respuesta HTTP estándar.
// Los errores tipados (stock insuficiente, permiso denegado) conservan su
// detalle de diagnóstico en el cuerpo.
func respondError(c *fiber.Ctx, err error) error {
	var stockErr *domain.StockInsuficienteError
	if errors.As(err, &stockErr) {
		actual, solicitado := stockErr.StockActual, stockErr.Solicitado
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:        "INSUFFICIENT_STOCK",
			Message:     "stock insuficiente",
			StockActual: &actual,
			Solicitado:  &solicitado,
		})
	}
	var permErr *authz.PermisoDenegadoError
	if errors.As(err, &permErr) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "acceso denegado",
			Permiso: permErr.Permiso,
			Rol:     permErr.Rol,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailEnUso):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la operación entra en conflicto con el estado actual"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	}

	// Error no mapeado: el detalle (DSNs, SQL, rutas) se queda en el log;
	// el cliente recibe solo un mensaje genérico.
	errLog.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno no mapeado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
