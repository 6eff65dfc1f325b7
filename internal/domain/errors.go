package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrEmailEnUso   = errors.New("el email ya está registrado")
)

// StockInsuficienteError indica que una salida dejaría el stock en negativo.
// Transporta el stock actual y la cantidad solicitada para la respuesta HTTP.
type StockInsuficienteError struct {
	StockActual int
	Solicitado  int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente: actual %d, solicitado %d", e.StockActual, e.Solicitado)
}
