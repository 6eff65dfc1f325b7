package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "entrada" // suma Cantidad al stock
	MovimientoSalida  = "salida"  // resta Cantidad del stock
	MovimientoAjuste  = "ajuste"  // fija el stock en Cantidad (valor absoluto)
)

// TipoMovimientoValido reporta si tipo es uno de los tres tipos conocidos.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste:
		return true
	}
	return false
}

// Movimiento es el registro inmutable de un cambio de cantidad sobre un
// artículo. Cantidad guarda siempre el valor original del movimiento (delta
// en entrada/salida, absoluto en ajuste), nunca el total resultante.
// Los movimientos no se editan ni se borran.
type Movimiento struct {
	ID            string
	ArticuloID    string
	UsuarioID     string
	Tipo          string
	Cantidad      int
	Motivo        string
	Observaciones string
	Fecha         time.Time
}

// MovimientoDetalle es un movimiento con los datos de artículo y usuario
// que necesitan los listados.
type MovimientoDetalle struct {
	Movimiento
	ArticuloCodigo string
	ArticuloNombre string
	UsuarioNombre  string
}

// MovimientoTipoTotal agrega movimientos por tipo en un período.
type MovimientoTipoTotal struct {
	Tipo          string
	Total         int
	CantidadTotal int
}

// MovimientoEstadisticas resume la actividad reciente de movimientos.
type MovimientoEstadisticas struct {
	MovimientosHoy int
	PorTipo        []MovimientoTipoTotal
}
