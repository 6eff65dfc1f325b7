package entity

import "time"

// Estados de una solicitud interna de material. El flujo normal es
// pendiente -> aprobado -> completado; rechazado cierra la solicitud.
const (
	SolicitudPendiente  = "pendiente"
	SolicitudAprobado   = "aprobado"
	SolicitudRechazado  = "rechazado"
	SolicitudCompletado = "completado"
)

// SolicitudEstadoValido reporta si estado es uno de los estados conocidos.
func SolicitudEstadoValido(estado string) bool {
	switch estado {
	case SolicitudPendiente, SolicitudAprobado, SolicitudRechazado, SolicitudCompletado:
		return true
	}
	return false
}

// Solicitud representa un pedido interno de material hecho por un usuario.
type Solicitud struct {
	ID            string
	UsuarioID     string
	Estado        string
	Observaciones string
	FechaCreacion time.Time
}

// SolicitudDetalle es una línea de la solicitud; inmutable una vez creada.
type SolicitudDetalle struct {
	ID          string
	SolicitudID string
	ArticuloID  string
	Cantidad    int
}

// SolicitudResumen es la fila de listado con el solicitante y agregados de
// sus líneas.
type SolicitudResumen struct {
	Solicitud
	UsuarioNombre string
	TotalItems    int
	TotalUnidades int
}

// SolicitudDetalleInfo es una línea con datos del artículo para el detalle.
type SolicitudDetalleInfo struct {
	SolicitudDetalle
	ArticuloCodigo string
	ArticuloNombre string
}
