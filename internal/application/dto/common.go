package dto

// ErrorResponse cuerpo de error HTTP. Los campos opcionales transportan el
// detalle de diagnóstico de errores de dominio concretos: stock insuficiente
// (stockActual/solicitado) y permiso denegado (permiso/tuRol).
type ErrorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	StockActual *int   `json:"stockActual,omitempty"`
	Solicitado  *int   `json:"solicitado,omitempty"`
	Permiso     string `json:"permiso,omitempty"`
	Rol         string `json:"tuRol,omitempty"`
}

// MensajeResponse respuesta simple de confirmación.
type MensajeResponse struct {
	Message string `json:"message"`
}
