// Package stock clasifica cantidades de inventario contra sus umbrales.
package stock

// Estado es la etiqueta derivada del nivel de stock de un artículo.
type Estado string

// Estados posibles, de mayor a menor urgencia.
const (
	EstadoSinStock   Estado = "sin-stock"
	EstadoCritico    Estado = "critico"
	EstadoBajo       Estado = "bajo"
	EstadoSobreStock Estado = "sobre-stock"
	EstadoNormal     Estado = "normal"
)

// ParseEstado valida un filtro de estado recibido por query string.
func ParseEstado(s string) (Estado, bool) {
	switch Estado(s) {
	case EstadoSinStock, EstadoCritico, EstadoBajo, EstadoSobreStock, EstadoNormal:
		return Estado(s), true
	}
	return "", false
}

// Clasificar determina el estado de un artículo según cantidad y umbrales.
// Un mínimo o máximo en 0 se interpreta como "sin configurar" y no participa
// en la clasificación. El orden de evaluación define la prioridad entre
// etiquetas: sin-stock > critico > bajo > sobre-stock > normal.
//
// El corte crítico es cantidad <= minimo*0.25; se evalúa en enteros como
// cantidad*4 <= minimo para no depender de redondeo flotante.
func Clasificar(cantidad, minimo, maximo int) Estado {
	switch {
	case cantidad <= 0:
		return EstadoSinStock
	case minimo > 0 && cantidad*4 <= minimo:
		return EstadoCritico
	case minimo > 0 && cantidad <= minimo:
		return EstadoBajo
	case maximo > 0 && cantidad >= maximo:
		return EstadoSobreStock
	default:
		return EstadoNormal
	}
}
