// Package stock expone las consultas de existencias (listado, alertas,
// resumen) y la actualización de umbrales por artículo.
package stock

import (
	"context"
	"sort"

	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
	stockdom "github.com/acampos/inventario-api/internal/domain/stock"
)

// Fila es una fila de listado de stock con su estado ya clasificado.
type Fila struct {
	entity.ArticuloStock
	Estado stockdom.Estado
}

// Resumen agrega los contadores por estado del inventario completo.
type Resumen struct {
	TotalArticulos int
	TotalUnidades  int
	SinStock       int
	Criticos       int
	BajoStock      int
	Normal         int
	SobreStock     int
}

// StockUseCase consultas de stock y actualización de niveles.
// La clasificación de estado sale siempre de stockdom.Clasificar; el filtro
// por estado se aplica aquí y no en SQL para que exista una sola fuente de
// verdad sobre la prioridad de las etiquetas.
type StockUseCase struct {
	stockRepo    repository.StockRepository
	articuloRepo repository.ArticuloRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, articuloRepo repository.ArticuloRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, articuloRepo: articuloRepo}
}

// Listado devuelve artículos activos con su stock, ordenados por nombre.
// estado y categoria son filtros opcionales; un estado desconocido devuelve
// domain.ErrInvalidInput.
func (uc *StockUseCase) Listado(ctx context.Context, estado, categoria string) ([]Fila, error) {
	var filtro stockdom.Estado
	if estado != "" {
		parsed, ok := stockdom.ParseEstado(estado)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		filtro = parsed
	}

	rows, err := uc.stockRepo.Listado(ctx, categoria)
	if err != nil {
		return nil, err
	}

	filas := make([]Fila, 0, len(rows))
	for _, r := range rows {
		e := stockdom.Clasificar(r.Cantidad, r.StockMinimo, r.StockMaximo)
		if filtro != "" && e != filtro {
			continue
		}
		filas = append(filas, Fila{ArticuloStock: *r, Estado: e})
	}
	return filas, nil
}

// Alertas devuelve los artículos en o por debajo de su mínimo configurado,
// ordenados por cantidad ascendente (los más urgentes primero).
func (uc *StockUseCase) Alertas(ctx context.Context) ([]Fila, error) {
	rows, err := uc.stockRepo.Listado(ctx, "")
	if err != nil {
		return nil, err
	}
	var alertas []Fila
	for _, r := range rows {
		e := stockdom.Clasificar(r.Cantidad, r.StockMinimo, r.StockMaximo)
		switch e {
		case stockdom.EstadoSinStock, stockdom.EstadoCritico, stockdom.EstadoBajo:
			alertas = append(alertas, Fila{ArticuloStock: *r, Estado: e})
		}
	}
	sort.SliceStable(alertas, func(i, j int) bool {
		return alertas[i].Cantidad < alertas[j].Cantidad
	})
	return alertas, nil
}

// ObtenerResumen calcula los contadores globales por estado.
func (uc *StockUseCase) ObtenerResumen(ctx context.Context) (*Resumen, error) {
	rows, err := uc.stockRepo.Listado(ctx, "")
	if err != nil {
		return nil, err
	}
	res := &Resumen{TotalArticulos: len(rows)}
	for _, r := range rows {
		res.TotalUnidades += r.Cantidad
		switch stockdom.Clasificar(r.Cantidad, r.StockMinimo, r.StockMaximo) {
		case stockdom.EstadoSinStock:
			res.SinStock++
		case stockdom.EstadoCritico:
			res.Criticos++
		case stockdom.EstadoBajo:
			res.BajoStock++
		case stockdom.EstadoSobreStock:
			res.SobreStock++
		default:
			res.Normal++
		}
	}
	return res, nil
}

// ActualizarNiveles aplica el field set de umbrales/ubicación al stock del
// artículo y devuelve el registro actualizado. Umbrales negativos se
// rechazan; 0 es válido y significa "sin configurar".
func (uc *StockUseCase) ActualizarNiveles(ctx context.Context, articuloID string, niveles repository.StockNiveles) (*entity.Stock, error) {
	if niveles.Vacio() {
		return nil, domain.ErrInvalidInput
	}
	if (niveles.StockMinimo != nil && *niveles.StockMinimo < 0) ||
		(niveles.StockMaximo != nil && *niveles.StockMaximo < 0) {
		return nil, domain.ErrInvalidInput
	}

	articulo, err := uc.articuloRepo.GetByID(ctx, articuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.stockRepo.UpdateNiveles(ctx, articuloID, niveles); err != nil {
		return nil, err
	}
	return uc.stockRepo.Get(ctx, articuloID)
}
