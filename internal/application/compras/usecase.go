// Package compras gestiona el ciclo de vida de las órdenes de compra:
// pendiente → recibida | cancelada, ambas terminales.
package compras

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
)

// CompraUseCase crea órdenes de compra y ejecuta sus transiciones de estado.
// La recepción convierte cada línea en una entrada de inventario a través
// del motor de movimientos, dentro de una única transacción.
type CompraUseCase struct {
	txRunner      TxRunner
	compraRepo    repository.CompraRepository
	proveedorRepo repository.ProveedorRepository
	articuloRepo  repository.ArticuloRepository
	ledger        *inventario.RegistrarMovimientoUseCase
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(
	txRunner TxRunner,
	compraRepo repository.CompraRepository,
	proveedorRepo repository.ProveedorRepository,
	articuloRepo repository.ArticuloRepository,
	ledger *inventario.RegistrarMovimientoUseCase,
) *CompraUseCase {
	return &CompraUseCase{
		txRunner:      txRunner,
		compraRepo:    compraRepo,
		proveedorRepo: proveedorRepo,
		articuloRepo:  articuloRepo,
		ledger:        ledger,
	}
}

// CompraItemInput es una línea solicitada al crear la orden.
type CompraItemInput struct {
	ArticuloID string
	Cantidad   int
}

// CrearCompraInput entrada para crear una orden en estado pendiente.
type CrearCompraInput struct {
	ProveedorID   string
	UsuarioID     string
	NumeroOrden   string
	Observaciones string
	Items         []CompraItemInput
}

// CrearCompra valida proveedor, artículos y líneas, e inserta la orden con
// sus detalles. Un número de orden repetido devuelve domain.ErrConflict sin
// crear fila alguna.
func (uc *CompraUseCase) CrearCompra(ctx context.Context, input CrearCompraInput) (*entity.Compra, error) {
	if input.ProveedorID == "" || input.UsuarioID == "" || input.NumeroOrden == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.ArticuloID == "" || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	proveedor, err := uc.proveedorRepo.GetByID(ctx, input.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	for _, item := range input.Items {
		articulo, err := uc.articuloRepo.GetByID(ctx, item.ArticuloID)
		if err != nil {
			return nil, err
		}
		if articulo == nil {
			return nil, domain.ErrNotFound
		}
	}

	compra := &entity.Compra{
		ID:            uuid.New().String(),
		ProveedorID:   input.ProveedorID,
		UsuarioID:     input.UsuarioID,
		NumeroOrden:   input.NumeroOrden,
		Estado:        entity.CompraPendiente,
		Observaciones: input.Observaciones,
		FechaOrden:    time.Now(),
	}
	detalles := make([]*entity.CompraDetalle, 0, len(input.Items))
	for _, item := range input.Items {
		detalles = append(detalles, &entity.CompraDetalle{
			ID:         uuid.New().String(),
			CompraID:   compra.ID,
			ArticuloID: item.ArticuloID,
			Cantidad:   item.Cantidad,
		})
	}

	err = uc.txRunner.RunCompra(ctx, func(
		_ repository.MovimientoRepository,
		_ repository.StockRepository,
		compraRepo repository.CompraRepository,
	) error {
		return compraRepo.CreateConDetalles(ctx, compra, detalles)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return compra, nil
}

// CambiarEstado ejecuta una transición de la orden. Solo se admiten los
// destinos "recibida" y "cancelada" y solo desde "pendiente"; cualquier otra
// transición (incluida la repetición de una recepción) devuelve
// domain.ErrConflict sin tocar nada.
//
// La recepción bloquea la fila de la orden, registra una entrada por cada
// línea y sella la orden con su fecha de recepción, todo en una transacción:
// un fallo en cualquier línea revierte también el cambio de estado.
func (uc *CompraUseCase) CambiarEstado(ctx context.Context, compraID, estado, usuarioID string) (*entity.Compra, error) {
	if estado != entity.CompraRecibida && estado != entity.CompraCancelada {
		return nil, domain.ErrInvalidInput
	}

	var actualizada *entity.Compra
	err := uc.txRunner.RunCompra(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		compraRepo repository.CompraRepository,
	) error {
		compra, err := compraRepo.GetForUpdate(ctx, compraID)
		if err != nil {
			return err
		}
		if compra == nil {
			return domain.ErrNotFound
		}
		if compra.Estado != entity.CompraPendiente {
			return domain.ErrConflict
		}

		now := time.Now()
		var fechaRecepcion *time.Time
		if estado == entity.CompraRecibida {
			detalles, err := compraRepo.GetDetalles(ctx, compraID)
			if err != nil {
				return err
			}
			for _, det := range detalles {
				_, err := uc.ledger.RegistrarEnTx(ctx, movRepo, stockRepo, inventario.MovimientoInput{
					ArticuloID: det.ArticuloID,
					UsuarioID:  usuarioID,
					Tipo:       entity.MovimientoEntrada,
					Cantidad:   det.Cantidad,
					Motivo:     fmt.Sprintf("Recepción orden #%s", compra.NumeroOrden),
				}, now)
				if err != nil {
					return err
				}
			}
			fechaRecepcion = &now
		}

		if err := compraRepo.UpdateEstado(ctx, compraID, estado, fechaRecepcion); err != nil {
			return err
		}
		compra.Estado = estado
		compra.FechaRecepcion = fechaRecepcion
		actualizada = compra
		return nil
	})
	if err != nil {
		return nil, err
	}
	return actualizada, nil
}

// Listar devuelve órdenes con filtros opcionales de estado y proveedor.
func (uc *CompraUseCase) Listar(ctx context.Context, f repository.CompraFiltro) ([]*entity.CompraResumen, error) {
	if f.Estado != "" && f.Estado != entity.CompraPendiente &&
		f.Estado != entity.CompraRecibida && f.Estado != entity.CompraCancelada {
		return nil, domain.ErrInvalidInput
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	return uc.compraRepo.List(ctx, f)
}

// ListarPorProveedor devuelve el historial de compras de un proveedor.
func (uc *CompraUseCase) ListarPorProveedor(ctx context.Context, proveedorID string) ([]*entity.CompraResumen, error) {
	proveedor, err := uc.proveedorRepo.GetByID(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	return uc.compraRepo.List(ctx, repository.CompraFiltro{ProveedorID: proveedorID, Limit: 100})
}
