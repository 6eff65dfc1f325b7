// Package authz resuelve autorización por rol contra una política inmutable.
package authz

import (
	"fmt"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// Permisos conocidos, nombrados como <recurso>:<acción>.
const (
	PermArticulosRead     = "articulos:read"
	PermArticulosCreate   = "articulos:create"
	PermArticulosUpdate   = "articulos:update"
	PermArticulosDelete   = "articulos:delete"
	PermStockRead         = "stock:read"
	PermStockUpdate       = "stock:update"
	PermMovimientosRead   = "movimientos:read"
	PermMovimientosCreate = "movimientos:create"
	PermProveedoresRead   = "proveedores:read"
	PermProveedoresCreate = "proveedores:create"
	PermProveedoresUpdate = "proveedores:update"
	PermProveedoresDelete = "proveedores:delete"
	PermComprasRead       = "compras:read"
	PermComprasCreate     = "compras:create"
	PermComprasUpdate     = "compras:update"
	PermComprasDelete     = "compras:delete"
	PermUsuariosRead      = "usuarios:read"
	PermUsuariosCreate    = "usuarios:create"
	PermUsuariosUpdate    = "usuarios:update"
	PermUsuariosDelete    = "usuarios:delete"
	PermReportesRead      = "reportes:read"

	PermSolicitudesRead   = "solicitudes:read"
	PermSolicitudesCreate = "solicitudes:create"
	PermSolicitudesUpdate = "solicitudes:update"
)

// PermisoDenegadoError transporta el rol del actor y el permiso faltante
// para la respuesta de diagnóstico.
type PermisoDenegadoError struct {
	Rol     string
	Permiso string
}

func (e *PermisoDenegadoError) Error() string {
	return fmt.Sprintf("acceso denegado: el rol %q no tiene el permiso %q", e.Rol, e.Permiso)
}

// Policy es la tabla rol → permisos. Se construye una vez en el arranque y
// se inyecta donde se necesite; nunca se muta en runtime.
type Policy struct {
	permisos map[string][]string
	index    map[string]map[string]struct{}
}

// NewPolicy construye una política a partir de la tabla dada. El mapa de
// entrada se copia; mutaciones posteriores del argumento no la afectan.
func NewPolicy(tabla map[string][]string) *Policy {
	p := &Policy{
		permisos: make(map[string][]string, len(tabla)),
		index:    make(map[string]map[string]struct{}, len(tabla)),
	}
	for rol, lista := range tabla {
		copia := make([]string, len(lista))
		copy(copia, lista)
		p.permisos[rol] = copia
		set := make(map[string]struct{}, len(lista))
		for _, perm := range lista {
			set[perm] = struct{}{}
		}
		p.index[rol] = set
	}
	return p
}

// DefaultPolicy devuelve la tabla de permisos estándar de la aplicación.
func DefaultPolicy() *Policy {
	return NewPolicy(map[string][]string{
		entity.RolAdmin: {
			PermArticulosRead, PermArticulosCreate, PermArticulosUpdate, PermArticulosDelete,
			PermStockRead, PermStockUpdate,
			PermMovimientosRead, PermMovimientosCreate,
			PermProveedoresRead, PermProveedoresCreate, PermProveedoresUpdate, PermProveedoresDelete,
			PermComprasRead, PermComprasCreate, PermComprasUpdate, PermComprasDelete,
			PermUsuariosRead, PermUsuariosCreate, PermUsuariosUpdate, PermUsuariosDelete,
			PermSolicitudesRead, PermSolicitudesCreate, PermSolicitudesUpdate,
			PermReportesRead,
		},
		entity.RolEncargado: {
			PermArticulosRead, PermArticulosCreate, PermArticulosUpdate,
			PermStockRead, PermStockUpdate,
			PermMovimientosRead, PermMovimientosCreate,
			PermProveedoresRead,
			PermComprasRead, PermComprasCreate, PermComprasUpdate,
			PermSolicitudesRead, PermSolicitudesUpdate,
			PermReportesRead,
		},
		entity.RolOperador: {
			PermArticulosRead,
			PermStockRead,
			PermMovimientosRead, PermMovimientosCreate,
			PermProveedoresRead,
			PermComprasRead,
			PermSolicitudesRead, PermSolicitudesUpdate,
		},
		entity.RolSolicitante: {
			PermArticulosRead,
			PermSolicitudesRead, PermSolicitudesCreate,
		},
	})
}

// Autorizar devuelve nil si el rol tiene el permiso; si no, un
// *PermisoDenegadoError con el detalle.
func (p *Policy) Autorizar(rol, permiso string) error {
	if set, ok := p.index[rol]; ok {
		if _, ok := set[permiso]; ok {
			return nil
		}
	}
	return &PermisoDenegadoError{Rol: rol, Permiso: permiso}
}

// Permisos devuelve la lista de permisos de un rol (copia defensiva).
// Rol desconocido devuelve lista vacía.
func (p *Policy) Permisos(rol string) []string {
	lista, ok := p.permisos[rol]
	if !ok {
		return []string{}
	}
	copia := make([]string, len(lista))
	copy(copia, lista)
	return copia
}
