package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/auth"
	"github.com/acampos/inventario-api/internal/application/authz"
	"github.com/acampos/inventario-api/internal/application/compras"
	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/application/movimientos"
	"github.com/acampos/inventario-api/internal/application/solicitudes"
	appstock "github.com/acampos/inventario-api/internal/application/stock"
	"github.com/acampos/inventario-api/internal/application/usecase"
	"github.com/acampos/inventario-api/internal/domain/repository"
	"github.com/acampos/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ArticuloUC   *usecase.ArticuloUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	StockUC      *appstock.StockUseCase
	RegistrarMov *inventario.RegistrarMovimientoUseCase
	ConsultaMov  *movimientos.ConsultaUseCase
	CompraUC     *compras.CompraUseCase
	CompraRepo   repository.CompraRepository
	SolicitudUC  *solicitudes.SolicitudUseCase
	Policy       *authz.Policy
	JWTSecret    string
	Logger       *logger.Logger
}

// Router registra las rutas de la API. Cada ruta protegida lleva además el
// guard de permiso correspondiente a su recurso y acción.
func Router(app *fiber.App, deps RouterDeps) {
	SetLogger(deps.Logger)

	api := app.Group("/api")
	policy := deps.Policy

	// Auth (público salvo perfil y password)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.Perfil)
	authGroup.Put("/password", AuthMiddleware(deps.JWTSecret), authHandler.CambiarPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Artículos
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Get("/", RequirePermiso(policy, authz.PermArticulosRead), articuloHandler.Listar)
	articulos.Post("/", RequirePermiso(policy, authz.PermArticulosCreate), articuloHandler.Crear)
	articulos.Get("/:id", RequirePermiso(policy, authz.PermArticulosRead), articuloHandler.Obtener)
	articulos.Put("/:id", RequirePermiso(policy, authz.PermArticulosUpdate), articuloHandler.Actualizar)
	articulos.Delete("/:id", RequirePermiso(policy, authz.PermArticulosDelete), articuloHandler.Eliminar)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", RequirePermiso(policy, authz.PermStockRead), stockHandler.Listado)
	stockGroup.Get("/alertas", RequirePermiso(policy, authz.PermStockRead), stockHandler.Alertas)
	stockGroup.Get("/resumen", RequirePermiso(policy, authz.PermStockRead), stockHandler.Resumen)
	stockGroup.Put("/:articuloId/niveles", RequirePermiso(policy, authz.PermStockUpdate), stockHandler.ActualizarNiveles)

	// Movimientos
	movGroup := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.RegistrarMov, deps.ConsultaMov)
	movGroup.Get("/", RequirePermiso(policy, authz.PermMovimientosRead), movimientoHandler.Listar)
	movGroup.Post("/", RequirePermiso(policy, authz.PermMovimientosCreate), movimientoHandler.Registrar)
	movGroup.Get("/estadisticas", RequirePermiso(policy, authz.PermMovimientosRead), movimientoHandler.Estadisticas)
	movGroup.Get("/:id", RequirePermiso(policy, authz.PermMovimientosRead), movimientoHandler.Obtener)

	// Compras
	comprasGroup := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC, deps.CompraRepo)
	comprasGroup.Get("/", RequirePermiso(policy, authz.PermComprasRead), compraHandler.Listar)
	comprasGroup.Post("/", RequirePermiso(policy, authz.PermComprasCreate), compraHandler.Crear)
	comprasGroup.Get("/:id", RequirePermiso(policy, authz.PermComprasRead), compraHandler.Obtener)
	comprasGroup.Put("/:id/estado", RequirePermiso(policy, authz.PermComprasUpdate), compraHandler.CambiarEstado)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC, deps.CompraUC)
	proveedores.Get("/", RequirePermiso(policy, authz.PermProveedoresRead), proveedorHandler.Listar)
	proveedores.Post("/", RequirePermiso(policy, authz.PermProveedoresCreate), proveedorHandler.Crear)
	proveedores.Get("/:id", RequirePermiso(policy, authz.PermProveedoresRead), proveedorHandler.Obtener)
	proveedores.Get("/:id/compras", RequirePermiso(policy, authz.PermComprasRead), proveedorHandler.Compras)
	proveedores.Put("/:id", RequirePermiso(policy, authz.PermProveedoresUpdate), proveedorHandler.Actualizar)
	proveedores.Delete("/:id", RequirePermiso(policy, authz.PermProveedoresDelete), proveedorHandler.Eliminar)

	// Solicitudes de material
	solicitudesGroup := protected.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	solicitudesGroup.Get("/", RequirePermiso(policy, authz.PermSolicitudesRead), solicitudHandler.Listar)
	solicitudesGroup.Post("/", RequirePermiso(policy, authz.PermSolicitudesCreate), solicitudHandler.Crear)
	solicitudesGroup.Get("/:id", RequirePermiso(policy, authz.PermSolicitudesRead), solicitudHandler.Obtener)
	solicitudesGroup.Put("/:id/estado", RequirePermiso(policy, authz.PermSolicitudesUpdate), solicitudHandler.CambiarEstado)

	// Usuarios (solo admin según la política)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", RequirePermiso(policy, authz.PermUsuariosRead), usuarioHandler.Listar)
	usuarios.Put("/:id", RequirePermiso(policy, authz.PermUsuariosUpdate), usuarioHandler.Actualizar)
	usuarios.Delete("/:id", RequirePermiso(policy, authz.PermUsuariosDelete), usuarioHandler.Desactivar)
}
