package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/sync"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoriaUC  *usecase.CategoriaUseCase
	ProductoUC   *usecase.ProductoUseCase
	ResenaUC     *usecase.ResenaUseCase
	NovedadUC    *usecase.NovedadUseCase
	BannerUC     *usecase.BannerUseCase
	ConfigUC     *usecase.ConfiguracionUseCase
	SuscriptorUC *usecase.SuscriptorUseCase
	CuponUC      *usecase.CuponUseCase
	PedidoUC     *usecase.PedidoUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	SeccionUC    *usecase.SeccionUseCase
	SyncUC       *sync.SyncUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	BaseURL      string
}

// Router registra las rutas de la API: lecturas públicas del storefront,
// auth, rutas de cliente autenticado y el panel admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	resenaHandler := NewResenaHandler(deps.ResenaUC)
	novedadHandler := NewNovedadHandler(deps.NovedadUC, deps.ConfigUC, deps.BaseURL)
	bannerHandler := NewBannerHandler(deps.BannerUC)
	configHandler := NewConfigHandler(deps.ConfigUC)
	suscriptorHandler := NewSuscriptorHandler(deps.SuscriptorUC, deps.ConfigUC)
	cuponHandler := NewCuponHandler(deps.CuponUC)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.ConfigUC)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	seccionHandler := NewSeccionHandler(deps.SeccionUC)
	syncHandler := NewSyncHandler(deps.SyncUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	// Lecturas públicas del storefront (sin auth, filtradas por visibilidad)
	api.Get("/categorias", categoriaHandler.ListPublicas)
	api.Get("/productos", productoHandler.ListPublicos)
	api.Get("/productos/slug/:slug", productoHandler.GetPorSlug)
	api.Get("/banners", bannerHandler.ListPublicos)
	api.Get("/resenas", resenaHandler.ListPublicas)
	api.Post("/resenas", resenaHandler.Submit)
	api.Get("/novedades", novedadHandler.ListPublicas)
	api.Get("/novedades/rss", novedadHandler.FeedRSS)
	api.Get("/config", configHandler.GetPublica)
	api.Get("/secciones", seccionHandler.ListPublicas)
	api.Post("/newsletter", suscriptorHandler.Suscribir)
	api.Post("/cupones/validar", cuponHandler.Validar)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.Perfil)

	// Cliente autenticado (requiere Bearer Token)
	pedidos := api.Group("/pedidos", AuthMiddleware(deps.JWTSecret))
	pedidos.Post("/", pedidoHandler.Checkout)
	pedidos.Get("/mis-pedidos", pedidoHandler.MisPedidos)
	pedidos.Get("/:id/pdf", pedidoHandler.PDF)

	// Panel admin (Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRol(entity.RolAdmin))

	admin.Get("/categorias", categoriaHandler.ListAll)
	admin.Post("/categorias", categoriaHandler.Create)
	admin.Put("/categorias/:id", categoriaHandler.Update)
	admin.Delete("/categorias/:id", categoriaHandler.Delete)

	admin.Get("/productos", productoHandler.ListAll)
	admin.Post("/productos", productoHandler.Create)
	admin.Put("/productos/:id", productoHandler.Update)
	admin.Delete("/productos/:id", productoHandler.Delete)

	admin.Get("/resenas", resenaHandler.ListAll)
	admin.Post("/resenas", resenaHandler.Create)
	admin.Put("/resenas/:id", resenaHandler.Update)
	admin.Delete("/resenas/:id", resenaHandler.Delete)

	admin.Get("/novedades", novedadHandler.ListAll)
	admin.Post("/novedades", novedadHandler.Create)
	admin.Put("/novedades/:id", novedadHandler.Update)
	admin.Delete("/novedades/:id", novedadHandler.Delete)

	admin.Get("/banners", bannerHandler.ListAll)
	admin.Post("/banners", bannerHandler.Create)
	admin.Put("/banners/:id", bannerHandler.Update)
	admin.Delete("/banners/:id", bannerHandler.Delete)

	admin.Get("/cupones", cuponHandler.ListAll)
	admin.Post("/cupones", cuponHandler.Create)
	admin.Put("/cupones/:id", cuponHandler.Update)
	admin.Delete("/cupones/:id", cuponHandler.Delete)

	admin.Get("/usuarios", usuarioHandler.ListConPedidos)
	admin.Put("/usuarios/:id", usuarioHandler.Update)
	admin.Delete("/usuarios/:id", usuarioHandler.Delete)

	admin.Get("/pedidos", pedidoHandler.ListAll)
	admin.Get("/pedidos/:id/pdf", pedidoHandler.PDF)

	admin.Get("/secciones", seccionHandler.ListAll)
	admin.Put("/secciones/:id", seccionHandler.Update)
	admin.Delete("/secciones/:id", seccionHandler.Delete)

	admin.Get("/suscriptores", suscriptorHandler.ListAll)
	admin.Put("/config", configHandler.Actualizar)

	admin.Post("/sync-sheets", syncHandler.Exportar)
}
