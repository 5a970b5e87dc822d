package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/vendas-api/internal/application/analytics"
	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/sales"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	"github.com/jhoicas/vendas-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	ProductUC         *usecase.ProductUseCase
	ClientUC          *usecase.ClientUseCase
	NegotiationTypeUC *usecase.NegotiationTypeUseCase
	SellerUC          *usecase.SellerUseCase
	PermissionUC      *usecase.PermissionUseCase
	DraftUC           *sales.DraftUseCase
	SaleQueryUC       *sales.QueryUseCase
	DashboardUC       *appanalytics.DashboardUseCase
	JWTSecret         string
	Log               zerolog.Logger
}

// Router registra las rutas de la API. Cada grupo queda restringido a los roles de
// su pantalla en el catálogo de navegación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y usuario activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC), LoadActor(deps.AuthUC))

	me := protected.Group("/auth")
	me.Post("/logout", authHandler.Logout)
	me.Get("/me", authHandler.Me)
	me.Put("/me", authHandler.UpdateMe)
	me.Post("/me/photo", authHandler.UploadPhoto)
	me.Get("/navigation", authHandler.Navigation)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireScreen(access.ScreenDashboard), dashboardHandler.GetSummary)

	// Products
	products := protected.Group("/products", RequireScreen(access.ScreenProdutos))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients
	clients := protected.Group("/clients", RequireScreen(access.ScreenClientes))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Negotiation types: la lectura la necesita cualquier vendedor para armar la cabecera
	// de una venta; las escrituras siguen los roles de la pantalla.
	ntHandler := NewNegotiationTypeHandler(deps.NegotiationTypeUC)
	ntWrite := RequireScreen(access.ScreenNegociacoes)
	nts := protected.Group("/negotiation-types")
	nts.Get("/", ntHandler.List)
	nts.Get("/:id", ntHandler.GetByID)
	nts.Post("/", ntWrite, ntHandler.Create)
	nts.Put("/:id", ntWrite, ntHandler.Update)
	nts.Delete("/:id", ntWrite, ntHandler.Delete)

	// Sellers (SUP / ADMIN)
	sellers := protected.Group("/sellers", RequireScreen(access.ScreenVendedores))
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Get("/", sellerHandler.List)
	sellers.Post("/", sellerHandler.Create)
	sellers.Get("/:id", sellerHandler.GetByID)
	sellers.Put("/:id", sellerHandler.Update)
	sellers.Delete("/:id", sellerHandler.Delete)

	// Permissions (SUP / ADMIN)
	perms := protected.Group("/permissions", RequireScreen(access.ScreenAcessos))
	permHandler := NewPermissionHandler(deps.PermissionUC)
	perms.Get("/screens", permHandler.Screens)
	perms.Get("/matrix/:screen", permHandler.Matrix)
	perms.Get("/", permHandler.List)
	perms.Post("/", permHandler.Create)
	perms.Put("/:id", permHandler.Update)
	perms.Delete("/:id", permHandler.Delete)

	// Sale drafts: registradas antes que /sales/:id
	drafts := protected.Group("/sales/drafts", RequireScreen(access.ScreenNovaVenda))
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Delete("/:id", draftHandler.Discard)
	drafts.Put("/:id/header", draftHandler.ConfirmHeader)
	drafts.Post("/:id/header/edit", draftHandler.BackToHeader)
	drafts.Post("/:id/products", draftHandler.ResumeProducts)
	drafts.Post("/:id/lines", draftHandler.AddProduct)
	drafts.Put("/:id/lines/:productId", draftHandler.SetQuantity)
	drafts.Delete("/:id/lines/:productId", draftHandler.RemoveLine)
	drafts.Post("/:id/checkout", draftHandler.ProceedToCheckout)
	drafts.Post("/:id/checkout/back", draftHandler.BackToProducts)
	drafts.Post("/:id/submit", draftHandler.Submit)
	drafts.Post("/:id/restart", draftHandler.Restart)

	// Sales (consulta)
	salesGroup := protected.Group("/sales", RequireScreen(access.ScreenVendas))
	saleHandler := NewSaleHandler(deps.SaleQueryUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/export", saleHandler.Export)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.Receipt)
}
