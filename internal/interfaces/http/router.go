package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	BrandUC     *usecase.BrandUseCase
	ProviderUC  *usecase.ProviderUseCase
	CustomerUC  *usecase.CustomerUseCase
	CreateSale  *sales.CreateSaleUseCase
	ReadSale    *sales.ReadSaleUseCase
	Receipt     *sales.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Get("/verify_token/:token", authHandler.VerifyToken)
	authGroup.Get("/verify_token", authHandler.VerifyToken)

	// Rutas protegidas (requieren Bearer Token); los borrados de catálogo
	// además exigen rol admin.
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categories (CRUD por ID y operaciones por nombre)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/name/:name", categoryHandler.GetByName)
	categories.Delete("/name/:name", adminOnly, categoryHandler.DeleteByName)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Brands
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", adminOnly, brandHandler.Delete)

	// Providers (CRUD por ID y operaciones por nombre)
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", providerHandler.Create)
	providers.Get("/", providerHandler.List)
	providers.Get("/name/:name", providerHandler.GetByName)
	providers.Delete("/name/:name", adminOnly, providerHandler.DeleteByName)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)
	providers.Delete("/:id", adminOnly, providerHandler.Delete)

	// Customers (lookup por ID interno y por DNI)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/dni/:dni", customerHandler.GetByDNI)
	customers.Get("/:id", customerHandler.GetByID)

	// Sales (el POST responde 200 con la venta creada)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.ReadSale, deps.Receipt)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
