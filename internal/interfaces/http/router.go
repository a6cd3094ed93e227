package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/barrel"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ArticleUC   *usecase.ArticleUseCase
	StockUC     *stock.UseCase
	BarrelUC    *barrel.UseCase
	UserUC      *usecase.UserUseCase
	AuditUC     *usecase.AuditUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *report.UseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token + actor cargado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ActorLoader(deps.UserRepo))

	// Articles (protegido; el gating fino por permiso vive en los casos de uso)
	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)
	articles.Post("/:id/image", articleHandler.UploadImage)
	articles.Get("/:id/image", articleHandler.ImageURL)

	// Mutaciones de stock con auditoría
	stockHandler := NewStockHandler(deps.StockUC)
	articles.Post("/:id/stock", stockHandler.Mutate)

	// Barrels (protegido)
	barrels := protected.Group("/barrels")
	barrelHandler := NewBarrelHandler(deps.BarrelUC)
	barrels.Post("/", barrelHandler.Create)
	barrels.Get("/", barrelHandler.List)
	barrels.Get("/:id", barrelHandler.GetByID)
	barrels.Delete("/:id", barrelHandler.Delete)
	barrels.Post("/:id/fill", barrelHandler.Fill)
	barrels.Post("/:id/drain", barrelHandler.Drain)
	barrels.Post("/:id/dilute", barrelHandler.Dilute)
	barrels.Get("/:id/history", barrelHandler.History)

	// Audit log (protegido; corrección solo admin, verificada en el caso de uso)
	logs := protected.Group("/logs")
	auditHandler := NewAuditHandler(deps.AuditUC)
	logs.Get("/", auditHandler.List)
	logs.Put("/:id/reason", auditHandler.UpdateReason)
	logs.Delete("/:id", auditHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/movements", dashboardHandler.Movements)

	// Panel admin: corte grueso por permiso en el grupo, gating fino en los
	// casos de uso.
	admin := protected.Group("/admin", RequirePermission(func(p authz.PermissionSet) bool {
		return p.AccessAdminPanel
	}))
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC)
	admin.Get("/reports/inventory.pdf", reportHandler.InventoryPDF)
}
