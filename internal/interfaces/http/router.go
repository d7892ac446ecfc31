package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ariefstwn/hotelstock-api/internal/application/auth"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
	"github.com/ariefstwn/hotelstock-api/internal/application/opname"
	"github.com/ariefstwn/hotelstock-api/internal/application/replenishment"
	"github.com/ariefstwn/hotelstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ItemUC          *usecase.ItemUseCase
	LedgerUC        *inventory.LedgerUseCase
	AlertUC         *inventory.AlertUseCase
	OpnameUC        *opname.UseCase
	ReplenishmentUC *replenishment.UseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; perfiles protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profiles", AuthMiddleware(deps.JWTSecret), authHandler.Profiles)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Post("/:id/archive", itemHandler.Archive)

	// Libro de movimientos (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Post("/", movementHandler.Post)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Modify)
	movements.Post("/:id/discard", movementHandler.Discard)
	movements.Post("/:id/revert", movementHandler.Revert)

	// Alertas de stock (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Get("/overview", alertHandler.Overview)

	// Opname (protegido)
	opnameGroup := protected.Group("/opname")
	opnameHandler := NewOpnameHandler(deps.OpnameUC)
	opnameGroup.Post("/", opnameHandler.Create)
	opnameGroup.Get("/", opnameHandler.List)
	opnameGroup.Get("/:id", opnameHandler.GetByID)
	opnameGroup.Put("/:id/lines/:lineId", opnameHandler.UpdateLine)
	opnameGroup.Post("/:id/submit", opnameHandler.Submit)
	opnameGroup.Post("/:id/approve", opnameHandler.Approve)

	// Reposición (protegido)
	repl := protected.Group("/replenishment")
	replHandler := NewReplenishmentHandler(deps.ReplenishmentUC)
	repl.Post("/", replHandler.Create)
	repl.Get("/", replHandler.List)
	repl.Get("/:id", replHandler.GetByID)
	repl.Get("/:id/pdf", replHandler.DownloadPDF)
	repl.Put("/:id", replHandler.Update)
	repl.Delete("/:id", replHandler.Delete)
	repl.Post("/:id/submit", replHandler.Submit)
	repl.Post("/:id/approve", replHandler.Approve)
	repl.Post("/:id/reject", replHandler.Reject)
}
