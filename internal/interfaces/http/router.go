package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/proposal-pro/internal/application/auth"
	"github.com/tu-usuario/proposal-pro/internal/application/proposal"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProposalUC *proposal.UseCase
	PDFUC      *proposal.PDFUseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices: propuestas y contratos (protegido)
	invoices := protected.Group("/invoices")
	proposalHandler := NewProposalHandler(deps.ProposalUC, deps.PDFUC)
	invoices.Post("/", proposalHandler.Create)
	invoices.Get("/", proposalHandler.List)
	invoices.Get("/:id", proposalHandler.GetByID)
	invoices.Put("/:id", proposalHandler.Update)
	// Borrar es destructivo: solo admin.
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), proposalHandler.Delete)
	invoices.Get("/:id/pdf", proposalHandler.DownloadPDF)

	// Perfil del negocio (protegido)
	profile := protected.Group("/business-profile")
	profileHandler := NewProfileHandler(deps.ProposalUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Save)
}
