package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	"github.com/uprisingink/studio-api/internal/config"
	"github.com/uprisingink/studio-api/internal/handlers"
	"github.com/uprisingink/studio-api/internal/imaging"
	infraRepo "github.com/uprisingink/studio-api/internal/infra/repository"
	"github.com/uprisingink/studio-api/internal/mailer"
	"github.com/uprisingink/studio-api/internal/middleware"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/payments"
	"github.com/uprisingink/studio-api/internal/realtime"
	"github.com/uprisingink/studio-api/internal/sitecontent"
	"github.com/uprisingink/studio-api/internal/storage"
	ucAppointment "github.com/uprisingink/studio-api/internal/usecase/appointment"
	ucArtwork "github.com/uprisingink/studio-api/internal/usecase/artwork"
	ucMessage "github.com/uprisingink/studio-api/internal/usecase/message"
	ucReview "github.com/uprisingink/studio-api/internal/usecase/review"
)

// Deps are the process-wide singletons main wires up before serving.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Hub      *realtime.Hub
	Content  *sitecontent.Store
	Store    *storage.S3Store
	Mailer   mailer.Sender
	Checkout *payments.DepositCheckout
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SanitizeInputMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	messageRepo := infraRepo.NewMessageGormRepository(d.DB)
	artworkRepo := infraRepo.NewArtworkGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher, d.Hub)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	transitionUC := ucAppointment.NewTransitionAppointment(appointmentRepo, auditDispatcher, d.Hub)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	// A typed nil pointer must not reach the interface field, or the
	// disabled-payments check would never trigger.
	var checkoutProvider ucAppointment.CheckoutCreator
	if d.Checkout != nil {
		checkoutProvider = d.Checkout
	}
	checkoutUC := ucAppointment.NewDepositCheckout(appointmentRepo, checkoutProvider, auditDispatcher)
	markPaidUC := ucAppointment.NewMarkDepositPaid(appointmentRepo, auditDispatcher)

	sendUC := ucMessage.NewSendMessage(messageRepo, auditDispatcher, d.Hub)
	threadReader := ucMessage.NewThreadReader(messageRepo)
	markReadUC := ucMessage.NewMarkRead(messageRepo)

	uploadUC := ucArtwork.NewUploadArtwork(artworkRepo, d.Store, imaging.Compress, auditDispatcher)
	updateArtworkUC := ucArtwork.NewUpdateArtwork(artworkRepo, auditDispatcher)
	toggleUC := ucArtwork.NewToggleVisibility(artworkRepo, auditDispatcher)
	deleteArtworkUC := ucArtwork.NewDeleteArtwork(artworkRepo, auditDispatcher)
	listArtworkUC := ucArtwork.NewListArtwork(artworkRepo)

	createReviewUC := ucReview.NewCreateReview(reviewRepo, auditDispatcher)
	listReviewsUC := ucReview.NewListReviews(reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)
	artistHandler := handlers.NewArtistHandler(d.DB)
	clientHandler := handlers.NewClientHandler(d.DB)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		listUC,
		transitionUC,
		deleteUC,
		checkoutUC,
		markPaidUC,
	)

	messageHandler := handlers.NewMessageHandler(sendUC, threadReader, markReadUC)

	artworkHandler := handlers.NewArtworkHandler(
		uploadUC,
		updateArtworkUC,
		toggleUC,
		deleteArtworkUC,
		listArtworkUC,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC, listReviewsUC)

	adminHandler := handlers.NewAdminHandler(d.DB, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	contactHandler := handlers.NewContactHandler(d.Mailer, d.Config)
	siteHandler := handlers.NewSiteHandler(d.Content)
	wsHandler := handlers.NewWSHandler(d.Hub)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/artists", artistHandler.List)
			publicAPI.GET("/artists/:id", artistHandler.Get)
			publicAPI.GET("/artists/:id/artwork", artworkHandler.Gallery)
			publicAPI.GET("/artists/:id/reviews", reviewHandler.ListForArtist)

			publicAPI.POST("/contact", contactHandler.Submit)
			publicAPI.GET("/site/hero", siteHandler.GetHeroBackground)
			publicAPI.GET("/site/assets", siteHandler.GetAssetManifest)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/ws", wsHandler.Serve)

			// ------------------------------
			// ROLE RECORDS
			// ------------------------------
			secured.PATCH("/me/client",
				middleware.RequireRole(models.RoleClient),
				clientHandler.UpdateMe)

			secured.PATCH("/me/artist",
				middleware.RequireRole(models.RoleArtist),
				artistHandler.UpdateMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments",
				middleware.RequireRole(models.RoleClient),
				appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.Transition)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/deposit/checkout", appointmentHandler.CreateDepositCheckout)
			secured.POST("/appointments/:id/deposit/paid", appointmentHandler.MarkDepositPaid)

			// ------------------------------
			// MESSAGING
			// ------------------------------
			secured.POST("/messages", messageHandler.Send)
			secured.GET("/messages/conversations", messageHandler.Conversations)
			secured.GET("/messages/unread", messageHandler.UnreadCount)
			secured.GET("/messages/thread/:partnerId", messageHandler.Thread)
			secured.PATCH("/messages/:id/read", messageHandler.MarkRead)

			// ------------------------------
			// ARTWORK
			// ------------------------------
			artistOnly := secured.Group("/artwork")
			artistOnly.Use(middleware.RequireRole(models.RoleArtist))
			{
				artistOnly.POST("", artworkHandler.Upload)
				artistOnly.GET("", artworkHandler.Mine)
				artistOnly.PATCH("/:id", artworkHandler.Update)
				artistOnly.PATCH("/:id/visibility", artworkHandler.ToggleVisibility)
				artistOnly.DELETE("/:id", artworkHandler.Delete)
			}

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews",
				middleware.RequireRole(models.RoleClient),
				reviewHandler.Create)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/users", adminHandler.CreateUser)
				admin.GET("/appointments", adminHandler.ListAppointments)
				admin.GET("/clients", adminHandler.ListClients)
				admin.GET("/audit-logs", auditLogsHandler.List)
				admin.PUT("/site/hero", siteHandler.SetHeroBackground)
			}
		}
	}
}
