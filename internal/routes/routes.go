package routes

import (
	"fmt"
	"net/http"

	"hospital-management-server/internal/handlers"
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/session"
	"hospital-management-server/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// UserRepository serves both the auth handlers and principal restoration.
type UserRepository interface {
	handlers.UserStore
	middleware.UserLoader
}

// Dependencies are the stores the routes are wired to.
type Dependencies struct {
	Users        UserRepository
	Doctors      handlers.DoctorStore
	Appointments handlers.AppointmentStore
	Audit        handlers.AuditStore
	Probe        handlers.Pinger
	Sessions     session.Store
}

// NewRouter builds the engine with logging, recovery, CORS for origin, the page
// templates and every route.
func NewRouter(deps Dependencies, origin string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	SetupRoutes(router, deps)
	return router, nil
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Users)
	doctorHandler := handlers.NewDoctorHandler(deps.Doctors)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Appointments, deps.Doctors)
	auditHandler := handlers.NewAuditHandler(deps.Audit)
	probeHandler := handlers.NewProbeHandler(deps.Probe)

	// Connectivity checks do not touch the session
	router.GET("/test", probeHandler.Check)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	app := router.Group("/")
	app.Use(middleware.SessionMiddleware(deps.Sessions, deps.Users))

	// Public pages
	app.GET("/", handlers.Index)
	app.GET("/doctors", doctorHandler.Register)
	app.POST("/doctors", doctorHandler.Register)
	app.GET("/signup", authHandler.Signup)
	app.POST("/signup", authHandler.Signup)
	app.GET("/login", authHandler.Login)
	app.POST("/login", authHandler.Login)

	// Login required
	private := app.Group("/")
	private.Use(middleware.RequireLogin())
	{
		private.GET("/patients", appointmentHandler.Book)
		private.POST("/patients", appointmentHandler.Book)
		private.GET("/bookings", appointmentHandler.List)
		private.GET("/edit/:id", appointmentHandler.Edit)
		private.POST("/edit/:id", appointmentHandler.Edit)
		private.GET("/delete/:id", appointmentHandler.Delete)
		private.POST("/delete/:id", appointmentHandler.Delete)
		private.GET("/logout", authHandler.Logout)
		private.GET("/details", auditHandler.Details)
		private.GET("/search", doctorHandler.Search)
		private.POST("/search", doctorHandler.Search)
	}
}
