package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ourkidney/api-backend/internal/handlers"
	"github.com/ourkidney/api-backend/internal/middleware"
	"github.com/ourkidney/api-backend/internal/services"
)

// Handlers bundles every handler the router wires up
type Handlers struct {
	Auth            *handlers.AuthHandler
	Admin           *handlers.AdminHandler
	Blog            *handlers.BlogHandler
	Slide           *handlers.SlideHandler
	Partner         *handlers.PartnerHandler
	FAQ             *handlers.FAQHandler
	Member          *handlers.MemberHandler
	MissionVision   *handlers.MissionVisionHandler
	DonationMethod  *handlers.DonationMethodHandler
	Registration    *handlers.RegistrationHandler
	Upload          *handlers.UploadHandler
	Contact         *handlers.ContactHandler
	Cleanup         *handlers.CleanupHandler
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter builds the gin engine with all public and admin routes.
// uploadsDir is served at /uploads so stored images resolve publicly.
func SetupRouter(h *Handlers, authService *services.AuthService, uploadsDir string) *gin.Engine {
	r := gin.Default()
	r.Static("/uploads", uploadsDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", handlers.PingHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	api := r.Group("/api")
	{
		// Auth endpoints are public; the session they establish gates
		// everything in the admin group below.
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.POST("/forgot-password", h.Auth.ForgotPassword)
			auth.POST("/reset-password/:token", h.Auth.ResetPassword)
		}

		// Public content reads
		api.GET("/blog", h.Blog.List)
		api.GET("/blog/:id", h.Blog.Get)
		api.GET("/slide", h.Slide.List)
		api.GET("/partner", h.Partner.List)
		api.GET("/partner/:id", h.Partner.Get)
		api.GET("/faq", h.FAQ.List)
		api.GET("/faq/:id", h.FAQ.Get)
		api.GET("/members", h.Member.List)
		api.GET("/mission-vision", h.MissionVision.List)
		api.GET("/donation-methods", h.DonationMethod.List)

		// Public form submissions
		api.POST("/registrations", h.Registration.Create)
		api.POST("/contact", h.Contact.Submit)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware(authService))
		{
			admin.GET("/admin/me", h.Admin.Me)
			admin.POST("/admin/change-email", h.Admin.ChangeEmail)

			admin.POST("/blog", h.Blog.Create)
			admin.PUT("/blog/:id", h.Blog.Update)
			admin.DELETE("/blog/:id", h.Blog.Delete)

			admin.POST("/slide", h.Slide.Create)
			admin.PUT("/slide/:id", h.Slide.Update)
			admin.DELETE("/slide/:id", h.Slide.Delete)

			admin.POST("/partner", h.Partner.Create)
			admin.PUT("/partner/:id", h.Partner.Update)
			admin.DELETE("/partner/:id", h.Partner.Delete)

			admin.POST("/faq", h.FAQ.Create)
			admin.PUT("/faq/:id", h.FAQ.Update)
			admin.DELETE("/faq/:id", h.FAQ.Delete)

			admin.POST("/members", h.Member.Create)
			admin.PUT("/members/:id", h.Member.Update)
			admin.DELETE("/members/:id", h.Member.Delete)

			admin.POST("/mission-vision", h.MissionVision.Create)
			admin.PUT("/mission-vision/:id", h.MissionVision.Update)
			admin.DELETE("/mission-vision/:id", h.MissionVision.Delete)

			// Donation methods address records via ?id= on the
			// collection path.
			admin.POST("/donation-methods", h.DonationMethod.Create)
			admin.PUT("/donation-methods", h.DonationMethod.Update)
			admin.DELETE("/donation-methods", h.DonationMethod.Delete)

			admin.GET("/registrations", h.Registration.List)
			admin.POST("/upload-image", h.Upload.Upload)
			admin.POST("/admin/maintenance/cleanup", h.Cleanup.RunCleanup)
		}
	}

	return r
}
