package server

import (
	"github.com/evermorehealth/portal/internal/handlers"
	"github.com/evermorehealth/portal/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	pages := s.deps.Pages
	authHandler := s.deps.Auth
	verify := s.deps.Verify
	rateLimiter := middleware.RateLimiter(s.deps.Config.GetRateLimit())

	s.E.GET("/health", handlers.HealthGet)

	// Public pages.
	s.E.GET("/", pages.HomeGet)
	s.E.GET("/about", pages.AboutGet)
	s.E.GET("/emergency", pages.EmergencyGet)
	s.E.GET("/privacy", pages.PrivacyGet)
	s.E.GET("/terms", pages.TermsGet)
	s.E.GET("/careers", pages.CareersGet)
	s.E.GET("/careers/:id", pages.CareerDetail)
	s.E.GET("/locations", pages.LocationsGet)
	s.E.GET("/locations/:id", pages.LocationDetail)
	s.E.GET("/help", pages.HelpGet)
	s.E.GET("/help/:id", pages.HelpDetail)
	s.E.GET("/quality", pages.QualityGet)
	s.E.GET("/quality/:id", pages.QualityDetail)
	s.E.GET("/research", pages.ResearchGet)
	s.E.GET("/research/:id", pages.ResearchDetail)
	s.E.GET("/evermore-now", pages.NewsGet)
	s.E.GET("/evermore-now/:id", pages.NewsDetail)

	// Auth flows.
	s.E.GET("/login", authHandler.LoginGet)
	s.E.POST("/login", authHandler.LoginPost, rateLimiter)
	s.E.POST("/login/validate", authHandler.LoginValidate)

	s.E.GET("/signup", authHandler.SignupGet)
	s.E.POST("/signup", authHandler.SignupPost, rateLimiter)
	s.E.POST("/signup/validate", authHandler.SignupValidate)

	s.E.GET("/forgot-password", authHandler.ForgotPasswordGet)
	s.E.POST("/forgot-password", authHandler.ForgotPasswordPost, rateLimiter)
	s.E.GET("/forgot-password/cooldown", authHandler.ForgotPasswordCooldown)

	s.E.GET("/verify-email", verify.VerifyEmailPage, rateLimiter)
	s.E.POST("/logout", authHandler.LogoutPost)

	// Signed-in area.
	portal := s.E.Group("/portal", middleware.RequireSession)
	portal.GET("", authHandler.PortalGet)

	// Session API.
	api := s.E.Group("/api/session")
	api.POST("/verify-email", verify.VerifyEmailAPI, rateLimiter)
}
