package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"studio/app/port"
	"studio/app/rest/handlers"
	custommw "studio/app/rest/middleware"
	"studio/app/usecase"
	"studio/app/utils/validator"
)

// RouterConfig holds everything the router wires together.
type RouterConfig struct {
	Logger          *slog.Logger
	AuthUsecase     port.AuthUsecase
	ReviewUsecase   port.ReviewUsecase
	ReviewFeed      *usecase.ReviewFeed
	ImageProxy      port.ImageProxyUsecase
	ContactUsecase  *usecase.ContactUsecase
	ProfileRepo     port.ProfileRepository
	AdminRepo       port.AdminRepository
	Storage         port.StorageGateway
	Database        handlers.HealthChecker
	Identity        handlers.HealthChecker
	Validator       *validator.Validator
	DefaultLocale   string
	AdminSessionTTL time.Duration
	EnableDebug     bool
}

// NewRouter creates and configures the Echo router.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Validator, config.DefaultLocale, config.Logger)
	reviewHandler := handlers.NewReviewHandler(config.ReviewUsecase, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.ProfileRepo, config.Storage, config.Logger)
	feedHandler := handlers.NewFeedHandler(config.ReviewFeed, config.DefaultLocale, config.Logger)
	proxyHandler := handlers.NewImageProxyHandler(config.ImageProxy, config.Logger)
	contactHandler := handlers.NewContactHandler(config.ContactUsecase, config.DefaultLocale, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Identity, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)
	sessionGate := custommw.NewSessionGateMiddleware(config.AdminRepo, config.AdminSessionTTL, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(sessionGate.Gate())

	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	auth.GET("/session", authHandler.Session, authMiddleware.RequireAuth())

	api := e.Group("/api")
	api.GET("/proxy-image", proxyHandler.ProxyImage)
	api.POST("/contact", contactHandler.SendContact)

	feed := api.Group("/reviews")
	feed.GET("", feedHandler.GetFeed)
	feed.POST("/load-more", feedHandler.LoadMore)
	feed.POST("/submit", feedHandler.SubmitReview, authMiddleware.OptionalAuth())

	// The db endpoints resolve the bearer session themselves so each can
	// answer with its own unauthorized message.
	db := api.Group("/db", authMiddleware.OptionalAuth())
	db.POST("/get-reviews", reviewHandler.GetReviews)
	db.POST("/insert-review", reviewHandler.InsertReview)
	db.POST("/save-user-profile", profileHandler.SaveProfile)
	db.POST("/upload-avatar", profileHandler.UploadAvatar)

	return e
}
