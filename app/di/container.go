package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"studio/app/config"
	"studio/app/domain"
	"studio/app/driver/kratos"
	"studio/app/driver/mailer"
	"studio/app/driver/postgres"
	"studio/app/driver/restapi"
	"studio/app/driver/storage"
	"studio/app/gateway"
	"studio/app/notifier"
	"studio/app/port"
	"studio/app/rest"
	"studio/app/usecase"
	"studio/app/utils/validator"
)

// Container holds all dependencies for the application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Ports
	AuthGateway port.AuthGateway
	ProfileRepo port.ProfileRepository
	ReviewRepo  port.ReviewRepository
	AdminRepo   port.AdminRepository
	Storage     port.StorageGateway
	Mailer      port.MailGateway
	Notifier    port.Notifier

	// Usecases
	AuthUsecase    port.AuthUsecase
	ReviewUsecase  port.ReviewUsecase
	ReviewFeed     *usecase.ReviewFeed
	ImageProxy     port.ImageProxyUsecase
	ContactUsecase *usecase.ContactUsecase

	Validator *validator.Validator
}

// NewContainer creates and initializes the dependency container. The context
// bounds startup work such as the initial database connection.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.Connect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider client: %w", err)
	}

	// Toasts have no delivery channel on the server side; they land in the
	// structured log where the frontend log shipper picks them up.
	notif, err := notifier.New(logger, func(t notifier.Toast) {
		logger.Info("user notification", "type", t.Type, "title", t.Title)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}
	container.Notifier = notif

	container.ProfileRepo = postgres.NewProfileRepository(container.DB.Pool(), logger)
	container.ReviewRepo = postgres.NewReviewRepository(container.DB.Pool(), logger)
	container.AdminRepo = postgres.NewAdminRepository(container.DB.Pool(), logger)

	container.AuthGateway = kratos.NewAdapter(container.KratosClient, logger)
	container.Storage = storage.NewClient(cfg, logger)
	container.Mailer = mailer.NewClient(cfg, logger)

	profileAPI := restapi.NewClient(cfg.PublicBaseURL, logger)

	container.AuthUsecase = usecase.NewAuthUsecase(
		container.AuthGateway,
		container.ProfileRepo,
		profileAPI,
		container.Storage,
		container.Notifier,
		logger,
	)
	container.ReviewUsecase = usecase.NewReviewUsecase(container.ReviewRepo, logger)
	container.ReviewFeed = usecase.NewReviewFeed(container.ReviewUsecase, container.Notifier, logger)

	fetchOptions := domain.NewImageFetchOptions()
	fetchOptions.Timeout = cfg.ProxyTimeout
	imageFetcher := gateway.NewImageFetchGateway(nil, logger)
	container.ImageProxy = usecase.NewImageProxyUsecase(imageFetcher, fetchOptions, logger)

	container.ContactUsecase = usecase.NewContactUsecase(container.Mailer, container.Notifier, logger)

	container.Validator = validator.New()

	logger.Info("container initialized")
	return container, nil
}

// CreateRouter creates the fully configured Echo router.
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:          c.Logger,
		AuthUsecase:     c.AuthUsecase,
		ReviewUsecase:   c.ReviewUsecase,
		ReviewFeed:      c.ReviewFeed,
		ImageProxy:      c.ImageProxy,
		ContactUsecase:  c.ContactUsecase,
		ProfileRepo:     c.ProfileRepo,
		AdminRepo:       c.AdminRepo,
		Storage:         c.Storage,
		Database:        c.DB,
		Identity:        c.KratosClient,
		Validator:       c.Validator,
		DefaultLocale:   c.Config.DefaultLocale,
		AdminSessionTTL: c.Config.AdminSessionTTL,
		EnableDebug:     c.Config.LogLevel == "debug",
	})
}

// Close releases held resources.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
