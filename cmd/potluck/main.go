package main

import (
	"context"
	"log/slog"
	"os"

	"potluck/config"
	"potluck/internal/delivery"
	"potluck/internal/delivery/http"
	"potluck/internal/delivery/http/middleware"
	"potluck/internal/delivery/http/router/handler"
	"potluck/internal/domain/service"
	"potluck/internal/infra/auth"
	logs "potluck/internal/infra/log"
	"potluck/internal/infra/persistence/postgres"
	"potluck/internal/infra/qrcode"
	"potluck/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDishRepository,
			postgres.NewCategoryRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewSessionTokenService,
			newQRCodeService,
		),
	)
}

// newBcryptHasher creates the password hasher with the configured cost.
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDishService,
			impl.NewCollectionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDishHandler,
			handler.NewCollectionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
