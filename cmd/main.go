package main

import (
	"context"
	"os"

	"github.com/ErDev77/pc-configurator-sub001/config"
	"github.com/ErDev77/pc-configurator-sub001/db"
	adminhandler "github.com/ErDev77/pc-configurator-sub001/internal/admin/handler"
	adminrepo "github.com/ErDev77/pc-configurator-sub001/internal/admin/repository/postgres"
	"github.com/ErDev77/pc-configurator-sub001/internal/admin/service"
	cataloghandler "github.com/ErDev77/pc-configurator-sub001/internal/catalog/handler"
	catalogrepo "github.com/ErDev77/pc-configurator-sub001/internal/catalog/repository/postgres"
	"github.com/ErDev77/pc-configurator-sub001/internal/media"
	"github.com/ErDev77/pc-configurator-sub001/internal/notify"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	emailSender := notify.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPFrom)
	chatSender := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChat)

	var store media.Uploader = media.UnconfiguredStore{}
	if cfg.CloudinaryURL != "" {
		store, err = media.NewCloudinaryStore(cfg.CloudinaryURL, "pc-configurator")
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary configuration failed")
		}
	} else {
		log.Warn().Msg("CLOUDINARY_URL not set, image hosting disabled")
	}

	adminRepo := adminrepo.NewAdminRepository(pool)
	tokenService := service.NewTokenService(cfg.JWTSecret)
	adminService := service.NewAdminService(adminRepo, tokenService, emailSender, chatSender)
	authHandler := adminhandler.NewAuthHandler(adminService, cfg.IsProduction())
	guard := adminhandler.NewGuard(tokenService)
	settingsHandler := adminhandler.NewSettingsHandler(emailSender, chatSender)

	catalogRepo := catalogrepo.NewCatalogRepository(pool)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogRepo, emailSender, chatSender)

	mediaHandler := media.NewHandler(store)

	app := fiber.New()
	adminhandler.RegisterRoutes(app, authHandler, guard)
	adminhandler.RegisterSettingsRoutes(app, settingsHandler)
	cataloghandler.RegisterRoutes(app, catalogHandler)
	media.RegisterRoutes(app, mediaHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
