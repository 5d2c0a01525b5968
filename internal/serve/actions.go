// Package serve implements the HTTP server command.
package serve

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/urfave/cli/v2"

	"github.com/altdir/altdir/models"
	"github.com/altdir/altdir/pkg/api"
	"github.com/altdir/altdir/pkg/auth"
	"github.com/altdir/altdir/pkg/backlink"
	"github.com/altdir/altdir/pkg/caching"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/fetcher"
	"github.com/altdir/altdir/pkg/payment"
)

// Action boots the API server: config, database, services, routes.
func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if addr := c.String("listen"); addr != "" {
		cfg.ListenAddr = addr
	}
	if path := c.String("db"); path != "" {
		cfg.DBPath = path
	}

	database, err := db.OpenAt(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	secret := cfg.JWTSecret
	if secret == "" {
		// Sessions will not survive a restart without a configured
		// secret; fine for local runs, logged so it is not a surprise.
		secret = randomSecret()
		logger.Warn("jwt_secret not configured, using an ephemeral secret")
	}
	authSvc := auth.NewService(secret, 0)

	payments := payment.NewService(database, payment.Pricing{
		BaseCents: cfg.SponsorPriceCents,
		Coupons:   cfg.Coupons,
	})

	var pageCache *caching.Cache
	if dir := c.String("cache-dir"); dir != "" {
		pageCache, err = caching.NewCache(dir, cfg.FetchTTL.Std())
		if err != nil {
			return fmt.Errorf("failed to initialize page cache: %w", err)
		}
	}
	verifier := backlink.New(cfg.SiteHost, fetcher.NewFetcher(0), pageCache)

	app := fiber.New(fiber.Config{
		AppName:               "altdir",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode())
		return err
	})

	api.NewServer(database, authSvc, payments, verifier, logger).Register(app)

	logger.Info("listening", "addr", cfg.ListenAddr, "db", database.Path())
	return app.Listen(cfg.ListenAddr)
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
