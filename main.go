package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/HA2345567/buttonhaus/catalog"
	"github.com/HA2345567/buttonhaus/config"
	checkoutControllers "github.com/HA2345567/buttonhaus/controllers/checkout"
	orderControllers "github.com/HA2345567/buttonhaus/controllers/order"
	paymentControllers "github.com/HA2345567/buttonhaus/controllers/payment"
	"github.com/HA2345567/buttonhaus/middleware"
	"github.com/HA2345567/buttonhaus/pricing"
	"github.com/HA2345567/buttonhaus/routes"
	"github.com/HA2345567/buttonhaus/store"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	logger.Info().Msg("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Config load failed")
	}

	// Persistence + stores
	files, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to init data dir")
	}

	carts := store.NewCartStore()
	wishlist := store.NewWishlistStore()
	orders := store.NewOrderStore(cfg.OrderStatusEnforce)
	sessions := store.NewAuthStore()

	persistErr := func(err error) {
		logger.Error().Err(err).Msg("❌ Failed to persist snapshot")
	}
	for _, s := range []store.Snapshotter{carts, wishlist, orders, sessions} {
		if err := files.Load(s); err != nil {
			logger.Fatal().Err(err).Str("namespace", s.Namespace()).Msg("❌ Failed to restore snapshot")
		}
	}
	carts.OnChange(files.Saver(carts, persistErr))
	wishlist.OnChange(files.Saver(wishlist, persistErr))
	orders.OnChange(files.Saver(orders, persistErr))
	sessions.OnChange(files.Saver(sessions, persistErr))

	// Catalog and pricing
	cat := catalog.New()
	policy := pricing.Policy{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFlatFee:       cfg.ShippingFlatFee,
		TaxRate:               cfg.TaxRate,
	}

	// Live order feed
	feed := orderControllers.NewOrderFeed(logger)
	orders.Subscribe(feed.Broadcast)

	// Checkout coordinators, one per payment mode
	checkout := checkoutControllers.NewCoordinator(carts, orders, policy, cfg.CheckoutDelay)
	payClient := paymentControllers.NewClient(cfg.PaymentAPIURL, cfg.PaymentKeyID, cfg.PaymentKeySecret)
	payment := paymentControllers.NewCoordinator(
		carts, orders, payClient, policy,
		cfg.PaymentKeyID, cfg.Currency, cfg.PaymentPendingTTL, logger,
	)

	// Gin setup
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Config:   cfg,
		Catalog:  cat,
		Carts:    carts,
		Wishlist: wishlist,
		Orders:   orders,
		Sessions: sessions,
		Policy:   policy,
		Feed:     feed,
		Checkout: checkout,
		Payment:  payment,
		Log:      logger,
	})

	// Start backup routine at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(logger, cfg.DataDir, cfg.BackupDir, 4*24*time.Hour, 2, 0)

	logger.Info().Str("port", cfg.ServerPort).Str("payment_mode", cfg.PaymentMode).Msg("🚀 Server running")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

// startDailyBackupAtFixedTime copies the data dir daily at a fixed hour and
// removes backups older than the retention window.
func startDailyBackupAtFixedTime(logger zerolog.Logger, srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		logger.Info().Time("next", next).Msg("⏳ Next data backup scheduled")
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			logger.Error().Err(err).Msg("❌ Failed to back up data")
		} else {
			logger.Info().Str("dest", destDir).Msg("✅ Data backed up")
		}

		cleanupOldBackups(logger, backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(logger zerolog.Logger, backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		logger.Error().Err(err).Msg("❌ Failed to read backup directory")
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				logger.Error().Err(err).Str("path", folderPath).Msg("❌ Failed to remove old backup")
			} else {
				logger.Info().Str("path", folderPath).Msg("🗑️ Removed old backup")
			}
		}
	}
}
