package cmd

import (
	"context"
	"fmt"
	"time"

	"spectrum/bot"
	"spectrum/config"
	"spectrum/database"
	"spectrum/domain/interfaces"
	"spectrum/domain/services"
	"spectrum/infrastructure"
	"spectrum/infrastructure/observability"
	"spectrum/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application and blocks until ctx is done
func Run(ctx context.Context, cfg *config.Config) error {
	log.Info("Starting spectrum lookup bot...")

	// Initialize metrics
	metrics := observability.NewMetricsProvider(cfg)
	if err := metrics.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL(), cfg.DatabaseMaxConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.WithField("max_conns", cfg.DatabaseMaxConns).Info("Database connection established successfully")

	// Initialize audit publishing
	var (
		natsClient *infrastructure.NATSClient
		audit      interfaces.AuditPublisher
	)
	if cfg.NATSEnabled() {
		natsClient = infrastructure.NewNATSClient(cfg.NATSServers)
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := natsClient.Connect(connectCtx)
		cancel()
		if err != nil {
			db.Close()
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		audit = infrastructure.NewNATSAuditPublisher(natsClient, cfg.NATSAuditSubject)
		log.WithField("subject", cfg.NATSAuditSubject).Info("Lookup auditing enabled")
	} else {
		audit = infrastructure.NewNoopAuditPublisher()
		log.Info("NATS_SERVERS not set, lookup auditing disabled")
	}

	// Initialize backends and the lookup service
	httpClient := infrastructure.NewHTTPClient(cfg.HTTPTimeout)
	lookupService := services.NewLookupService(
		infrastructure.NewSteamClient(httpClient, cfg.SteamAPIURL, cfg.SteamAPIKey),
		repository.NewPlayerRepository(db),
		infrastructure.NewLiveSessionClient(httpClient, cfg.LiveServiceURL, cfg.LiveServiceToken),
		metrics,
	)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:        cfg.DiscordToken,
		GuildID:      cfg.GuildID,
		Activity:     cfg.BotActivity,
		DebugAPIPort: cfg.DebugAPIPort,
	}
	discordBot, err := bot.New(botConfig, lookupService, audit, db)
	if err != nil {
		if natsClient != nil {
			natsClient.Close()
		}
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	if natsClient != nil {
		if err := natsClient.Close(); err != nil {
			log.Errorf("Error closing NATS client: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down metrics: %v", err)
	}

	log.Info("Closing database connection...")
	db.Close()

	log.Info("Shutdown completed")
	return nil
}
