package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spectrum/cmd"
	"spectrum/config"
	"spectrum/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Check for migration subcommands
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(); err != nil {
			log.Fatal("Migration error: ", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}
	configureLogging(cfg.LogLevel)

	// Normal bot operation
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Run(ctx, cfg); err != nil {
		log.Fatal("Application error: ", err)
	}
}

func configureLogging(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using info", level)
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: spectrum migrate [up|down|status] [args...]")
	}

	databaseURL, err := config.LoadDatabaseURL()
	if err != nil {
		return err
	}

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp(databaseURL)
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(databaseURL, steps)
	case "status":
		return database.MigrateStatus(databaseURL)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}
