package bot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"spectrum/bot/common"
	"spectrum/bot/features/live"
	"spectrum/bot/features/lookup"
	"spectrum/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token        string
	GuildID      string
	Activity     string
	DebugAPIPort int
}

// Bot manages the Discord session and the lookup features
type Bot struct {
	config  Config
	session *discordgo.Session

	lookuper common.Lookuper
	audit    interfaces.AuditPublisher
	pinger   Pinger

	// Feature modules
	lookup *lookup.Feature
	live   *live.Feature

	debugServer *http.Server
}

// New creates a bot, opens the gateway connection and registers commands
func New(config Config, lookuper common.Lookuper, audit interfaces.AuditPublisher, pinger Pinger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:   config,
		session:  dg,
		lookuper: lookuper,
		audit:    audit,
		pinger:   pinger,
		lookup:   lookup.NewFeature(lookuper, audit),
		live:     live.NewFeature(lookuper, audit),
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	if config.DebugAPIPort > 0 {
		if err := bot.StartDebugAPI(config.DebugAPIPort); err != nil {
			log.Warnf("Failed to start debug API on port %d: %v", config.DebugAPIPort, err)
		}
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.debugServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.debugServer.Shutdown(ctx); err != nil {
			log.Warnf("Debug API shutdown error: %v", err)
		}
	}
	return b.session.Close()
}

// handleReady sets the bot presence once the gateway is ready
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Logged in as %s", r.User.String())
	if b.config.Activity == "" {
		return
	}
	if err := s.UpdateWatchStatus(0, b.config.Activity); err != nil {
		log.Warnf("Failed to set presence: %v", err)
	}
}

// handleCommands routes slash commands to the feature that owns them
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// Commands are guild-only
	if i.GuildID == "" {
		common.RespondWithError(s, i, "This command can only be used in a server")
		return
	}

	switch i.ApplicationCommandData().Name {
	case lookup.CommandLookup, lookup.CommandInventory, lookup.CommandRecord:
		b.lookup.HandleCommand(s, i)
	case live.CommandLive:
		b.live.HandleCommand(s, i)
	}
}
