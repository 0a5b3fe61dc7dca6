package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ClanWarsBot_Go/internal/attribution"
	"github.com/osse101/ClanWarsBot_Go/internal/bootstrap"
	"github.com/osse101/ClanWarsBot_Go/internal/config"
	"github.com/osse101/ClanWarsBot_Go/internal/database"
	"github.com/osse101/ClanWarsBot_Go/internal/discord"
	"github.com/osse101/ClanWarsBot_Go/internal/eventlog"
	"github.com/osse101/ClanWarsBot_Go/internal/gate"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
	"github.com/osse101/ClanWarsBot_Go/internal/scheduler"
	"github.com/osse101/ClanWarsBot_Go/internal/server"
	"github.com/osse101/ClanWarsBot_Go/internal/team"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
	"github.com/osse101/ClanWarsBot_Go/internal/worker"
)

// Database pool sizing
const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 30 * time.Minute
	dbMaxLifetime    = time.Hour

	eventLogCleanupInterval = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	log := bootstrap.SetupLogger(cfg)
	log.Info(bootstrap.LogMsgConfigurationLoaded, "port", cfg.Port)

	if err := run(cfg); err != nil {
		log.Error("Bot exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return err
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
			return err
		}
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Rule tables
	townRules, err := rules.LoadTownFile(cfg.TownConfigPath)
	if err != nil {
		return err
	}
	patterns, err := rules.LoadPatternsFile(cfg.ResourcesPath)
	if err != nil {
		return err
	}
	bestiary, err := rules.LoadBestiaryFile(cfg.BestiaryPath)
	if err != nil {
		return err
	}
	slayer, err := rules.LoadSlayerFile(cfg.SlayerPath)
	if err != nil {
		return err
	}

	// Event system
	bus, publisher, deadLetter, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	// Services
	evaluator := gate.NewEvaluator(bestiary, slayer, townRules.Access)
	attributionService := attribution.NewService(repos.Team, repos.Ledger, repos.Town, evaluator, patterns, townRules.Access, publisher)
	teamService := team.NewService(repos.Team, townRules, publisher)
	townService := town.NewService(repos.Team, repos.Town, repos.Ledger, townRules, publisher)
	eventLogService := eventlog.NewService(repos.EventLog)

	// Background workers and periodic jobs
	pool := worker.NewPool(cfg.RefreshWorkers, cfg.RefreshQueueDepth)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(eventLogCleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))

	// Discord bot
	bot, err := discord.New(discord.Config{
		Token:         cfg.DiscordToken,
		AppID:         cfg.DiscordAppID,
		LootChannelID: cfg.LootChannelID,
	}, attributionService, teamService, townService, townRules)
	if err != nil {
		return err
	}

	if err := bot.Start(); err != nil {
		return err
	}

	refresher := discord.NewRefresher(bot.Session, cfg.DisplayChannelID, townService, townRules)
	if _, err := bootstrap.RegisterEventHandlers(bus, eventLogService, refresher, pool, cfg.RefreshThrottle); err != nil {
		return err
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Bot can still serve interactions with a stale command set.
		slog.Error("Failed to register commands", "error", err)
	}

	// Webhook server
	srv := server.NewServer(cfg.Port, cfg.WebhookAPIKey, nil, dbPool, attributionService, teamService, townService)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
		}
	}()

	// Wait here until a term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bootstrap.GracefulShutdown(bootstrap.Components{
		Server:     srv,
		Bot:        bot,
		Scheduler:  sched,
		WorkerPool: pool,
		Publisher:  publisher,
		DeadLetter: deadLetter,
		DBPool:     dbPool,
	})

	return nil
}
