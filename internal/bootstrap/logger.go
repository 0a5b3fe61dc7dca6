package bootstrap

import (
	"log/slog"

	"github.com/osse101/ClanWarsBot_Go/internal/config"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
)

// SetupLogger installs the process-wide structured logger from config.
func SetupLogger(cfg *config.Config) *slog.Logger {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFmt, "clanwars-bot", "", "", false)
	log := logger.Setup(logCfg)

	log.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFmt)
	return log
}
