package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/handler"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// SetupLogger installs the default slog logger writing to stdout and a rotating file in LOG_DIR.
// The returned closer flushes the log file and must be closed on exit.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.Version,
		cfg.Environment,
		logger.IsDevelopment(cfg.Environment),
	)
	logger.Init(logCfg, io.MultiWriter(os.Stdout, rotator))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", rotator.Filename)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", handler.Version,
		"unique_store", cfg.UniqueStore)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"fishing_config", cfg.FishingConfigPath,
		"loot_tables", cfg.LootTableDir,
		"debug_log_dir", cfg.DebugLogDir)

	return rotator, nil
}
