package cmd

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".Pinarr.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := loadConfig(m.ConfigFile, logger)
	if err != nil {
		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err = repo.Migrate(context.Background()); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	logger.Info("database migrated", zap.String("driver", conf.DB.Driver))

	return nil
}

// commandLogger is the logger of the one-shot commands.
func commandLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

// loadConfig reads an optional .env file before the configuration so its
// values can feed the PINARR_ environment overrides.
func loadConfig(configFile string, logger *zap.Logger) (*configs.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, err
	}

	return conf, nil
}
