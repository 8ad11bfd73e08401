package cmd

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"droscher.com/Pinarr/pkg/auth"
	"droscher.com/Pinarr/pkg/repository"
)

var ErrAdminPasswordRequired = errors.New("an admin password is required, set Admin.Password or --password")

type AdminCmd struct {
	ConfigFile string `default:".Pinarr.toml" help:"Path to config file" short:"c"`
	Username   string `help:"Admin username, overrides Admin.Username"`
	Password   string `env:"PINARR_ADMIN_PASSWORD" help:"Admin password, overrides Admin.Password"`
}

// Run creates the admin account when no admin exists yet. It is a no-op otherwise.
func (a *AdminCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := loadConfig(a.ConfigFile, logger)
	if err != nil {
		return err
	}

	username, password := conf.Admin.Username, conf.Admin.Password
	if a.Username != "" {
		username = a.Username
	}

	if a.Password != "" {
		password = a.Password
	}

	if password == "" {
		return ErrAdminPasswordRequired
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	user, created, err := auth.NewAuthManager(conf.Auth, repo, logger).EnsureAdmin(context.Background(), username, password)
	if err != nil {
		logger.Error("error creating admin user", zap.Error(err))

		return err
	}

	if !created {
		logger.Info("an admin user already exists, nothing to do")

		return nil
	}

	logger.Info("admin user created", zap.String("username", user.Username), zap.Uint("user_id", user.ID))

	return nil
}
