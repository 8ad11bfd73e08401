package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"pinarr"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"*"`
}

type Auth struct {
	SecretKey    string        `validate:"required"`
	SessionTTL   time.Duration `default:"24h"`
	CookieName   string        `default:"session_token"`
	SecureCookie bool
}

type S3 struct {
	Bucket          string
	Region          string `default:"us-east-1"`
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
}

type Upload struct {
	Driver       string `default:"fs"`
	Dir          string `default:"./uploads"`
	MaxSizeMB    int    `default:"5"`
	PublicPrefix string `default:"/uploads"`
	S3           S3
}

type Pagination struct {
	DefaultPageSize int `default:"100"`
	MaxPageSize     int `default:"500"`
}

type Admin struct {
	Username string `default:"admin"`
	Password string
}

type Config struct {
	DB         DB
	Server     Server
	Auth       Auth
	Upload     Upload
	Pagination Pagination
	Admin      Admin
}

const envPrefix = "PINARR" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings fig cannot express as struct tags.
func (c *Config) Validate() error {
	var err error

	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL:
		if c.DB.Host == "" {
			err = multierr.Append(err, fmt.Errorf("%w: DB.Host is required for driver %s", ErrConfiguration, c.DB.Driver))
		}

		if c.DB.Password == "" {
			err = multierr.Append(err, fmt.Errorf("%w: DB.Password is required for driver %s", ErrConfiguration, c.DB.Driver))
		}
	case DriverSQLite:
		if c.DB.Database == "" {
			err = multierr.Append(err, fmt.Errorf("%w: DB.Database is required for driver %s", ErrConfiguration, c.DB.Driver))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, c.DB.Driver))
	}

	if c.Upload.MaxSizeMB <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: Upload.MaxSizeMB must be positive", ErrConfiguration))
	}

	if c.Upload.Driver == "s3" && c.Upload.S3.Bucket == "" {
		err = multierr.Append(err, fmt.Errorf("%w: Upload.S3.Bucket is required for driver s3", ErrConfiguration))
	}

	if c.Pagination.DefaultPageSize <= 0 || c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		err = multierr.Append(err, fmt.Errorf("%w: Pagination.DefaultPageSize must be between 1 and Pagination.MaxPageSize", ErrConfiguration))
	}

	return err
}

func (u Upload) MaxSizeBytes() int64 {
	return int64(u.MaxSizeMB) << 20
}
