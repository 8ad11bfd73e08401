package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/Pinarr/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("mysql", config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"http://localhost:5173", "https://pinarr.local"}, config.Server.AllowedOrigins)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(12*time.Hour, config.Auth.SessionTTL)
	suite.Equal("pinarr_session", config.Auth.CookieName)
	suite.True(config.Auth.SecureCookie)
	suite.Equal("s3", config.Upload.Driver)
	suite.Equal(2, config.Upload.MaxSizeMB)
	suite.Equal(int64(2<<20), config.Upload.MaxSizeBytes())
	suite.Equal("/media", config.Upload.PublicPrefix)
	suite.Equal("bottles", config.Upload.S3.Bucket)
	suite.Equal("eu-west-3", config.Upload.S3.Region)
	suite.Equal("http://localhost:9000", config.Upload.S3.Endpoint)
	suite.True(config.Upload.S3.PathStyle)
	suite.Equal(20, config.Pagination.DefaultPageSize)
	suite.Equal(100, config.Pagination.MaxPageSize)
	suite.Equal("root", config.Admin.Username)
	suite.Equal("hunter2", config.Admin.Password)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("PINARR_DB_HOST", "test.local")
	suite.T().Setenv("PINARR_DB_PORT", "1234")
	suite.T().Setenv("PINARR_DB_USER", "testuser")
	suite.T().Setenv("PINARR_DB_PASSWORD", "test123")
	suite.T().Setenv("PINARR_DB_DATABASE", "testdb")
	suite.T().Setenv("PINARR_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("PINARR_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("PINARR_SERVER_PORT", "666")
	suite.T().Setenv("PINARR_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("PINARR_ADMIN_PASSWORD", "changeme")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("postgres", config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal("admin", config.Admin.Username)
	suite.Equal("changeme", config.Admin.Password)
}

func (suite *ConfigTestSuite) TestGetConfig_Defaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("PINARR_DB_DRIVER", "sqlite")
	suite.T().Setenv("PINARR_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("pinarr", config.DB.Database)
	suite.Equal(8080, config.Server.Port)
	suite.Equal([]string{"*"}, config.Server.AllowedOrigins)
	suite.Equal(24*time.Hour, config.Auth.SessionTTL)
	suite.Equal("session_token", config.Auth.CookieName)
	suite.False(config.Auth.SecureCookie)
	suite.Equal("fs", config.Upload.Driver)
	suite.Equal("./uploads", config.Upload.Dir)
	suite.Equal(5, config.Upload.MaxSizeMB)
	suite.Equal("/uploads", config.Upload.PublicPrefix)
	suite.Equal("us-east-1", config.Upload.S3.Region)
	suite.Equal(100, config.Pagination.DefaultPageSize)
	suite.Equal(500, config.Pagination.MaxPageSize)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("PINARR_DB_HOST", "env.local")
	suite.T().Setenv("PINARR_DB_USER", "envuser")
	suite.T().Setenv("PINARR_DB_PASSWORD", "env123")
	suite.T().Setenv("PINARR_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("PINARR_UPLOAD_S3_BUCKET", "envbucket")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("envbucket", config.Upload.S3.Bucket)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingSecret() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "Auth.SecretKey: required validation failed")
}

func (suite *ConfigTestSuite) TestGetConfig_MissingDatabaseValues() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("PINARR_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.EqualError(err, "configuration error: DB.Host is required for driver postgres; "+
		"configuration error: DB.Password is required for driver postgres")
}

func (suite *ConfigTestSuite) TestValidate_UnknownDriver() {
	config := configs.Config{
		DB:         configs.DB{Driver: "oracle"},
		Upload:     configs.Upload{MaxSizeMB: 5},
		Pagination: configs.Pagination{DefaultPageSize: 10, MaxPageSize: 10},
	}

	suite.EqualError(config.Validate(), `configuration error: unknown DB.Driver "oracle"`)
}

func (suite *ConfigTestSuite) TestValidate_S3RequiresBucket() {
	config := configs.Config{
		DB:         configs.DB{Driver: configs.DriverSQLite, Database: ":memory:"},
		Upload:     configs.Upload{Driver: "s3", MaxSizeMB: 5},
		Pagination: configs.Pagination{DefaultPageSize: 10, MaxPageSize: 100},
	}

	suite.EqualError(config.Validate(), "configuration error: Upload.S3.Bucket is required for driver s3")
}

func (suite *ConfigTestSuite) TestValidate_Pagination() {
	config := configs.Config{
		DB:         configs.DB{Driver: configs.DriverSQLite, Database: ":memory:"},
		Upload:     configs.Upload{MaxSizeMB: 5},
		Pagination: configs.Pagination{DefaultPageSize: 50, MaxPageSize: 10},
	}

	suite.ErrorIs(config.Validate(), configs.ErrConfiguration)
}
