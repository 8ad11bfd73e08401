package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Pinarr/pkg/auth"
	"droscher.com/Pinarr/pkg/health"
	"droscher.com/Pinarr/pkg/metrics"
	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/server"
	"droscher.com/Pinarr/pkg/storage"
	"droscher.com/Pinarr/pkg/upload"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".Pinarr.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := loadConfig(s.ConfigFile, logger)
	if err != nil {
		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	store, err := storage.Open(context.Background(), conf.Upload)
	if err != nil {
		logger.Error("error opening upload storage", zap.Error(err))

		return err
	}

	if !ctx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := metrics.New()
	router := server.NewRouter(conf, server.Services{
		Catalog:    repo,
		Layout:     repo,
		Placements: repo,
		Regions:    repo,
		Auth:       auth.NewAuthManager(conf.Auth, repo, logger),
		Uploads:    upload.NewService(store, conf.Upload, logger),
		Metrics:    registry,
	}, logger)

	mux := http.NewServeMux()
	mux.Handle("/", router)
	mux.Handle("/metrics", registry.Handler())

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName, health.ServiceName)
	mux.Handle(grpchealth.NewHandler(health.NewChecker(repo, logger, health.ServiceName)))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux, conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("server listening", zap.String("address", address), zap.String("upload_driver", string(store.Driver())))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-requested-with",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
