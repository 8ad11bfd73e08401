package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/auth"
	"droscher.com/Pinarr/pkg/metrics"
	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/storage"
	"droscher.com/Pinarr/pkg/upload"
)

const (
	apiPrefix  = "/api/v1"
	apiVersion = "1.0.0"
)

// Services groups everything the REST handlers depend on.
type Services struct {
	Catalog    repository.CatalogRepository
	Layout     repository.LayoutRepository
	Placements repository.PlacementRepository
	Regions    repository.RegionRepository
	Auth       *auth.Manager
	Uploads    *upload.Service
	Metrics    *metrics.Metrics
}

func NewRouter(conf *configs.Config, services Services, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(logger), RequestLogger(logger), services.Metrics.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Pinarr Backend!", "version": apiVersion})
	})

	if storage.Driver(conf.Upload.Driver) == storage.DriverFilesystem {
		router.Static(conf.Upload.PublicPrefix, conf.Upload.Dir)
	}

	public := router.Group(apiPrefix)
	protected := router.Group(apiPrefix, services.Auth.Middleware())

	NewUserServer(services.Auth, logger).Register(public, protected)
	NewBottleServer(services.Catalog, conf.Pagination, logger).Register(protected)
	NewCaveServer(services.Layout, logger).Register(protected)
	NewPlacementServer(services.Placements, services.Metrics, logger).Register(protected)
	NewRegionServer(services.Regions, logger).Register(protected)
	NewUploadServer(services.Uploads, conf.Upload.MaxSizeBytes(), logger).Register(protected)

	return router
}
