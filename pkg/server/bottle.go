package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/server/rest"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

const defaultSearchLimit = 5

type BottleServer struct {
	catalog    repository.CatalogRepository
	pagination configs.Pagination
	logger     *zap.Logger
}

func NewBottleServer(catalog repository.CatalogRepository, pagination configs.Pagination, logger *zap.Logger) *BottleServer {
	return &BottleServer{catalog: catalog, pagination: pagination, logger: logger}
}

func (b *BottleServer) Register(group *gin.RouterGroup) {
	bottles := group.Group("/bottles")
	bottles.GET("", b.ListBottles)
	bottles.POST("", b.CreateBottle)
	bottles.GET("/search", b.SearchBottles)
	bottles.GET("/check-duplicate", b.CheckDuplicate)
	bottles.GET("/:id", b.GetBottle)
	bottles.PUT("/:id", b.UpdateBottle)
	bottles.PATCH("/:id", b.PatchBottle)
	bottles.DELETE("/:id", b.DeleteBottle)
}

func (b *BottleServer) ListBottles(c *gin.Context) {
	skip, limit, err := pageFromQuery(c, b.pagination)
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	bottles, err := b.catalog.ListBottles(c.Request.Context(), skip, limit)
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BottlesWithPositionsFromModel(bottles))
}

func (b *BottleServer) CreateBottle(c *gin.Context) {
	var input api.BottleInput
	if err := bindJSON(c, &input); err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	bottle, err := b.catalog.CreateBottle(c.Request.Context(), rest.BottleToModel(input))
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BottleFromModel(*bottle))
}

func (b *BottleServer) SearchBottles(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultSearchLimit)
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	if limit < 1 {
		abortWithError(c, b.logger, fmt.Errorf("%w: limit must be >= 1", ErrInvalidInput))

		return
	}

	bottles, err := b.catalog.SearchBottles(c.Request.Context(), c.Query("q"), min(limit, b.pagination.MaxPageSize))
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, api.SearchResponse{Results: rest.SummariesFromModel(bottles, true)})
}

func (b *BottleServer) CheckDuplicate(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		abortWithError(c, b.logger, fmt.Errorf("%w: name is required", ErrInvalidInput))

		return
	}

	if _, present := c.GetQuery("year"); !present {
		abortWithError(c, b.logger, fmt.Errorf("%w: year is required", ErrInvalidInput))

		return
	}

	year, err := intQuery(c, "year", 0)
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	bottles, err := b.catalog.FindDuplicates(c.Request.Context(), name, year)
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, api.DuplicatesResponse{Duplicates: rest.SummariesFromModel(bottles, false)})
}

func (b *BottleServer) GetBottle(c *gin.Context) {
	bottleID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	view, err := b.catalog.GetBottleWithPositions(c.Request.Context(), bottleID)
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BottleWithPositionsFromModel(*view))
}

func (b *BottleServer) UpdateBottle(c *gin.Context) {
	bottleID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	var input api.BottleInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	bottle, err := b.catalog.UpdateBottle(c.Request.Context(), bottleID, rest.BottleToModel(input))
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BottleFromModel(*bottle))
}

func (b *BottleServer) PatchBottle(c *gin.Context) {
	bottleID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	var patch api.BottlePatch
	if err = bindJSON(c, &patch); err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		abortWithError(c, b.logger, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput))

		return
	}

	bottle, err := b.catalog.PatchBottle(c.Request.Context(), bottleID, rest.BottlePatchToModel(patch))
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BottleFromModel(*bottle))
}

func (b *BottleServer) DeleteBottle(c *gin.Context) {
	bottleID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	if err = b.catalog.DeleteBottle(c.Request.Context(), bottleID); err != nil {
		abortWithError(c, b.logger, err)

		return
	}

	b.logger.Info("bottle deleted", zap.Uint("bottle_id", bottleID))

	c.JSON(http.StatusOK, message("Bottle deleted successfully"))
}
