package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/server/rest"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

type RegionServer struct {
	regions repository.RegionRepository
	logger  *zap.Logger
}

func NewRegionServer(regions repository.RegionRepository, logger *zap.Logger) *RegionServer {
	return &RegionServer{regions: regions, logger: logger}
}

func (r *RegionServer) Register(group *gin.RouterGroup) {
	group.GET("/geocoded-regions", r.ListRegions)
	group.POST("/geocoded-regions", r.CreateRegion)
}

func (r *RegionServer) ListRegions(c *gin.Context) {
	regions, err := r.regions.ListRegions(c.Request.Context())
	if err != nil {
		abortWithError(c, r.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.RegionsFromModel(regions))
}

// CreateRegion returns the region stored under the name when one exists; the
// coordinates of the body are then ignored.
func (r *RegionServer) CreateRegion(c *gin.Context) {
	var input api.GeocodedRegionInput
	if err := bindJSON(c, &input); err != nil {
		abortWithError(c, r.logger, err)

		return
	}

	region, err := r.regions.GetOrCreateRegion(c.Request.Context(), input.Name, *input.Lat, *input.Lon)
	if err != nil {
		abortWithError(c, r.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.RegionFromModel(*region))
}
