package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/server/rest"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

const (
	actionAssign = "assign"
	actionRemove = "remove"
)

type placementObserver interface {
	ObservePlacement(action string, err error)
}

type PlacementServer struct {
	placements repository.PlacementRepository
	observer   placementObserver
	logger     *zap.Logger
}

func NewPlacementServer(placements repository.PlacementRepository, observer placementObserver, logger *zap.Logger) *PlacementServer {
	return &PlacementServer{placements: placements, observer: observer, logger: logger}
}

func (p *PlacementServer) Register(group *gin.RouterGroup) {
	group.GET("/rows/:id/positions", p.GetRowPositions)
	group.POST("/rows/:id/positions", p.CreatePosition)
	group.PUT("/positions/:id", p.AssignBottle)
	group.DELETE("/positions/:id/bottle", p.RemoveBottle)
}

func (p *PlacementServer) GetRowPositions(c *gin.Context) {
	rowID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	positions, err := p.placements.GetRowPositions(c.Request.Context(), rowID)
	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.PositionsFromModel(positions))
}

func (p *PlacementServer) CreatePosition(c *gin.Context) {
	rowID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	var input api.PositionInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	position, err := p.placements.CreatePosition(c.Request.Context(), rowID, input.Line, input.Position)
	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.PositionFromModel(*position))
}

// AssignBottle puts the bottle of the body at the position, or empties the
// position when bottle_id is null.
func (p *PlacementServer) AssignBottle(c *gin.Context) {
	positionID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	var input api.AssignInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	action := actionAssign
	if input.BottleID == nil {
		action = actionRemove
	}

	position, err := p.placements.AssignBottle(c.Request.Context(), positionID, input.BottleID)
	p.observer.ObservePlacement(action, err)

	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.PositionFromModel(*position))
}

func (p *PlacementServer) RemoveBottle(c *gin.Context) {
	positionID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	_, err = p.placements.RemoveBottle(c.Request.Context(), positionID)
	p.observer.ObservePlacement(actionRemove, err)

	if err != nil {
		abortWithError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, message("Bottle removed from position"))
}
