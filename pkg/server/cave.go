package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/server/rest"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

type CaveServer struct {
	layout repository.LayoutRepository
	logger *zap.Logger
}

func NewCaveServer(layout repository.LayoutRepository, logger *zap.Logger) *CaveServer {
	return &CaveServer{layout: layout, logger: logger}
}

func (s *CaveServer) Register(group *gin.RouterGroup) {
	group.GET("/caves", s.ListCaves)
	group.POST("/caves", s.CreateCave)
	group.GET("/caves/:id", s.GetCave)
	group.PUT("/caves/:id", s.UpdateCave)
	group.DELETE("/caves/:id", s.DeleteCave)
	group.POST("/caves/:id/columns", s.CreateColumn)

	group.PUT("/columns/:id", s.UpdateColumn)
	group.DELETE("/columns/:id", s.DeleteColumn)
	group.POST("/columns/:id/rows", s.CreateRow)

	group.PUT("/rows/:id", s.UpdateRow)
	group.DELETE("/rows/:id", s.DeleteRow)
}

func (s *CaveServer) ListCaves(c *gin.Context) {
	caves, err := s.layout.ListCaveTrees(c.Request.Context())
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.CavesFromModel(caves))
}

func (s *CaveServer) CreateCave(c *gin.Context) {
	var input api.CaveInput
	if err := bindJSON(c, &input); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	cave, err := s.layout.CreateCave(c.Request.Context(), input.Name)
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.CaveFromModel(*cave))
}

func (s *CaveServer) GetCave(c *gin.Context) {
	caveID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	cave, err := s.layout.GetCaveTree(c.Request.Context(), caveID)
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.CaveFromModel(*cave))
}

func (s *CaveServer) UpdateCave(c *gin.Context) {
	caveID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	var input api.CaveInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	cave, err := s.layout.RenameCave(c.Request.Context(), caveID, input.Name)
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.CaveFromModel(*cave))
}

func (s *CaveServer) DeleteCave(c *gin.Context) {
	caveID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	if err = s.layout.DeleteCave(c.Request.Context(), caveID); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	s.logger.Info("cave deleted", zap.Uint("cave_id", caveID))

	c.JSON(http.StatusOK, message("Cave deleted successfully"))
}

func (s *CaveServer) CreateColumn(c *gin.Context) {
	caveID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	var input api.ColumnInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	column, err := s.layout.CreateColumn(c.Request.Context(), caveID, input.Name, pointy.IntValue(input.Order, 0))
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.ColumnFromModel(*column))
}

func (s *CaveServer) UpdateColumn(c *gin.Context) {
	columnID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	var input api.ColumnInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	column, err := s.layout.UpdateColumn(c.Request.Context(), columnID, input.Name, pointy.IntValue(input.Order, 0))
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.ColumnFromModel(*column))
}

func (s *CaveServer) DeleteColumn(c *gin.Context) {
	columnID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	if err = s.layout.DeleteColumn(c.Request.Context(), columnID); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, message("Column deleted successfully"))
}

func (s *CaveServer) CreateRow(c *gin.Context) {
	columnID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	var input api.RowInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	row, err := s.layout.CreateRow(c.Request.Context(), columnID, rowFromInput(input))
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	s.logger.Info("row created", zap.Uint("row_id", row.ID), zap.Int("positions", len(row.Positions)))

	c.JSON(http.StatusOK, rest.RowFromModel(*row))
}

func (s *CaveServer) UpdateRow(c *gin.Context) {
	rowID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	var input api.RowInput
	if err = bindJSON(c, &input); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	row, err := s.layout.UpdateRow(c.Request.Context(), rowID, rowFromInput(input))
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.RowFromModel(*row))
}

func (s *CaveServer) DeleteRow(c *gin.Context) {
	rowID, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	if err = s.layout.DeleteRow(c.Request.Context(), rowID); err != nil {
		abortWithError(c, s.logger, err)

		return
	}

	c.JSON(http.StatusOK, message("Row deleted successfully"))
}

func rowFromInput(input api.RowInput) model.CaveRow {
	return model.CaveRow{
		Name:   input.Name,
		Width:  pointy.IntValue(input.Width, model.DefaultRowWidth),
		Height: pointy.IntValue(input.Height, model.DefaultRowHeight),
		Order:  pointy.IntValue(input.Order, 0),
	}
}
