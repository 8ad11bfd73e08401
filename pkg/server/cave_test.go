package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Pinarr/mocks"
	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/placement"
	"droscher.com/Pinarr/pkg/repository"
	"droscher.com/Pinarr/pkg/server"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

type CaveTestSuite struct {
	suite.Suite
	layout       *mocks.LayoutRepository
	engine       *gin.Engine
	observedLogs *observer.ObservedLogs
}

func TestCaveTestSuite(t *testing.T) {
	suite.Run(t, new(CaveTestSuite))
}

func (suite *CaveTestSuite) SetupTest() {
	suite.layout = mocks.NewLayoutRepository(suite.T())

	logger, logs := observedLogger()
	suite.observedLogs = logs
	suite.engine = newEngine(server.NewCaveServer(suite.layout, logger).Register)
}

func (suite *CaveTestSuite) TestListCaves_Tree() {
	caves := []*model.Cave{{
		Model: gorm.Model{ID: 1},
		Name:  "Main",
		Columns: []model.CaveColumn{{
			Model:  gorm.Model{ID: 2},
			CaveID: 1,
			Name:   "A",
			Rows: []model.CaveRow{{
				Model: gorm.Model{ID: 3}, ColumnID: 2, Name: "R1", Width: 2, Height: 1,
				Positions: []model.Position{{ID: 10, RowID: 3, Line: 1, Slot: 1}, {ID: 11, RowID: 3, Line: 1, Slot: 2}},
			}},
		}},
	}}
	suite.layout.EXPECT().ListCaveTrees(mock.Anything).Return(caves, nil)

	response := serve(suite.engine, http.MethodGet, "/api/v1/caves", nil)
	suite.Equal(http.StatusOK, response.Code)

	var result []api.Cave
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &result))
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Columns, 1)
	suite.Require().Len(result[0].Columns[0].Rows, 1)

	row := result[0].Columns[0].Rows[0]
	suite.Equal(2, row.TotalPositions)
	suite.Len(row.Positions, 2)
	suite.Equal(2, row.Positions[1].Position)
}

func (suite *CaveTestSuite) TestCreateCave() {
	suite.layout.EXPECT().CreateCave(mock.Anything, "Main").Return(&model.Cave{Model: gorm.Model{ID: 1}, Name: "Main"}, nil)

	response := serve(suite.engine, http.MethodPost, "/api/v1/caves", `{"name":"Main"}`)

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`{"id":1,"name":"Main","columns":[]}`, response.Body.String())
}

func (suite *CaveTestSuite) TestCreateCave_MissingName() {
	response := serve(suite.engine, http.MethodPost, "/api/v1/caves", `{}`)

	suite.Equal(http.StatusBadRequest, response.Code)
}

func (suite *CaveTestSuite) TestGetCave_NotFound() {
	suite.layout.EXPECT().GetCaveTree(mock.Anything, uint(9)).Return(nil, repository.ErrCaveNotFound)

	response := serve(suite.engine, http.MethodGet, "/api/v1/caves/9", nil)

	suite.Equal(http.StatusNotFound, response.Code)
	suite.JSONEq(`{"detail":"cave not found"}`, response.Body.String())
}

func (suite *CaveTestSuite) TestUpdateCave() {
	suite.layout.EXPECT().RenameCave(mock.Anything, uint(1), "Cellar").Return(&model.Cave{Model: gorm.Model{ID: 1}, Name: "Cellar"}, nil)

	response := serve(suite.engine, http.MethodPut, "/api/v1/caves/1", `{"name":"Cellar"}`)

	suite.Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"name":"Cellar"`)
}

func (suite *CaveTestSuite) TestDeleteCave() {
	suite.layout.EXPECT().DeleteCave(mock.Anything, uint(1)).Return(nil)

	response := serve(suite.engine, http.MethodDelete, "/api/v1/caves/1", nil)

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`{"message":"Cave deleted successfully"}`, response.Body.String())
	suite.Equal(1, suite.observedLogs.FilterMessage("cave deleted").Len())
}

func (suite *CaveTestSuite) TestCreateColumn_DefaultOrder() {
	suite.layout.EXPECT().CreateColumn(mock.Anything, uint(1), "A", 0).
		Return(&model.CaveColumn{Model: gorm.Model{ID: 2}, CaveID: 1, Name: "A"}, nil)

	response := serve(suite.engine, http.MethodPost, "/api/v1/caves/1/columns", `{"name":"A"}`)

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`{"id":2,"cave_id":1,"name":"A","order":0,"rows":[]}`, response.Body.String())
}

func (suite *CaveTestSuite) TestCreateColumn_UnknownCave() {
	suite.layout.EXPECT().CreateColumn(mock.Anything, uint(7), "A", 2).Return(nil, repository.ErrCaveNotFound)

	response := serve(suite.engine, http.MethodPost, "/api/v1/caves/7/columns", `{"name":"A","order":2}`)

	suite.Equal(http.StatusNotFound, response.Code)
}

func (suite *CaveTestSuite) TestUpdateColumn() {
	suite.layout.EXPECT().UpdateColumn(mock.Anything, uint(2), "B", 1).
		Return(&model.CaveColumn{Model: gorm.Model{ID: 2}, CaveID: 1, Name: "B", Order: 1}, nil)

	response := serve(suite.engine, http.MethodPut, "/api/v1/columns/2", `{"name":"B","order":1}`)

	suite.Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"order":1`)
}

func (suite *CaveTestSuite) TestDeleteColumn_NotFound() {
	suite.layout.EXPECT().DeleteColumn(mock.Anything, uint(2)).Return(repository.ErrColumnNotFound)

	response := serve(suite.engine, http.MethodDelete, "/api/v1/columns/2", nil)

	suite.Equal(http.StatusNotFound, response.Code)
	suite.JSONEq(`{"detail":"column not found"}`, response.Body.String())
}

func (suite *CaveTestSuite) TestCreateRow_Defaults() {
	positions := placement.GenerateGrid(3, model.DefaultRowWidth, model.DefaultRowHeight)
	suite.layout.EXPECT().CreateRow(mock.Anything, uint(2), mock.MatchedBy(func(row model.CaveRow) bool {
		return row.Name == "R1" && row.Width == model.DefaultRowWidth && row.Height == model.DefaultRowHeight && row.Order == 0
	})).Return(&model.CaveRow{Model: gorm.Model{ID: 3}, ColumnID: 2, Name: "R1", Width: 6, Height: 4, Positions: positions}, nil)

	response := serve(suite.engine, http.MethodPost, "/api/v1/columns/2/rows", `{"name":"R1"}`)
	suite.Equal(http.StatusOK, response.Code)

	var row api.Row
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &row))
	suite.Equal(24, row.TotalPositions)
	suite.Len(row.Positions, 24)

	logs := suite.observedLogs.FilterMessage("row created").All()
	suite.Require().Len(logs, 1)
	suite.Equal(int64(24), logs[0].ContextMap()["positions"])
}

func (suite *CaveTestSuite) TestCreateRow_InvalidDimensions() {
	suite.layout.EXPECT().CreateRow(mock.Anything, uint(2), mock.AnythingOfType("model.CaveRow")).
		Return(nil, placement.ErrInvalidDimensions)

	response := serve(suite.engine, http.MethodPost, "/api/v1/columns/2/rows", `{"name":"R1","width":0}`)

	suite.Equal(http.StatusBadRequest, response.Code)
	suite.JSONEq(`{"detail":"invalid row dimensions"}`, response.Body.String())
}

func (suite *CaveTestSuite) TestUpdateRow() {
	suite.layout.EXPECT().UpdateRow(mock.Anything, uint(3), mock.MatchedBy(func(row model.CaveRow) bool {
		return row.Width == 2 && row.Height == 2 && row.Order == 5
	})).Return(&model.CaveRow{Model: gorm.Model{ID: 3}, ColumnID: 2, Name: "R1", Width: 2, Height: 2, Order: 5}, nil)

	response := serve(suite.engine, http.MethodPut, "/api/v1/rows/3", `{"name":"R1","width":2,"height":2,"order":5}`)

	suite.Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"total_positions":4`)
}

func (suite *CaveTestSuite) TestDeleteRow() {
	suite.layout.EXPECT().DeleteRow(mock.Anything, uint(3)).Return(nil)

	response := serve(suite.engine, http.MethodDelete, "/api/v1/rows/3", nil)

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`{"message":"Row deleted successfully"}`, response.Body.String())
}
