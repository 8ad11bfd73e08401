package server_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/Pinarr/mocks"
	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/server"
)

type RegionTestSuite struct {
	suite.Suite
	regions *mocks.RegionRepository
	engine  *gin.Engine
}

func TestRegionTestSuite(t *testing.T) {
	suite.Run(t, new(RegionTestSuite))
}

func (suite *RegionTestSuite) SetupTest() {
	suite.regions = mocks.NewRegionRepository(suite.T())

	logger, _ := observedLogger()
	suite.engine = newEngine(server.NewRegionServer(suite.regions, logger).Register)
}

func (suite *RegionTestSuite) TestListRegions() {
	suite.regions.EXPECT().ListRegions(mock.Anything).Return([]*model.GeocodedRegion{
		{Model: gorm.Model{ID: 1}, Name: "Bordeaux", Lat: 44.84, Lon: -0.58},
	}, nil)

	response := serve(suite.engine, http.MethodGet, "/api/v1/geocoded-regions", nil)

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`[{"id":1,"name":"Bordeaux","lat":44.84,"lon":-0.58}]`, response.Body.String())
}

func (suite *RegionTestSuite) TestCreateRegion() {
	suite.regions.EXPECT().GetOrCreateRegion(mock.Anything, "Bourgogne", 47.05, 4.38).
		Return(&model.GeocodedRegion{Model: gorm.Model{ID: 2}, Name: "Bourgogne", Lat: 47.05, Lon: 4.38}, nil)

	response := serve(suite.engine, http.MethodPost, "/api/v1/geocoded-regions", `{"name":"Bourgogne","lat":47.05,"lon":4.38}`)

	suite.Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"id":2`)
}

func (suite *RegionTestSuite) TestCreateRegion_ZeroCoordinates() {
	suite.regions.EXPECT().GetOrCreateRegion(mock.Anything, "Null Island", 0.0, 0.0).
		Return(&model.GeocodedRegion{Model: gorm.Model{ID: 3}, Name: "Null Island"}, nil)

	response := serve(suite.engine, http.MethodPost, "/api/v1/geocoded-regions", `{"name":"Null Island","lat":0,"lon":0}`)

	suite.Equal(http.StatusOK, response.Code)
}

func (suite *RegionTestSuite) TestCreateRegion_MissingCoordinates() {
	response := serve(suite.engine, http.MethodPost, "/api/v1/geocoded-regions", `{"name":"Bourgogne","lat":47.05}`)

	suite.Equal(http.StatusBadRequest, response.Code)
}
