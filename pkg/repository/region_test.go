package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/Pinarr/pkg/model"
)

type RegionTestSuite struct {
	SQLiteSuite
}

func TestRegionTestSuite(t *testing.T) {
	suite.Run(t, new(RegionTestSuite))
}

func (suite *RegionTestSuite) TestGetOrCreateRegion_Idempotent() {
	first, err := suite.repository.GetOrCreateRegion(suite.ctx, "Bordeaux", 44.8, -0.5)
	suite.Require().NoError(err)
	suite.NotZero(first.ID)

	second, err := suite.repository.GetOrCreateRegion(suite.ctx, "Bordeaux", 10, 10)
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.InDelta(44.8, second.Lat, 0.0001)
	suite.InDelta(-0.5, second.Lon, 0.0001)

	var count int64
	suite.Require().NoError(suite.repository.DB.Model(&model.GeocodedRegion{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *RegionTestSuite) TestListRegions_OrderedByName() {
	_, err := suite.repository.GetOrCreateRegion(suite.ctx, "Rhône", 45.0, 4.8)
	suite.Require().NoError(err)
	_, err = suite.repository.GetOrCreateRegion(suite.ctx, "Alsace", 48.3, 7.4)
	suite.Require().NoError(err)

	regions, err := suite.repository.ListRegions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(regions, 2)
	suite.Equal("Alsace", regions[0].Name)
	suite.Equal("Rhône", regions[1].Name)
}

type RegionSQLTestSuite struct {
	RepositorySuite
}

func TestRegionSQLTestSuite(t *testing.T) {
	suite.Run(t, new(RegionSQLTestSuite))
}

func (suite *RegionSQLTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RegionSQLTestSuite) TestGetOrCreateRegion_ConflictFallsBackToLookup() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "geocoded_regions" ("created_at","updated_at","deleted_at","name","lat","lon") VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Bordeaux", 44.8, -0.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "geocoded_regions" WHERE name = $1 AND "geocoded_regions"."deleted_at" IS NULL`)).
		WithArgs("Bordeaux", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "lat", "lon"}).AddRow(3, "Bordeaux", 44.8, -0.5))

	region, err := suite.repository.GetOrCreateRegion(context.Background(), "Bordeaux", 44.8, -0.5)

	suite.Require().NoError(err)
	suite.Equal(uint(3), region.ID)
}
