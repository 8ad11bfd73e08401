package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/repository"
)

type LayoutTestSuite struct {
	SQLiteSuite
}

func TestLayoutTestSuite(t *testing.T) {
	suite.Run(t, new(LayoutTestSuite))
}

func (suite *LayoutTestSuite) count(value any) int64 {
	var count int64
	suite.Require().NoError(suite.repository.DB.Model(value).Count(&count).Error)

	return count
}

func (suite *LayoutTestSuite) TestRenameCave() {
	cave, err := suite.repository.CreateCave(suite.ctx, "Garage")
	suite.Require().NoError(err)

	renamed, err := suite.repository.RenameCave(suite.ctx, cave.ID, "Basement")
	suite.Require().NoError(err)
	suite.Equal("Basement", renamed.Name)

	_, err = suite.repository.RenameCave(suite.ctx, 404, "x")
	suite.ErrorIs(err, repository.ErrCaveNotFound)
}

func (suite *LayoutTestSuite) TestCreateColumn_UnknownCave() {
	column, err := suite.repository.CreateColumn(suite.ctx, 404, "A", 0)

	suite.Nil(column)
	suite.ErrorIs(err, repository.ErrCaveNotFound)
}

func (suite *LayoutTestSuite) TestUpdateColumn() {
	cave, err := suite.repository.CreateCave(suite.ctx, "Garage")
	suite.Require().NoError(err)

	column, err := suite.repository.CreateColumn(suite.ctx, cave.ID, "A", 0)
	suite.Require().NoError(err)

	updated, err := suite.repository.UpdateColumn(suite.ctx, column.ID, "B", 3)
	suite.Require().NoError(err)
	suite.Equal("B", updated.Name)
	suite.Equal(3, updated.Order)
	suite.Equal(cave.ID, updated.CaveID)

	_, err = suite.repository.UpdateColumn(suite.ctx, 404, "B", 3)
	suite.ErrorIs(err, repository.ErrColumnNotFound)
}

func (suite *LayoutTestSuite) TestDeleteCave_CascadesAndKeepsBottles() {
	row := suite.addRow(2, 2)
	bottle := suite.addBottle("Montrachet", 2008, 1)

	positions, err := suite.repository.GetRowPositions(suite.ctx, row.ID)
	suite.Require().NoError(err)

	_, err = suite.repository.AssignBottle(suite.ctx, positions[0].ID, &bottle.ID)
	suite.Require().NoError(err)

	caves, err := suite.repository.ListCaveTrees(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(caves, 1)

	suite.Require().NoError(suite.repository.DeleteCave(suite.ctx, caves[0].ID))

	suite.Zero(suite.count(&model.Cave{}))
	suite.Zero(suite.count(&model.CaveColumn{}))
	suite.Zero(suite.count(&model.CaveRow{}))
	suite.Zero(suite.count(&model.Position{}))

	view, err := suite.repository.GetBottleWithPositions(suite.ctx, bottle.ID)
	suite.Require().NoError(err)
	suite.Equal("Montrachet", view.Bottle.Name)
	suite.Empty(view.Positions)
	suite.NoError(suite.repository.ValidatePlacement(suite.ctx, bottle.ID, nil))
}

func (suite *LayoutTestSuite) TestDeleteCave_LeavesOtherCaves() {
	suite.addRow(1, 1)
	other := suite.addRow(2, 1)

	caves, err := suite.repository.ListCaveTrees(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(caves, 2)

	suite.Require().NoError(suite.repository.DeleteCave(suite.ctx, caves[0].ID))

	suite.Equal(int64(1), suite.count(&model.Cave{}))
	suite.Equal(int64(2), suite.countPositions(other.ID))
}

func (suite *LayoutTestSuite) TestDeleteCave_NotFound() {
	suite.ErrorIs(suite.repository.DeleteCave(suite.ctx, 404), repository.ErrCaveNotFound)
}

func (suite *LayoutTestSuite) TestDeleteColumn_Cascades() {
	row := suite.addRow(3, 3)

	var column model.CaveColumn
	suite.Require().NoError(suite.repository.DB.First(&column, row.ColumnID).Error)

	suite.Require().NoError(suite.repository.DeleteColumn(suite.ctx, column.ID))

	suite.Equal(int64(1), suite.count(&model.Cave{}))
	suite.Zero(suite.count(&model.CaveColumn{}))
	suite.Zero(suite.count(&model.CaveRow{}))
	suite.Zero(suite.count(&model.Position{}))

	suite.ErrorIs(suite.repository.DeleteColumn(suite.ctx, column.ID), repository.ErrColumnNotFound)
}

func (suite *LayoutTestSuite) TestDeleteRow_KeepsBottle() {
	row := suite.addRow(1, 2)
	bottle := suite.addBottle("Tavel", 2023, 1)

	positions, err := suite.repository.GetRowPositions(suite.ctx, row.ID)
	suite.Require().NoError(err)

	_, err = suite.repository.AssignBottle(suite.ctx, positions[1].ID, &bottle.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteRow(suite.ctx, row.ID))

	suite.Zero(suite.countPositions(row.ID))
	suite.Equal(int64(1), suite.count(&model.CaveColumn{}))

	_, err = suite.repository.GetBottle(suite.ctx, bottle.ID)
	suite.Require().NoError(err)

	suite.ErrorIs(suite.repository.DeleteRow(suite.ctx, row.ID), repository.ErrRowNotFound)
}

func (suite *LayoutTestSuite) TestGetCaveTree_Ordered() {
	cave, err := suite.repository.CreateCave(suite.ctx, "Main")
	suite.Require().NoError(err)

	right, err := suite.repository.CreateColumn(suite.ctx, cave.ID, "Right", 2)
	suite.Require().NoError(err)
	left, err := suite.repository.CreateColumn(suite.ctx, cave.ID, "Left", 1)
	suite.Require().NoError(err)

	_, err = suite.repository.CreateRow(suite.ctx, left.ID, model.CaveRow{Name: "bottom", Width: 2, Height: 1, Order: 1})
	suite.Require().NoError(err)
	top, err := suite.repository.CreateRow(suite.ctx, left.ID, model.CaveRow{Name: "top", Width: 1, Height: 2, Order: 0})
	suite.Require().NoError(err)
	_, err = suite.repository.CreateRow(suite.ctx, right.ID, model.CaveRow{Name: "only", Width: 1, Height: 1})
	suite.Require().NoError(err)

	bottle := suite.addBottle("Chinon", 2019, 1)
	_, err = suite.repository.AssignBottle(suite.ctx, top.Positions[1].ID, &bottle.ID)
	suite.Require().NoError(err)

	tree, err := suite.repository.GetCaveTree(suite.ctx, cave.ID)
	suite.Require().NoError(err)
	suite.Equal("Main", tree.Name)
	suite.Require().Len(tree.Columns, 2)
	suite.Equal("Left", tree.Columns[0].Name)
	suite.Equal("Right", tree.Columns[1].Name)

	rows := tree.Columns[0].Rows
	suite.Require().Len(rows, 2)
	suite.Equal("top", rows[0].Name)
	suite.Equal("bottom", rows[1].Name)

	suite.Require().Len(rows[0].Positions, 2)
	suite.Equal(1, rows[0].Positions[0].Line)
	suite.Nil(rows[0].Positions[0].Bottle)
	suite.Equal(2, rows[0].Positions[1].Line)
	suite.Require().NotNil(rows[0].Positions[1].Bottle)
	suite.Equal("Chinon", rows[0].Positions[1].Bottle.Name)

	suite.Len(tree.Columns[1].Rows, 1)
}

func (suite *LayoutTestSuite) TestGetCaveTree_NotFound() {
	tree, err := suite.repository.GetCaveTree(suite.ctx, 404)

	suite.Nil(tree)
	suite.ErrorIs(err, repository.ErrCaveNotFound)
}

type LayoutSQLTestSuite struct {
	RepositorySuite
}

func TestLayoutSQLTestSuite(t *testing.T) {
	suite.Run(t, new(LayoutSQLTestSuite))
}

func (suite *LayoutSQLTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *LayoutSQLTestSuite) TestCreateCave() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "caves" ("created_at","updated_at","deleted_at","name") VALUES ($1,$2,$3,$4) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Garage").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	suite.mock.ExpectCommit()

	cave, err := suite.repository.CreateCave(context.Background(), "Garage")

	suite.Require().NoError(err)
	suite.Equal(uint(9), cave.ID)
	suite.Equal("Garage", cave.Name)
}

func (suite *LayoutSQLTestSuite) TestGetCaveTree_FixedNumberOfQueries() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "caves" WHERE "caves"."id" = $1 AND "caves"."deleted_at" IS NULL`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Main"))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cave_columns" WHERE "cave_columns"."cave_id" = $1 AND "cave_columns"."deleted_at" IS NULL ORDER BY sort_order, id`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cave_id", "name", "sort_order"}).AddRow(10, 1, "A", 0).AddRow(11, 1, "B", 1))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cave_rows" WHERE "cave_rows"."column_id" IN ($1,$2) AND "cave_rows"."deleted_at" IS NULL ORDER BY sort_order, id`)).
		WithArgs(10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"id", "column_id", "name", "width", "height"}).AddRow(20, 10, "1", 1, 1).AddRow(21, 11, "1", 1, 1))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "positions" WHERE "positions"."row_id" IN ($1,$2) ORDER BY line, position`)).
		WithArgs(20, 21).
		WillReturnRows(sqlmock.NewRows([]string{"id", "row_id", "line", "position", "bottle_id"}).AddRow(30, 20, 1, 1, 5).AddRow(31, 21, 1, 1, nil))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bottles" WHERE "bottles"."id" = $1 AND "bottles"."deleted_at" IS NULL`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quantity"}).AddRow(5, "Margaux", 1))

	tree, err := suite.repository.GetCaveTree(context.Background(), 1)

	suite.Require().NoError(err)
	suite.Require().Len(tree.Columns, 2)
	suite.Require().Len(tree.Columns[0].Rows, 1)
	suite.Require().Len(tree.Columns[0].Rows[0].Positions, 1)
	suite.Equal("Margaux", tree.Columns[0].Rows[0].Positions[0].Bottle.Name)
	suite.Nil(tree.Columns[1].Rows[0].Positions[0].Bottle)
}
