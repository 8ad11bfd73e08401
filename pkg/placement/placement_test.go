package placement_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/placement"
)

type PlacementTestSuite struct {
	suite.Suite
}

func TestPlacementTestSuite(t *testing.T) {
	suite.Run(t, new(PlacementTestSuite))
}

func (suite *PlacementTestSuite) TestGenerateGrid_LineMajor() {
	positions := placement.GenerateGrid(7, 2, 2)

	suite.Require().Len(positions, 4)

	expected := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	for index, position := range positions {
		suite.Equal(uint(7), position.RowID)
		suite.Equal(expected[index][0], position.Line)
		suite.Equal(expected[index][1], position.Slot)
		suite.Nil(position.BottleID)
		suite.Zero(position.ID)
	}
}

func (suite *PlacementTestSuite) TestGenerateGrid_Size() {
	for _, dims := range [][2]int{{1, 1}, {6, 4}, {3, 10}, {100, 100}} {
		positions := placement.GenerateGrid(1, dims[0], dims[1])
		suite.Len(positions, dims[0]*dims[1])

		last := positions[len(positions)-1]
		suite.Equal(dims[1], last.Line)
		suite.Equal(dims[0], last.Slot)
	}
}

func (suite *PlacementTestSuite) TestValidateDimensions() {
	suite.NoError(placement.ValidateDimensions(1, 1))
	suite.NoError(placement.ValidateDimensions(6, 4))
	suite.NoError(placement.ValidateDimensions(100, 100))

	suite.ErrorIs(placement.ValidateDimensions(0, 4), placement.ErrInvalidDimensions)
	suite.ErrorIs(placement.ValidateDimensions(6, 0), placement.ErrInvalidDimensions)
	suite.ErrorIs(placement.ValidateDimensions(-1, 4), placement.ErrInvalidDimensions)
	suite.ErrorIs(placement.ValidateDimensions(101, 4), placement.ErrInvalidDimensions)

	err := placement.ValidateDimensions(6, 101)
	suite.EqualError(err, "invalid row dimensions: height must be between 1 and 100, got 101")
}

func (suite *PlacementTestSuite) TestValidateSlot() {
	row := model.CaveRow{Width: 3, Height: 2}

	suite.NoError(placement.ValidateSlot(row, 1, 1))
	suite.NoError(placement.ValidateSlot(row, 2, 3))
	suite.ErrorIs(placement.ValidateSlot(row, 3, 1), placement.ErrSlotOutOfRange)
	suite.ErrorIs(placement.ValidateSlot(row, 1, 4), placement.ErrSlotOutOfRange)
	suite.ErrorIs(placement.ValidateSlot(row, 0, 1), placement.ErrSlotOutOfRange)
}

func (suite *PlacementTestSuite) TestCheckQuantity() {
	bottle := model.Bottle{Model: gorm.Model{ID: 4}, Quantity: 2}

	suite.NoError(placement.CheckQuantity(bottle, 0))
	suite.NoError(placement.CheckQuantity(bottle, 1))

	err := placement.CheckQuantity(bottle, 2)
	suite.Require().ErrorIs(err, placement.ErrMaxQuantityReached)
	suite.EqualError(err, "maximum quantity reached: bottle 4 is already placed 2 times for a quantity of 2")
}

func (suite *PlacementTestSuite) TestCheckQuantity_ZeroStock() {
	suite.ErrorIs(placement.CheckQuantity(model.Bottle{Quantity: 0}, 0), placement.ErrMaxQuantityReached)
}

func (suite *PlacementTestSuite) TestCode() {
	suite.Equal("A-1-L2-P3", placement.Code("A", "1", 2, 3))
	suite.Equal("Left-Top-L1-P6", placement.Code("Left", "Top", 1, 6))
}
