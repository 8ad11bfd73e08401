// Package placement holds the rules of the cave grid: how a row is divided
// into slots and when a bottle may take one more of them.
package placement

import (
	"errors"
	"fmt"

	"droscher.com/Pinarr/pkg/model"
)

const (
	MinDimension = 1
	MaxDimension = 100
)

var (
	ErrInvalidDimensions  = errors.New("invalid row dimensions")
	ErrSlotOutOfRange     = errors.New("slot outside of row")
	ErrMaxQuantityReached = errors.New("maximum quantity reached")
)

// ValidateDimensions rejects rows narrower or shorter than one slot or larger than MaxDimension.
func ValidateDimensions(width, height int) error {
	if width < MinDimension || width > MaxDimension {
		return fmt.Errorf("%w: width must be between %d and %d, got %d", ErrInvalidDimensions, MinDimension, MaxDimension, width)
	}

	if height < MinDimension || height > MaxDimension {
		return fmt.Errorf("%w: height must be between %d and %d, got %d", ErrInvalidDimensions, MinDimension, MaxDimension, height)
	}

	return nil
}

// GenerateGrid returns width*height empty positions for the row, line by line.
// It never looks at existing positions: callers delete the old grid first.
func GenerateGrid(rowID uint, width, height int) []model.Position {
	positions := make([]model.Position, 0, width*height)

	for line := 1; line <= height; line++ {
		for slot := 1; slot <= width; slot++ {
			positions = append(positions, model.Position{RowID: rowID, Line: line, Slot: slot})
		}
	}

	return positions
}

func ValidateSlot(row model.CaveRow, line, slot int) error {
	if line < 1 || line > row.Height || slot < 1 || slot > row.Width {
		return fmt.Errorf("%w: line %d, position %d does not fit in a %dx%d row", ErrSlotOutOfRange, line, slot, row.Width, row.Height)
	}

	return nil
}

// CheckQuantity fails when a bottle already fills as many slots as it has quantity.
// placed must not count the slot being assigned.
func CheckQuantity(bottle model.Bottle, placed int64) error {
	if placed >= int64(bottle.Quantity) {
		return fmt.Errorf("%w: bottle %d is already placed %d times for a quantity of %d",
			ErrMaxQuantityReached, bottle.ID, placed, bottle.Quantity)
	}

	return nil
}

func Code(columnName, rowName string, line, slot int) string {
	return fmt.Sprintf("%s-%s-L%d-P%d", columnName, rowName, line, slot)
}
