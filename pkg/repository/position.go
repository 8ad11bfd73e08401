package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/placement"
)

type PlacementRepository interface {
	GetRowPositions(ctx context.Context, rowID uint) ([]*model.Position, error)
	CreatePosition(ctx context.Context, rowID uint, line int, slot int) (*model.Position, error)
	ValidatePlacement(ctx context.Context, bottleID uint, excludePositionID *uint) error
	AssignBottle(ctx context.Context, positionID uint, bottleID *uint) (*model.Position, error)
	RemoveBottle(ctx context.Context, positionID uint) (*model.Position, error)
}

func (r *Repository) GetRowPositions(ctx context.Context, rowID uint) ([]*model.Position, error) {
	var positions []*model.Position

	db := r.DB.WithContext(ctx)

	if err := db.First(&model.CaveRow{}, rowID).Error; err != nil {
		return nil, notFound(err, ErrRowNotFound)
	}

	result := db.Preload("Bottle").
		Where("row_id = ?", rowID).
		Order("line, position").
		Find(&positions)
	if result.Error != nil {
		return nil, result.Error
	}

	return positions, nil
}

// CreatePosition returns the slot at (line, slot) of the row, creating it if it is missing.
func (r *Repository) CreatePosition(ctx context.Context, rowID uint, line int, slot int) (*model.Position, error) {
	position := model.Position{RowID: rowID, Line: line, Slot: slot}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.CaveRow
		if err := tx.First(&row, rowID).Error; err != nil {
			return notFound(err, ErrRowNotFound)
		}

		if err := placement.ValidateSlot(row, line, slot); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&position).Error; err != nil {
			return err
		}

		if position.ID == 0 {
			return tx.Where("row_id = ? AND line = ? AND position = ?", rowID, line, slot).First(&position).Error
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &position, nil
}

// ValidatePlacement checks the bottle may take one more slot. Positions
// listed in excludePositionID are not counted.
func (r *Repository) ValidatePlacement(ctx context.Context, bottleID uint, excludePositionID *uint) error {
	return validatePlacement(r.DB.WithContext(ctx), bottleID, excludePositionID)
}

// AssignBottle puts the bottle in the position, or empties it when bottleID is nil.
// The bottle row is locked while its placements are counted so concurrent
// assignments of the same bottle cannot overrun its quantity.
func (r *Repository) AssignBottle(ctx context.Context, positionID uint, bottleID *uint) (*model.Position, error) {
	var position model.Position

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&position, positionID).Error; err != nil {
			return notFound(err, ErrPositionNotFound)
		}

		if bottleID != nil {
			if err := validatePlacement(tx, *bottleID, &position.ID); err != nil {
				return err
			}
		}

		if err := tx.Model(&position).Update("bottle_id", bottleID).Error; err != nil {
			return err
		}

		position.BottleID = bottleID

		return nil
	})
	if err != nil {
		return nil, err
	}

	if bottleID != nil {
		r.Logger.Debug("bottle placed", zap.Uint("position_id", positionID), zap.Uint("bottle_id", *bottleID))
	}

	return &position, nil
}

func (r *Repository) RemoveBottle(ctx context.Context, positionID uint) (*model.Position, error) {
	return r.AssignBottle(ctx, positionID, nil)
}

func validatePlacement(tx *gorm.DB, bottleID uint, excludePositionID *uint) error {
	var bottle model.Bottle
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bottle, bottleID).Error; err != nil {
		return notFound(err, ErrBottleNotFound)
	}

	placed, err := countPlacements(tx, bottleID, excludePositionID)
	if err != nil {
		return err
	}

	return placement.CheckQuantity(bottle, placed)
}

func countPlacements(tx *gorm.DB, bottleID uint, excludePositionID *uint) (int64, error) {
	var placed int64

	query := tx.Model(&model.Position{}).Where("bottle_id = ?", bottleID)
	if excludePositionID != nil {
		query = query.Where("id <> ?", *excludePositionID)
	}

	if err := query.Count(&placed).Error; err != nil {
		return 0, err
	}

	return placed, nil
}
