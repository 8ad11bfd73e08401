package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/placement"
)

const positionBatchSize = 500

type LayoutRepository interface { //nolint:interfacebloat // one method per layout operation
	CreateCave(ctx context.Context, name string) (*model.Cave, error)
	RenameCave(ctx context.Context, caveID uint, name string) (*model.Cave, error)
	DeleteCave(ctx context.Context, caveID uint) error
	GetCaveTree(ctx context.Context, caveID uint) (*model.Cave, error)
	ListCaveTrees(ctx context.Context) ([]*model.Cave, error)
	CreateColumn(ctx context.Context, caveID uint, name string, order int) (*model.CaveColumn, error)
	UpdateColumn(ctx context.Context, columnID uint, name string, order int) (*model.CaveColumn, error)
	DeleteColumn(ctx context.Context, columnID uint) error
	CreateRow(ctx context.Context, columnID uint, row model.CaveRow) (*model.CaveRow, error)
	UpdateRow(ctx context.Context, rowID uint, row model.CaveRow) (*model.CaveRow, error)
	DeleteRow(ctx context.Context, rowID uint) error
}

func (r *Repository) CreateCave(ctx context.Context, name string) (*model.Cave, error) {
	cave := model.Cave{Name: name}

	if result := r.DB.WithContext(ctx).Create(&cave); result.Error != nil {
		return nil, result.Error
	}

	return &cave, nil
}

func (r *Repository) RenameCave(ctx context.Context, caveID uint, name string) (*model.Cave, error) {
	var cave model.Cave

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cave, caveID).Error; err != nil {
			return notFound(err, ErrCaveNotFound)
		}

		cave.Name = name

		return tx.Save(&cave).Error
	})
	if err != nil {
		return nil, err
	}

	return &cave, nil
}

// DeleteCave removes the cave with its columns, rows and positions. Bottles stay in the catalog.
func (r *Repository) DeleteCave(ctx context.Context, caveID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cave model.Cave
		if err := tx.First(&cave, caveID).Error; err != nil {
			return notFound(err, ErrCaveNotFound)
		}

		var columnIDs []uint
		if err := tx.Model(&model.CaveColumn{}).Where("cave_id = ?", caveID).Pluck("id", &columnIDs).Error; err != nil {
			return err
		}

		if err := deleteColumns(tx, columnIDs); err != nil {
			return err
		}

		r.Logger.Info("deleting cave", zap.Uint("cave_id", caveID), zap.Int("columns", len(columnIDs)))

		return tx.Delete(&cave).Error
	})
}

func (r *Repository) CreateColumn(ctx context.Context, caveID uint, name string, order int) (*model.CaveColumn, error) {
	column := model.CaveColumn{CaveID: caveID, Name: name, Order: order}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Cave{}, caveID).Error; err != nil {
			return notFound(err, ErrCaveNotFound)
		}

		return tx.Create(&column).Error
	})
	if err != nil {
		return nil, err
	}

	return &column, nil
}

func (r *Repository) UpdateColumn(ctx context.Context, columnID uint, name string, order int) (*model.CaveColumn, error) {
	var column model.CaveColumn

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&column, columnID).Error; err != nil {
			return notFound(err, ErrColumnNotFound)
		}

		column.Name = name
		column.Order = order

		return tx.Save(&column).Error
	})
	if err != nil {
		return nil, err
	}

	return &column, nil
}

func (r *Repository) DeleteColumn(ctx context.Context, columnID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.CaveColumn{}, columnID).Error; err != nil {
			return notFound(err, ErrColumnNotFound)
		}

		return deleteColumns(tx, []uint{columnID})
	})
}

// CreateRow stores the row together with its full grid of empty positions.
func (r *Repository) CreateRow(ctx context.Context, columnID uint, row model.CaveRow) (*model.CaveRow, error) {
	if err := placement.ValidateDimensions(row.Width, row.Height); err != nil {
		return nil, err
	}

	row.ID = 0
	row.ColumnID = columnID
	row.Positions = nil

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.CaveColumn{}, columnID).Error; err != nil {
			return notFound(err, ErrColumnNotFound)
		}

		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		positions, err := generatePositions(tx, row)
		if err != nil {
			return err
		}

		row.Positions = positions

		return nil
	})
	if err != nil {
		r.Logger.Error("error creating row", zap.Uint("column_id", columnID), zap.Error(err))

		return nil, err
	}

	return &row, nil
}

// UpdateRow saves name, order and dimensions. A change of width or height
// drops every position of the row, with their bottles, and builds a new grid.
func (r *Repository) UpdateRow(ctx context.Context, rowID uint, changes model.CaveRow) (*model.CaveRow, error) {
	if err := placement.ValidateDimensions(changes.Width, changes.Height); err != nil {
		return nil, err
	}

	var row model.CaveRow

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, rowID).Error; err != nil {
			return notFound(err, ErrRowNotFound)
		}

		resized := row.Width != changes.Width || row.Height != changes.Height

		row.Name = changes.Name
		row.Order = changes.Order
		row.Width = changes.Width
		row.Height = changes.Height

		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		if !resized {
			return nil
		}

		if err := tx.Where("row_id = ?", row.ID).Delete(&model.Position{}).Error; err != nil {
			return err
		}

		r.Logger.Info("regenerating row grid", zap.Uint("row_id", row.ID), zap.Int("width", row.Width), zap.Int("height", row.Height))

		positions, err := generatePositions(tx, row)
		if err != nil {
			return err
		}

		row.Positions = positions

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *Repository) DeleteRow(ctx context.Context, rowID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.CaveRow{}, rowID).Error; err != nil {
			return notFound(err, ErrRowNotFound)
		}

		return deleteRows(tx, []uint{rowID})
	})
}

func generatePositions(tx *gorm.DB, row model.CaveRow) ([]model.Position, error) {
	positions := placement.GenerateGrid(row.ID, row.Width, row.Height)

	if err := tx.CreateInBatches(&positions, positionBatchSize).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func deleteColumns(tx *gorm.DB, columnIDs []uint) error {
	if len(columnIDs) == 0 {
		return nil
	}

	var rowIDs []uint
	if err := tx.Model(&model.CaveRow{}).Where("column_id IN ?", columnIDs).Pluck("id", &rowIDs).Error; err != nil {
		return err
	}

	if err := deleteRows(tx, rowIDs); err != nil {
		return err
	}

	return tx.Delete(&model.CaveColumn{}, columnIDs).Error
}

func deleteRows(tx *gorm.DB, rowIDs []uint) error {
	if len(rowIDs) == 0 {
		return nil
	}

	if err := tx.Where("row_id IN ?", rowIDs).Delete(&model.Position{}).Error; err != nil {
		return err
	}

	return tx.Delete(&model.CaveRow{}, rowIDs).Error
}
