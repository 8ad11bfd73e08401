package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Pinarr/pkg/model"
)

type CatalogRepository interface {
	CreateBottle(ctx context.Context, bottle model.Bottle) (*model.Bottle, error)
	GetBottle(ctx context.Context, bottleID uint) (*model.Bottle, error)
	UpdateBottle(ctx context.Context, bottleID uint, bottle model.Bottle) (*model.Bottle, error)
	PatchBottle(ctx context.Context, bottleID uint, patch model.BottlePatch) (*model.Bottle, error)
	DeleteBottle(ctx context.Context, bottleID uint) error
	SearchBottles(ctx context.Context, query string, limit int) ([]*model.Bottle, error)
	FindDuplicates(ctx context.Context, name string, year int) ([]*model.Bottle, error)
	ListBottles(ctx context.Context, offset int, limit int) ([]*model.BottleWithPositions, error)
	GetBottleWithPositions(ctx context.Context, bottleID uint) (*model.BottleWithPositions, error)
}

func (r *Repository) CreateBottle(ctx context.Context, bottle model.Bottle) (*model.Bottle, error) {
	if result := r.DB.WithContext(ctx).Create(&bottle); result.Error != nil {
		r.Logger.Error("error creating bottle", zap.String("name", bottle.Name), zap.Error(result.Error))

		return nil, result.Error
	}

	return &bottle, nil
}

func (r *Repository) GetBottle(ctx context.Context, bottleID uint) (*model.Bottle, error) {
	var bottle model.Bottle

	if result := r.DB.WithContext(ctx).First(&bottle, bottleID); result.Error != nil {
		return nil, notFound(result.Error, ErrBottleNotFound)
	}

	return &bottle, nil
}

// UpdateBottle replaces every settable field of the bottle.
func (r *Repository) UpdateBottle(ctx context.Context, bottleID uint, bottle model.Bottle) (*model.Bottle, error) {
	return r.modifyBottle(ctx, bottleID, func(existing *model.Bottle) {
		existing.Replace(bottle)
	})
}

// PatchBottle only overwrites the fields set in the patch.
func (r *Repository) PatchBottle(ctx context.Context, bottleID uint, patch model.BottlePatch) (*model.Bottle, error) {
	return r.modifyBottle(ctx, bottleID, patch.ApplyTo)
}

func (r *Repository) modifyBottle(ctx context.Context, bottleID uint, apply func(*model.Bottle)) (*model.Bottle, error) {
	var bottle model.Bottle

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bottle, bottleID).Error; err != nil {
			return notFound(err, ErrBottleNotFound)
		}

		apply(&bottle)

		placed, err := countPlacements(tx, bottleID, nil)
		if err != nil {
			return err
		}

		if int64(bottle.Quantity) < placed {
			return fmt.Errorf("%w: bottle %d is placed %d times", ErrQuantityBelowPlacements, bottleID, placed)
		}

		return tx.Save(&bottle).Error
	})
	if err != nil {
		return nil, err
	}

	return &bottle, nil
}

// DeleteBottle removes the bottle and empties every position that held it.
func (r *Repository) DeleteBottle(ctx context.Context, bottleID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bottle model.Bottle
		if err := tx.First(&bottle, bottleID).Error; err != nil {
			return notFound(err, ErrBottleNotFound)
		}

		result := tx.Model(&model.Position{}).Where("bottle_id = ?", bottleID).Update("bottle_id", nil)
		if result.Error != nil {
			return result.Error
		}

		r.Logger.Debug("emptied positions of deleted bottle", zap.Uint("bottle_id", bottleID), zap.Int64("positions", result.RowsAffected))

		return tx.Delete(&bottle).Error
	})
}

func (r *Repository) SearchBottles(ctx context.Context, query string, limit int) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ?", containsPattern(query)).
		Order("name asc").
		Limit(limit).
		Find(&bottles)
	if result.Error != nil {
		r.Logger.Error("error searching bottles", zap.String("query", query), zap.Error(result.Error))

		return nil, result.Error
	}

	return bottles, nil
}

func (r *Repository) FindDuplicates(ctx context.Context, name string, year int) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ?", containsPattern(name)).
		Where("year = ?", year).
		Order("name asc").
		Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

func containsPattern(value string) string {
	return "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
}
