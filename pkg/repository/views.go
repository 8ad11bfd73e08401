package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/Pinarr/pkg/model"
)

func (r *Repository) GetBottleWithPositions(ctx context.Context, bottleID uint) (*model.BottleWithPositions, error) {
	bottle, err := r.GetBottle(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	placed, err := r.placedPositions(ctx, []uint{bottleID})
	if err != nil {
		return nil, err
	}

	return &model.BottleWithPositions{Bottle: *bottle, Positions: placed[bottleID]}, nil
}

// ListBottles loads a page of bottles and their placements in two queries.
func (r *Repository) ListBottles(ctx context.Context, offset int, limit int) ([]*model.BottleWithPositions, error) {
	var bottles []model.Bottle

	if result := r.DB.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&bottles); result.Error != nil {
		return nil, result.Error
	}

	bottleIDs := make([]uint, 0, len(bottles))
	for index := range bottles {
		bottleIDs = append(bottleIDs, bottles[index].ID)
	}

	placed, err := r.placedPositions(ctx, bottleIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*model.BottleWithPositions, 0, len(bottles))
	for index := range bottles {
		views = append(views, &model.BottleWithPositions{
			Bottle:    bottles[index],
			Positions: placed[bottles[index].ID],
		})
	}

	return views, nil
}

func (r *Repository) placedPositions(ctx context.Context, bottleIDs []uint) (map[uint][]model.PlacedPosition, error) {
	byBottle := make(map[uint][]model.PlacedPosition, len(bottleIDs))
	if len(bottleIDs) == 0 {
		return byBottle, nil
	}

	var placed []model.PlacedPosition

	result := r.DB.WithContext(ctx).Table("positions AS p").
		Select("p.id, p.bottle_id, p.line, p.position AS slot, " +
			"r.id AS row_id, r.name AS row_name, " +
			"c.id AS column_id, c.name AS column_name, " +
			"cv.id AS cave_id, cv.name AS cave_name").
		Joins("INNER JOIN cave_rows r ON r.id = p.row_id").
		Joins("INNER JOIN cave_columns c ON c.id = r.column_id").
		Joins("INNER JOIN caves cv ON cv.id = c.cave_id").
		Where("p.bottle_id IN ?", bottleIDs).
		Order("p.bottle_id, cv.id, c.sort_order, r.sort_order, p.line, p.position").
		Scan(&placed)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, position := range placed {
		byBottle[position.BottleID] = append(byBottle[position.BottleID], position)
	}

	return byBottle, nil
}

func (r *Repository) GetCaveTree(ctx context.Context, caveID uint) (*model.Cave, error) {
	var cave model.Cave

	if result := r.caveTree(ctx).First(&cave, caveID); result.Error != nil {
		return nil, notFound(result.Error, ErrCaveNotFound)
	}

	return &cave, nil
}

func (r *Repository) ListCaveTrees(ctx context.Context) ([]*model.Cave, error) {
	var caves []*model.Cave

	if result := r.caveTree(ctx).Order("id").Find(&caves); result.Error != nil {
		return nil, result.Error
	}

	return caves, nil
}

// caveTree preloads one level per query, so the number of round trips does not depend on the size of the cave.
func (r *Repository) caveTree(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, id")
		}).
		Preload("Columns.Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, id")
		}).
		Preload("Columns.Rows.Positions", func(db *gorm.DB) *gorm.DB {
			return db.Order("line, position")
		}).
		Preload("Columns.Rows.Positions.Bottle")
}
