package rest

import (
	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/placement"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

func BottleFromModel(bottle model.Bottle) api.Bottle {
	return api.Bottle{
		ID:          bottle.ID,
		Name:        bottle.Name,
		Domaine:     bottle.Domaine,
		Country:     bottle.Country,
		Year:        bottle.Year,
		Type:        bottle.Type,
		Region:      bottle.Region,
		Cepage:      bottle.Cepage,
		Alcohol:     bottle.Alcohol,
		Size:        bottle.Size,
		ApogeeStart: bottle.ApogeeStart,
		ApogeeEnd:   bottle.ApogeeEnd,
		BuyLink:     bottle.BuyLink,
		Quantity:    bottle.Quantity,
		Price:       bottle.Price,
		Description: bottle.Description,
		Rating:      bottle.Rating,
		Tags:        bottle.Tags,
		IsFavorite:  bottle.IsFavorite,
		ImagePath:   bottle.ImagePath,
	}
}

// BottleToModel builds a complete bottle from an input body, filling the
// defaults of every absent optional field.
func BottleToModel(input api.BottleInput) model.Bottle {
	bottle := model.Bottle{
		Name:        input.Name,
		Domaine:     input.Domaine,
		Country:     input.Country,
		Year:        input.Year,
		Type:        input.Type,
		Region:      input.Region,
		Cepage:      input.Cepage,
		Alcohol:     input.Alcohol,
		Size:        model.DefaultBottleSize,
		ApogeeStart: input.ApogeeStart,
		ApogeeEnd:   input.ApogeeEnd,
		BuyLink:     input.BuyLink,
		Quantity:    model.DefaultBottleQuantity,
		Price:       input.Price,
		Description: input.Description,
		Rating:      input.Rating,
		Tags:        input.Tags,
		ImagePath:   input.ImagePath,
	}

	if input.Size != nil {
		bottle.Size = *input.Size
	}

	if input.Quantity != nil {
		bottle.Quantity = *input.Quantity
	}

	if input.IsFavorite != nil {
		bottle.IsFavorite = *input.IsFavorite
	}

	return bottle
}

func BottlePatchToModel(patch api.BottlePatch) model.BottlePatch {
	return model.BottlePatch{
		Name:        patch.Name,
		Domaine:     patch.Domaine,
		Country:     patch.Country,
		Year:        patch.Year,
		Type:        patch.Type,
		Region:      patch.Region,
		Cepage:      patch.Cepage,
		Alcohol:     patch.Alcohol,
		Size:        patch.Size,
		ApogeeStart: patch.ApogeeStart,
		ApogeeEnd:   patch.ApogeeEnd,
		BuyLink:     patch.BuyLink,
		Quantity:    patch.Quantity,
		Price:       patch.Price,
		Description: patch.Description,
		Rating:      patch.Rating,
		Tags:        patch.Tags,
		IsFavorite:  patch.IsFavorite,
		ImagePath:   patch.ImagePath,
	}
}

func BottleWithPositionsFromModel(view model.BottleWithPositions) api.BottleWithPositions {
	positions := make([]api.PlacedPosition, 0, len(view.Positions))
	for _, position := range view.Positions {
		positions = append(positions, PlacedPositionFromModel(position))
	}

	return api.BottleWithPositions{Bottle: BottleFromModel(view.Bottle), Positions: positions}
}

func BottlesWithPositionsFromModel(views []*model.BottleWithPositions) []api.BottleWithPositions {
	bottles := make([]api.BottleWithPositions, 0, len(views))
	for _, view := range views {
		bottles = append(bottles, BottleWithPositionsFromModel(*view))
	}

	return bottles
}

func PlacedPositionFromModel(position model.PlacedPosition) api.PlacedPosition {
	return api.PlacedPosition{
		ID:         position.ID,
		Line:       position.Line,
		Position:   position.Slot,
		RowID:      position.RowID,
		RowName:    position.RowName,
		ColumnID:   position.ColumnID,
		ColumnName: position.ColumnName,
		CaveID:     position.CaveID,
		CaveName:   position.CaveName,
		Code:       placement.Code(position.ColumnName, position.RowName, position.Line, position.Slot),
	}
}

// SummariesFromModel keeps the image path only when withImage is set; the
// duplicate check does not return it.
func SummariesFromModel(bottles []*model.Bottle, withImage bool) []api.BottleSummary {
	summaries := make([]api.BottleSummary, 0, len(bottles))
	for _, bottle := range bottles {
		summary := SummaryFromModel(bottle)
		if !withImage {
			summary.ImagePath = nil
		}

		summaries = append(summaries, *summary)
	}

	return summaries
}

func SummaryFromModel(bottle *model.Bottle) *api.BottleSummary {
	if bottle == nil {
		return nil
	}

	return &api.BottleSummary{
		ID:        bottle.ID,
		Name:      bottle.Name,
		Year:      bottle.Year,
		Domaine:   bottle.Domaine,
		Quantity:  bottle.Quantity,
		ImagePath: bottle.ImagePath,
	}
}

func PositionFromModel(position model.Position) api.Position {
	return api.Position{
		ID:               position.ID,
		RowID:            position.RowID,
		Line:             position.Line,
		Position:         position.Slot,
		BottleID:         position.BottleID,
		BottleAtPosition: SummaryFromModel(position.Bottle),
	}
}

func PositionsFromModel(positions []*model.Position) []api.Position {
	result := make([]api.Position, 0, len(positions))
	for _, position := range positions {
		result = append(result, PositionFromModel(*position))
	}

	return result
}

func RowFromModel(row model.CaveRow) api.Row {
	positions := make([]api.Position, 0, len(row.Positions))
	for _, position := range row.Positions {
		positions = append(positions, PositionFromModel(position))
	}

	return api.Row{
		ID:             row.ID,
		ColumnID:       row.ColumnID,
		Name:           row.Name,
		Width:          row.Width,
		Height:         row.Height,
		Order:          row.Order,
		TotalPositions: row.TotalPositions(),
		Positions:      positions,
	}
}

func ColumnFromModel(column model.CaveColumn) api.Column {
	rows := make([]api.Row, 0, len(column.Rows))
	for _, row := range column.Rows {
		rows = append(rows, RowFromModel(row))
	}

	return api.Column{
		ID:     column.ID,
		CaveID: column.CaveID,
		Name:   column.Name,
		Order:  column.Order,
		Rows:   rows,
	}
}

func CaveFromModel(cave model.Cave) api.Cave {
	columns := make([]api.Column, 0, len(cave.Columns))
	for _, column := range cave.Columns {
		columns = append(columns, ColumnFromModel(column))
	}

	return api.Cave{ID: cave.ID, Name: cave.Name, Columns: columns}
}

func CavesFromModel(caves []*model.Cave) []api.Cave {
	result := make([]api.Cave, 0, len(caves))
	for _, cave := range caves {
		result = append(result, CaveFromModel(*cave))
	}

	return result
}

func RegionsFromModel(regions []*model.GeocodedRegion) []api.GeocodedRegion {
	result := make([]api.GeocodedRegion, 0, len(regions))
	for _, region := range regions {
		result = append(result, RegionFromModel(*region))
	}

	return result
}

func RegionFromModel(region model.GeocodedRegion) api.GeocodedRegion {
	return api.GeocodedRegion{ID: region.ID, Name: region.Name, Lat: region.Lat, Lon: region.Lon}
}
