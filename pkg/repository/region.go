package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/Pinarr/pkg/model"
)

type RegionRepository interface {
	ListRegions(ctx context.Context) ([]*model.GeocodedRegion, error)
	GetOrCreateRegion(ctx context.Context, name string, lat float64, lon float64) (*model.GeocodedRegion, error)
}

func (r *Repository) ListRegions(ctx context.Context) ([]*model.GeocodedRegion, error) {
	var regions []*model.GeocodedRegion

	if result := r.DB.WithContext(ctx).Order("name").Find(&regions); result.Error != nil {
		return nil, result.Error
	}

	return regions, nil
}

// GetOrCreateRegion returns the region stored under name. Coordinates are only
// used when the region does not exist yet.
func (r *Repository) GetOrCreateRegion(ctx context.Context, name string, lat float64, lon float64) (*model.GeocodedRegion, error) {
	region := model.GeocodedRegion{Name: name, Lat: lat, Lon: lon}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&region); result.Error != nil {
		return nil, result.Error
	}

	if region.ID == 0 {
		region = model.GeocodedRegion{}
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&region); result.Error != nil {
			return nil, result.Error
		}
	}

	return &region, nil
}
