package model

import (
	"gorm.io/gorm"
)

type GeocodedRegion struct {
	gorm.Model
	Name string  `gorm:"uniqueIndex;not null"`
	Lat  float64 `gorm:"not null"`
	Lon  float64 `gorm:"not null"`
}
