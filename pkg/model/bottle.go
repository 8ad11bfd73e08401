package model

import (
	"gorm.io/gorm"
)

const (
	DefaultBottleSize     = "75cl"
	DefaultBottleQuantity = 1
)

type Bottle struct {
	gorm.Model
	Name        string `gorm:"not null;index"`
	Domaine     *string
	Country     *string
	Year        *int `gorm:"index"`
	Type        *string
	Region      *string
	Cepage      *string
	Alcohol     *float64
	Size        string
	ApogeeStart *int
	ApogeeEnd   *int
	BuyLink     *string
	Quantity    int `gorm:"not null"`
	Price       *float64
	Description *string
	Rating      *int
	Tags        *string
	IsFavorite  bool
	ImagePath   *string
}

// Replace overwrites every settable field with the values from other.
func (b *Bottle) Replace(other Bottle) {
	b.Name = other.Name
	b.Domaine = other.Domaine
	b.Country = other.Country
	b.Year = other.Year
	b.Type = other.Type
	b.Region = other.Region
	b.Cepage = other.Cepage
	b.Alcohol = other.Alcohol
	b.Size = other.Size
	b.ApogeeStart = other.ApogeeStart
	b.ApogeeEnd = other.ApogeeEnd
	b.BuyLink = other.BuyLink
	b.Quantity = other.Quantity
	b.Price = other.Price
	b.Description = other.Description
	b.Rating = other.Rating
	b.Tags = other.Tags
	b.IsFavorite = other.IsFavorite
	b.ImagePath = other.ImagePath
}

// BottlePatch holds the fields of a partial update. A nil field is left untouched.
type BottlePatch struct {
	Name        *string
	Domaine     *string
	Country     *string
	Year        *int
	Type        *string
	Region      *string
	Cepage      *string
	Alcohol     *float64
	Size        *string
	ApogeeStart *int
	ApogeeEnd   *int
	BuyLink     *string
	Quantity    *int
	Price       *float64
	Description *string
	Rating      *int
	Tags        *string
	IsFavorite  *bool
	ImagePath   *string
}

//nolint:cyclop,gocognit // one branch per field is the point
func (p BottlePatch) ApplyTo(b *Bottle) {
	if p.Name != nil {
		b.Name = *p.Name
	}

	if p.Domaine != nil {
		b.Domaine = p.Domaine
	}

	if p.Country != nil {
		b.Country = p.Country
	}

	if p.Year != nil {
		b.Year = p.Year
	}

	if p.Type != nil {
		b.Type = p.Type
	}

	if p.Region != nil {
		b.Region = p.Region
	}

	if p.Cepage != nil {
		b.Cepage = p.Cepage
	}

	if p.Alcohol != nil {
		b.Alcohol = p.Alcohol
	}

	if p.Size != nil {
		b.Size = *p.Size
	}

	if p.ApogeeStart != nil {
		b.ApogeeStart = p.ApogeeStart
	}

	if p.ApogeeEnd != nil {
		b.ApogeeEnd = p.ApogeeEnd
	}

	if p.BuyLink != nil {
		b.BuyLink = p.BuyLink
	}

	if p.Quantity != nil {
		b.Quantity = *p.Quantity
	}

	if p.Price != nil {
		b.Price = p.Price
	}

	if p.Description != nil {
		b.Description = p.Description
	}

	if p.Rating != nil {
		b.Rating = p.Rating
	}

	if p.Tags != nil {
		b.Tags = p.Tags
	}

	if p.IsFavorite != nil {
		b.IsFavorite = *p.IsFavorite
	}

	if p.ImagePath != nil {
		b.ImagePath = p.ImagePath
	}
}

// BottleWithPositions is a bottle and every slot that currently holds it.
type BottleWithPositions struct {
	Bottle    Bottle
	Positions []PlacedPosition
}
