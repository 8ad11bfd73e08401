package model

import (
	"gorm.io/gorm"
)

const (
	DefaultRowWidth  = 6
	DefaultRowHeight = 4
)

type Cave struct {
	gorm.Model
	Name    string       `gorm:"not null"`
	Columns []CaveColumn `gorm:"foreignKey:CaveID"`
}

type CaveColumn struct {
	gorm.Model
	CaveID uint      `gorm:"not null;index"`
	Name   string    `gorm:"not null"`
	Order  int       `gorm:"column:sort_order;not null"`
	Rows   []CaveRow `gorm:"foreignKey:ColumnID"`
}

type CaveRow struct {
	gorm.Model
	ColumnID  uint       `gorm:"not null;index"`
	Name      string     `gorm:"not null"`
	Width     int        `gorm:"not null"`
	Height    int        `gorm:"not null"`
	Order     int        `gorm:"column:sort_order;not null"`
	Positions []Position `gorm:"foreignKey:RowID"`
}

func (r CaveRow) TotalPositions() int {
	return r.Width * r.Height
}

// Position is one slot of a row grid. Positions are regenerated rather than
// edited, so they are hard deleted.
type Position struct {
	ID       uint    `gorm:"primarykey"`
	RowID    uint    `gorm:"not null;uniqueIndex:idx_position_slot"`
	Line     int     `gorm:"not null;uniqueIndex:idx_position_slot"`
	Slot     int     `gorm:"column:position;not null;uniqueIndex:idx_position_slot"`
	BottleID *uint   `gorm:"index"`
	Bottle   *Bottle `gorm:"foreignKey:BottleID"`
}

// PlacedPosition is a position joined with the names of its row, column and cave.
type PlacedPosition struct {
	ID         uint
	BottleID   uint
	Line       int
	Slot       int
	RowID      uint
	RowName    string
	ColumnID   uint
	ColumnName string
	CaveID     uint
	CaveName   string
}
