package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("not found")

	ErrBottleNotFound   = fmt.Errorf("bottle %w", ErrNotFound)
	ErrCaveNotFound     = fmt.Errorf("cave %w", ErrNotFound)
	ErrColumnNotFound   = fmt.Errorf("column %w", ErrNotFound)
	ErrRowNotFound      = fmt.Errorf("row %w", ErrNotFound)
	ErrPositionNotFound = fmt.Errorf("position %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	ErrQuantityBelowPlacements = errors.New("quantity is lower than the number of placed bottles")
	ErrUsernameTaken           = errors.New("username already taken")
)

// notFound swaps gorm's record-not-found for the given domain error.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}

	return err
}
