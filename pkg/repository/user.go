package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Pinarr/pkg/model"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	AddUser(ctx context.Context, username string, passwordHash string, isAdmin bool) (*model.User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) (*model.User, error)
	RenameUser(ctx context.Context, userID uint, username string) (*model.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	if result := r.DB.WithContext(ctx).First(&user, userID); result.Error != nil {
		return nil, notFound(result.Error, ErrUserNotFound)
	}

	return &user, nil
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	if result := r.DB.WithContext(ctx).Where("username = ?", username).First(&user); result.Error != nil {
		return nil, notFound(result.Error, ErrUserNotFound)
	}

	return &user, nil
}

func (r *Repository) AddUser(ctx context.Context, username string, passwordHash string, isAdmin bool) (*model.User, error) {
	user := model.User{
		Username:       username,
		PasswordHash:   passwordHash,
		IsAdmin:        isAdmin,
		SessionVersion: 1,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUsernameFree(tx, username, 0); err != nil {
			return err
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	r.Logger.Info("user created", zap.Uint("user_id", user.ID), zap.String("username", username), zap.Bool("admin", isAdmin))

	return &user, nil
}

// UpdatePassword stores the new hash and bumps the session version, which
// invalidates every session token issued before.
func (r *Repository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) (*model.User, error) {
	var user model.User

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return notFound(err, ErrUserNotFound)
		}

		user.PasswordHash = passwordHash
		user.SessionVersion++

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) RenameUser(ctx context.Context, userID uint, username string) (*model.User, error) {
	var user model.User

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return notFound(err, ErrUserNotFound)
		}

		if err := ensureUsernameFree(tx, username, userID); err != nil {
			return err
		}

		user.Username = username

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) HasAdmin(ctx context.Context) (bool, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Where("is_admin = ?", true).Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func ensureUsernameFree(tx *gorm.DB, username string, exceptUserID uint) error {
	var count int64

	if err := tx.Model(&model.User{}).Where("username = ? AND id <> ?", username, exceptUserID).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return fmt.Errorf("%w: %s", ErrUsernameTaken, username)
	}

	return nil
}
