// Package storage keeps uploaded bottle images on the local disk, in an
// S3 compatible bucket or in memory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"droscher.com/Pinarr/configs"
)

type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
	DriverMemory     Driver = "memory"
)

var (
	ErrInvalidKey        = errors.New("invalid storage key")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

type Store interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
	// Delete reports whether the key existed, when the backend can tell.
	Delete(ctx context.Context, key string) (bool, error)
	Driver() Driver
}

func Open(ctx context.Context, conf configs.Upload) (Store, error) {
	switch Driver(conf.Driver) {
	case DriverFilesystem:
		return NewFilesystem(conf.Dir)
	case DriverS3:
		return NewS3(ctx, conf.S3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, conf.Driver)
	}
}

// sanitizeKey rejects keys that are empty, absolute or that climb out of the store root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if strings.Contains(key, "..") || strings.ContainsRune(key, '\\') {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: absolute key %q", ErrInvalidKey, key)
	}

	return path.Clean(key), nil
}
