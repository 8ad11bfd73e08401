package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

type Filesystem struct {
	root string
}

func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		root = "./uploads"
	}

	if err := os.MkdirAll(root, dirPermissions); err != nil {
		return nil, err
	}

	return &Filesystem{root: root}, nil
}

func (s *Filesystem) Driver() Driver { return DriverFilesystem }

func (s *Filesystem) Root() string { return s.root }

func (s *Filesystem) Put(_ context.Context, key string, content []byte, _ string) error {
	target, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(target), dirPermissions); err != nil {
		return err
	}

	return os.WriteFile(target, content, filePermissions)
}

func (s *Filesystem) Delete(_ context.Context, key string) (bool, error) {
	target, err := s.pathFor(key)
	if err != nil {
		return false, err
	}

	if err = os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (s *Filesystem) pathFor(key string) (string, error) {
	clean, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}

	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
