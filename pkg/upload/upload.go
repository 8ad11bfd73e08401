package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/storage"
)

const minImageSize = 12

var ErrInvalidUpload = errors.New("invalid upload")

var (
	allowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	allowedMimeTypes  = []string{"image/jpeg", "image/png", "image/webp"}

	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngSignature  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
)

// Stored describes an image that was accepted and written to the store.
type Stored struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type Service struct {
	store        storage.Store
	maxSize      int64
	publicPrefix string
	logger       *zap.Logger
}

func NewService(store storage.Store, conf configs.Upload, logger *zap.Logger) *Service {
	return &Service{
		store:        store,
		maxSize:      conf.MaxSizeBytes(),
		publicPrefix: strings.TrimSuffix(conf.PublicPrefix, "/"),
		logger:       logger,
	}
}

// Store validates an uploaded image and saves it under a generated name that
// keeps the original extension.
func (s *Service) Store(ctx context.Context, content []byte, filename string, mimeType string) (*Stored, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: no file provided", ErrInvalidUpload)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(allowedExtensions, ext) {
		return nil, fmt.Errorf("%w: unsupported format, accepted formats: %s", ErrInvalidUpload, strings.Join(allowedExtensions, ", "))
	}

	if !slices.Contains(allowedMimeTypes, mimeType) {
		return nil, fmt.Errorf("%w: invalid file type %q", ErrInvalidUpload, mimeType)
	}

	if int64(len(content)) > s.maxSize {
		return nil, fmt.Errorf("%w: file too large (%.1fMB), maximum is %dMB", ErrInvalidUpload,
			float64(len(content))/(1<<20), s.maxSize>>20)
	}

	if err := validateSignature(content); err != nil {
		return nil, err
	}

	stored := Stored{Filename: uuid.New().String() + ext}
	stored.Path = s.publicPrefix + "/" + stored.Filename

	if err := s.store.Put(ctx, stored.Filename, content, mimeType); err != nil {
		s.logger.Error("error storing upload", zap.String("filename", stored.Filename), zap.Error(err))

		return nil, err
	}

	s.logger.Info("image uploaded", zap.String("filename", stored.Filename), zap.Int("size", len(content)),
		zap.String("driver", string(s.store.Driver())))

	return &stored, nil
}

// Delete removes a stored image. Names that are not a plain file name are
// rejected and reported as not deleted.
func (s *Service) Delete(ctx context.Context, filename string) (bool, error) {
	if filename == "" || path.Base(filename) != filename || strings.ContainsAny(filename, `\`) || filename == ".." {
		return false, fmt.Errorf("%w: invalid file name %q", ErrInvalidUpload, filename)
	}

	deleted, err := s.store.Delete(ctx, filename)
	if errors.Is(err, storage.ErrInvalidKey) {
		return false, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}

	if err != nil {
		s.logger.Error("error deleting upload", zap.String("filename", filename), zap.Error(err))

		return false, err
	}

	return deleted, nil
}

func validateSignature(content []byte) error {
	if len(content) < minImageSize {
		return fmt.Errorf("%w: file too small", ErrInvalidUpload)
	}

	switch {
	case bytes.HasPrefix(content, jpegSignature),
		bytes.HasPrefix(content, pngSignature),
		string(content[:4]) == "RIFF" && string(content[8:12]) == "WEBP":
		return nil
	}

	return fmt.Errorf("%w: file does not contain a valid image", ErrInvalidUpload)
}
