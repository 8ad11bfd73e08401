package upload_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/storage"
	"droscher.com/Pinarr/pkg/upload"
)

var (
	jpeg = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 16)...)
	png  = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, bytes.Repeat([]byte{0}, 8)...)
	webp = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
)

type failingStore struct {
	storage.Store
}

func (failingStore) Put(context.Context, string, []byte, string) error {
	return errors.New("disk full")
}

func (failingStore) Driver() storage.Driver { return storage.DriverFilesystem }

type UploadTestSuite struct {
	suite.Suite
	store        *storage.Memory
	service      *upload.Service
	logger       *zap.Logger
	observedLogs *observer.ObservedLogs
}

func TestUploadTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTestSuite))
}

func (suite *UploadTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.logger = zap.New(observedZapCore)

	suite.store = storage.NewMemory()
	suite.service = upload.NewService(suite.store, configs.Upload{MaxSizeMB: 1, PublicPrefix: "/uploads/"}, suite.logger)
}

func (suite *UploadTestSuite) TestStore_AcceptsImages() {
	for _, tc := range []struct {
		filename string
		mime     string
		content  []byte
		ext      string
	}{
		{"label.JPG", "image/jpeg", jpeg, ".jpg"},
		{"label.jpeg", "image/jpeg", jpeg, ".jpeg"},
		{"label.png", "image/png", png, ".png"},
		{"label.webp", "image/webp", webp, ".webp"},
	} {
		stored, err := suite.service.Store(context.Background(), tc.content, tc.filename, tc.mime)
		suite.Require().NoError(err, tc.filename)

		suite.True(strings.HasSuffix(stored.Filename, tc.ext), stored.Filename)
		suite.Len(stored.Filename, 36+len(tc.ext))
		suite.Equal("/uploads/"+stored.Filename, stored.Path)

		content, contentType, found := suite.store.Get(stored.Filename)
		suite.True(found)
		suite.Equal(tc.content, content)
		suite.Equal(tc.mime, contentType)
	}

	suite.Equal(4, suite.observedLogs.FilterMessage("image uploaded").Len())
}

func (suite *UploadTestSuite) TestStore_GeneratesUniqueNames() {
	first, err := suite.service.Store(context.Background(), png, "a.png", "image/png")
	suite.Require().NoError(err)

	second, err := suite.service.Store(context.Background(), png, "a.png", "image/png")
	suite.Require().NoError(err)

	suite.NotEqual(first.Filename, second.Filename)
}

func (suite *UploadTestSuite) TestStore_Rejections() {
	for _, tc := range []struct {
		name     string
		filename string
		mime     string
		content  []byte
		message  string
	}{
		{"no file", "", "image/png", png, "invalid upload: no file provided"},
		{"extension", "label.gif", "image/gif", png, "invalid upload: unsupported format, accepted formats: .jpg, .jpeg, .png, .webp"},
		{"mime", "label.png", "text/plain", png, `invalid upload: invalid file type "text/plain"`},
		{"too large", "label.png", "image/png", append(append([]byte{}, png...), make([]byte, 1<<20)...), "invalid upload: file too large (1.0MB), maximum is 1MB"},
		{"too small", "label.png", "image/png", png[:11], "invalid upload: file too small"},
		{"signature", "label.png", "image/png", bytes.Repeat([]byte("x"), 20), "invalid upload: file does not contain a valid image"},
		{"riff without webp", "label.webp", "image/webp", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), "invalid upload: file does not contain a valid image"},
	} {
		stored, err := suite.service.Store(context.Background(), tc.content, tc.filename, tc.mime)

		suite.Nil(stored, tc.name)
		suite.Require().ErrorIs(err, upload.ErrInvalidUpload, tc.name)
		suite.EqualError(err, tc.message, tc.name)
	}
}

func (suite *UploadTestSuite) TestStore_StorageError() {
	service := upload.NewService(failingStore{}, configs.Upload{MaxSizeMB: 1, PublicPrefix: "/uploads"}, suite.logger)

	stored, err := service.Store(context.Background(), png, "a.png", "image/png")

	suite.Nil(stored)
	suite.Require().EqualError(err, "disk full")
	suite.NotErrorIs(err, upload.ErrInvalidUpload)
	suite.Equal(1, suite.observedLogs.FilterMessage("error storing upload").Len())
}

func (suite *UploadTestSuite) TestDelete() {
	stored, err := suite.service.Store(context.Background(), jpeg, "a.jpg", "image/jpeg")
	suite.Require().NoError(err)

	deleted, err := suite.service.Delete(context.Background(), stored.Filename)
	suite.Require().NoError(err)
	suite.True(deleted)

	deleted, err = suite.service.Delete(context.Background(), stored.Filename)
	suite.Require().NoError(err)
	suite.False(deleted)
}

func (suite *UploadTestSuite) TestDelete_RejectsTraversal() {
	for _, filename := range []string{"", "..", "../config.toml", "a/b.png", `..\b.png`, "/etc/passwd"} {
		deleted, err := suite.service.Delete(context.Background(), filename)

		suite.False(deleted, filename)
		suite.ErrorIs(err, upload.ErrInvalidUpload, filename)
	}
}
