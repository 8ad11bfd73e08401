package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/server"
	"droscher.com/Pinarr/pkg/storage"
	"droscher.com/Pinarr/pkg/upload"
)

var pngImage = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, bytes.Repeat([]byte{0}, 32)...)

type UploadTestSuite struct {
	suite.Suite
	store  *storage.Memory
	engine *gin.Engine
}

func TestUploadTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTestSuite))
}

func (suite *UploadTestSuite) SetupTest() {
	logger, _ := observedLogger()

	conf := configs.Upload{MaxSizeMB: 1, PublicPrefix: "/uploads"}
	suite.store = storage.NewMemory()
	service := upload.NewService(suite.store, conf, logger)
	suite.engine = newEngine(server.NewUploadServer(service, conf.MaxSizeBytes(), logger).Register)
}

func (suite *UploadTestSuite) post(field string, filename string, contentType string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	return recorder
}

func (suite *UploadTestSuite) TestUploadImage() {
	response := suite.post("file", "label.PNG", "image/png", pngImage)
	suite.Require().Equal(http.StatusOK, response.Code)

	var stored upload.Stored
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &stored))
	suite.True(strings.HasSuffix(stored.Filename, ".png"))
	suite.Equal("/uploads/"+stored.Filename, stored.Path)

	content, contentType, ok := suite.store.Get(stored.Filename)
	suite.Require().True(ok)
	suite.Equal(pngImage, content)
	suite.Equal("image/png", contentType)
}

func (suite *UploadTestSuite) TestUploadImage_Rejected() {
	tests := map[string]struct {
		field       string
		filename    string
		contentType string
		content     []byte
		detail      string
	}{
		"wrong field":  {field: "image", filename: "a.png", contentType: "image/png", content: pngImage, detail: "no file provided"},
		"extension":    {field: "file", filename: "a.gif", contentType: "image/gif", content: pngImage, detail: "unsupported format"},
		"mime":         {field: "file", filename: "a.png", contentType: "text/plain", content: pngImage, detail: "invalid file type"},
		"not an image": {field: "file", filename: "a.png", contentType: "image/png", content: []byte("definitely not a png"), detail: "valid image"},
		"too large":    {field: "file", filename: "a.png", contentType: "image/png", content: bytes.Repeat([]byte{0}, 2<<20), detail: "file too large"},
		"too small":    {field: "file", filename: "a.png", contentType: "image/png", content: pngImage[:8], detail: "file too small"},
	}

	for name, test := range tests {
		suite.Run(name, func() {
			response := suite.post(test.field, test.filename, test.contentType, test.content)

			suite.Equal(http.StatusBadRequest, response.Code)
			suite.Contains(response.Body.String(), test.detail)
		})
	}
}

func (suite *UploadTestSuite) TestDeleteImage() {
	suite.Require().NoError(suite.store.Put(context.Background(), "a.png", pngImage, "image/png"))

	response := serve(suite.engine, http.MethodDelete, "/api/v1/upload/a.png", nil)
	suite.Equal(http.StatusOK, response.Code)

	_, _, ok := suite.store.Get("a.png")
	suite.False(ok)

	response = serve(suite.engine, http.MethodDelete, "/api/v1/upload/a.png", nil)
	suite.Equal(http.StatusNotFound, response.Code)
}

func (suite *UploadTestSuite) TestDeleteImage_Traversal() {
	response := serve(suite.engine, http.MethodDelete, "/api/v1/upload/..", nil)

	suite.Equal(http.StatusBadRequest, response.Code)
}
