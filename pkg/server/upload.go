package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
	"droscher.com/Pinarr/pkg/upload"
)

// multipart framing allowed on top of the image itself
const multipartOverhead = 64 << 10

type UploadServer struct {
	uploads *upload.Service
	maxBody int64
	logger  *zap.Logger
}

func NewUploadServer(uploads *upload.Service, maxSize int64, logger *zap.Logger) *UploadServer {
	return &UploadServer{uploads: uploads, maxBody: maxSize + multipartOverhead, logger: logger}
}

func (u *UploadServer) Register(group *gin.RouterGroup) {
	group.POST("/upload", u.UploadImage)
	group.DELETE("/upload/:filename", u.DeleteImage)
}

func (u *UploadServer) UploadImage(c *gin.Context) {
	if c.Request.ContentLength > u.maxBody {
		abortWithError(c, u.logger, fmt.Errorf("%w: file too large", upload.ErrInvalidUpload))

		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBody)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, u.logger, fmt.Errorf("%w: file too large", upload.ErrInvalidUpload))

			return
		}

		abortWithError(c, u.logger, fmt.Errorf("%w: no file provided", upload.ErrInvalidUpload))

		return
	}

	file, err := header.Open()
	if err != nil {
		abortWithError(c, u.logger, err)

		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	stored, err := u.uploads.Store(c.Request.Context(), content, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	c.JSON(http.StatusOK, stored)
}

func (u *UploadServer) DeleteImage(c *gin.Context) {
	deleted, err := u.uploads.Delete(c.Request.Context(), c.Param("filename"))
	if err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	if !deleted {
		c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Detail: "file not found"})

		return
	}

	c.JSON(http.StatusOK, message("Image deleted"))
}
