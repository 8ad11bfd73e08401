package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/auth"
	"droscher.com/Pinarr/pkg/placement"
	"droscher.com/Pinarr/pkg/repository"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
	"droscher.com/Pinarr/pkg/upload"
)

const internalErrorDetail = "internal server error"

var ErrInvalidInput = errors.New("bad request")

var badRequestErrors = []error{
	ErrInvalidInput,
	placement.ErrInvalidDimensions,
	placement.ErrSlotOutOfRange,
	placement.ErrMaxQuantityReached,
	repository.ErrQuantityBelowPlacements,
	repository.ErrUsernameTaken,
	upload.ErrInvalidUpload,
	auth.ErrWrongPassword,
	auth.ErrInvalidPassword,
	auth.ErrInvalidUsername,
}

func statusFor(err error) int {
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// abortWithError writes the {"detail": ...} body for err. Unexpected errors
// are logged and hidden behind a generic message.
func abortWithError(c *gin.Context, logger *zap.Logger, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err))
		c.AbortWithStatusJSON(status, api.ErrorResponse{Detail: internalErrorDetail})

		return
	}

	c.AbortWithStatusJSON(status, api.ErrorResponse{Detail: err.Error()})
}

func idParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, name, c.Param(name))
	}

	return uint(id), nil
}

func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidInput, name, raw)
	}

	return value, nil
}

// pageFromQuery reads skip and limit, capping limit at the configured maximum.
func pageFromQuery(c *gin.Context, pagination configs.Pagination) (int, int, error) {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}

	limit, err := intQuery(c, "limit", pagination.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}

	if skip < 0 || limit < 1 {
		return 0, 0, fmt.Errorf("%w: skip must be >= 0 and limit >= 1", ErrInvalidInput)
	}

	return skip, min(limit, pagination.MaxPageSize), nil
}

func message(text string) api.Message {
	return api.Message{Message: text}
}
