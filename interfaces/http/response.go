package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"mytube-channels/domain/apperror"
	"mytube-channels/domain/dto"
	"mytube-channels/infrastructure/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// maxPage keeps page*size inside int range on every platform.
	maxPage = 1 << 20
)

// respondError maps the error taxonomy onto HTTP statuses and renders the
// structured error body. Unexpected errors never leak their cause.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		logger.GetLogger().WithField("error", err).Error("Unclassified error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message:   "internal server error",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindInvalidInput:
		status = http.StatusBadRequest
	case apperror.KindConflict:
		status = http.StatusConflict
	case apperror.KindOperationNotAllowed:
		status = http.StatusForbidden
	case apperror.KindUnauthorizedAccess:
		status = http.StatusUnauthorized
	case apperror.KindDatabaseOperation:
		logger.GetLogger().WithField("error", appErr.Err).Error("Database operation failed")
	}
	c.JSON(status, dto.ErrorResponse{
		Message:   appErr.Message,
		Details:   appErr.Details,
		Timestamp: appErr.Timestamp,
	})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message:   "invalid id",
			Details:   c.Param("id"),
			Timestamp: time.Now().UTC(),
		})
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if page < 0 {
		page = 0
	} else if page > maxPage {
		page = maxPage
	}
	if size <= 0 {
		size = defaultPageSize
	} else if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
