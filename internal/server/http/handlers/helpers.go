package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

func writeMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

// writeError maps domain errors onto status codes and messages.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrImageRequired):
		writeMessage(c, http.StatusBadRequest, "Image required")
	case errors.Is(err, domainErrors.ErrImageTooLarge):
		writeMessage(c, http.StatusBadRequest, "Image too large")
	case errors.Is(err, domainErrors.ErrInvalidPrice):
		writeMessage(c, http.StatusBadRequest, "Invalid price")
	case errors.Is(err, domainErrors.ErrValidation):
		writeMessage(c, http.StatusBadRequest, "Invalid")
	case errors.Is(err, domainErrors.ErrNotFound):
		writeMessage(c, http.StatusNotFound, "Not found")
	case errors.Is(err, domainErrors.ErrUnauthorized):
		writeMessage(c, http.StatusUnauthorized, "Unauthorized")
	default:
		_ = c.Error(err)
		writeMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// readImage returns the uploaded file in field, or nil when none was sent.
func readImage(c *gin.Context, field string, maxSize int64) (*model.ImageUpload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domainErrors.ErrValidation, field, err)
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, domainErrors.ErrImageTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}

	return &model.ImageUpload{Filename: header.Filename, Data: data}, nil
}
