package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avibiton/waltz/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrEmptySelector),
		errors.Is(err, domain.ErrMissingCondition),
		errors.Is(err, domain.ErrInvalidFlowID),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidEntityKind),
		errors.Is(err, domain.ErrInvalidLifecycleStatus),
		errors.Is(err, domain.ErrInvalidFlowDirection),
		errors.Is(err, domain.ErrEmptyRecipients):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
