// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ateliermarket/storefront-backend/internal/services"
	"github.com/ateliermarket/storefront-backend/internal/utils"
)

// respondWriteError maps errors from write operations to transport status.
// Validation, image and currency problems are the client's to fix; anything
// else is logged and returned as a generic 500.
func respondWriteError(c *gin.Context, err error) {
	var validationErr *services.ValidationFailedError
	var imageErr *services.InvalidImageError
	var conversionErr *services.ConversionError

	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "Product not found")
	case errors.As(err, &validationErr):
		utils.BadRequestResponse(c, "Invalid product data", validationErr.Fields)
	case errors.As(err, &imageErr):
		utils.BadRequestResponse(c, "Invalid product images", imageErr.Entries)
	case errors.As(err, &conversionErr):
		utils.BadRequestResponse(c, conversionErr.Error(), nil)
	default:
		logrus.WithError(err).Error("Product write failed")
		utils.InternalErrorResponse(c, "")
	}
}
