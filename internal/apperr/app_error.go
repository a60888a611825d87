package apperr

import "github.com/angularstore/catalog/pkg/zerror"

var (
	ErrProductNotFound = zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	ErrNameRequired       = zerror.NewValidationFailed("PRODUCT_NAME_REQUIRED", "name is required")
	ErrNameTooLong        = zerror.NewValidationFailed("PRODUCT_NAME_TOO_LONG", "name must be at most 100 characters")
	ErrDescriptionTooLong = zerror.NewValidationFailed("PRODUCT_DESCRIPTION_TOO_LONG", "description must be at most 500 characters")
	ErrPriceNotPositive   = zerror.NewValidationFailed("PRODUCT_PRICE_NOT_POSITIVE", "price must be greater than zero")
	ErrNegativeStock      = zerror.NewValidationFailed("PRODUCT_STOCK_NEGATIVE", "stock cannot be negative")
)
