package apperr

import "github.com/luciantraders/meesho-lister/pkg/zerror"

const (
	ValidationErrorCode = "VALIDATION_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	DraftNotFoundErr   = zerror.NewNotFound("DRAFT_NOT_FOUND", "draft not found")
	VariantNotFoundErr = zerror.NewNotFound("VARIANT_NOT_FOUND", "variant index out of range")

	NoVariantsErr  = zerror.NewUnprocessableEntity("EXPORT_NO_VARIANTS", "at least one variant is required to export")
	ImageLimitErr  = zerror.NewUnprocessableEntity("IMAGE_LIMIT_EXCEEDED", "a product can hold at most 5 images")
	ImageTypeErr   = zerror.NewUnprocessableEntity("IMAGE_TYPE_INVALID", "only JPEG and PNG images are accepted")
	TrendFilterErr = zerror.NewBadRequest("TREND_FILTER_EMPTY", "at least one platform and one category must be selected")
)
