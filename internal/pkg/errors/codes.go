package errors

import "net/http"

var (
	ErrInvalidBoundary = New(
		"INVALID_BOUNDARY",
		"Boundary must contain at least 3 points",
		http.StatusBadRequest,
	)

	ErrDegenerateBoundary = New(
		"DEGENERATE_BOUNDARY",
		"Boundary polygon has zero area",
		http.StatusBadRequest,
	)

	ErrInvalidGranularity = New(
		"INVALID_GRANULARITY",
		"Sector granularity must be 8, 16 or 32",
		http.StatusBadRequest,
	)

	ErrInvalidRotation = New(
		"INVALID_ROTATION",
		"Rotation offset must be a finite angle in degrees",
		http.StatusBadRequest,
	)

	ErrMissingAttribute = New(
		"MISSING_ATTRIBUTE_RECORD",
		"Attribute table does not cover all 8 main directions",
		http.StatusInternalServerError,
	)

	ErrUnknownModule = New(
		"UNKNOWN_MODULE",
		"Unknown analysis module",
		http.StatusNotFound,
	)

	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Analysis report not found",
		http.StatusNotFound,
	)

	ErrProjectNotFound = New(
		"PROJECT_NOT_FOUND",
		"Project not found",
		http.StatusNotFound,
	)

	ErrInvalidImage = New(
		"INVALID_IMAGE",
		"Uploaded file is not a supported floorplan image",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
