package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"patchbay/internal/shared/constants"
	"patchbay/internal/shared/errors"
)

// ParseUintParam parses a numeric URL path parameter. entityName is used in
// error messages (e.g. "rack", "cable").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseBoolQuery parses an optional boolean query parameter, returning
// defaultValue when absent or unparseable.
func ParseBoolQuery(c *gin.Context, name string, defaultValue bool) bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParsePagination extracts page and page_size query parameters with bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
