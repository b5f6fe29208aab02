// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"pricewatch-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsConfig(err):
		return huma.Error500InternalServerError("Service is not configured", err)
	case errors.IsUpstream(err):
		return huma.Error500InternalServerError("Search provider request failed", err)
	case errors.IsDelivery(err):
		return huma.Error500InternalServerError("Report delivery failed", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
