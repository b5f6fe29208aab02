package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "threshold", Message: "price threshold must be an integer"},
			expectedStatus: 400,
			expectedDetail: "validation error on field 'threshold': price threshold must be an integer",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("context: %w", &errors.ValidationError{Field: "link", Message: "required"}),
			expectedStatus: 400,
			expectedDetail: "context: validation error on field 'link': required",
		},
		{
			name:           "ConfigError returns 500",
			input:          &errors.ConfigError{Key: "NAVER_CLIENT_ID"},
			expectedStatus: 500,
			expectedDetail: "Service is not configured",
		},
		{
			name:           "UpstreamError returns 500",
			input:          &errors.UpstreamError{API: "naver", StatusCode: 401, Page: 1},
			expectedStatus: 500,
			expectedDetail: "Search provider request failed",
		},
		{
			name:           "DeliveryError returns 500",
			input:          &errors.DeliveryError{StatusCode: 404},
			expectedStatus: 500,
			expectedDetail: "Report delivery failed",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Equal(t, tt.expectedDetail, humaErr.Detail)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}
