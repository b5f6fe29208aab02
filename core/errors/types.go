// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents missing or malformed caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ConfigError represents a required configuration value that is not set
type ConfigError struct {
	Key string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Key)
}

// UpstreamError represents a failed call to the upstream search provider.
// StatusCode is 0 when the request never produced an HTTP response.
type UpstreamError struct {
	API        string
	StatusCode int
	Page       int
	Err        error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream error from %s (page %d): %v", e.API, e.Page, e.Err)
	}
	return fmt.Sprintf("upstream error from %s (page %d): status %d", e.API, e.Page, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DeliveryError represents a failed outbound notification
type DeliveryError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("notification delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("notification delivery failed: status %d", e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfig checks if an error is a ConfigError
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
