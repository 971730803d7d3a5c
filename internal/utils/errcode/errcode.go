package errcode

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// Authentication Errors
	ErrAuthorizationHeader  = errors.New("authorization header is required")
	ErrBearerHeader         = errors.New("authorization header must use the Bearer scheme")
	ErrAccessTokenMissing   = errors.New("access token is required")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenIsExpired       = errors.New("token is expired")
	ErrUnexpectedSignMethod = errors.New("unexpected token signing method")

	// Authorization Errors
	ErrForbidden = errors.New("user lacks a required permission")

	// User Errors
	ErrUserNotFound = errors.New("user not found")

	// Write Errors
	ErrDuplicateValue = errors.New("duplicate value violates a unique constraint")
	ErrInvalidUserID  = errors.New("id must be a valid uuid")
	ErrBadRequest     = errors.New("bad request")

	// Common Errors
	ErrInternalServerError = errors.New("unexpected error, check server logs")
)

// errorStatusMap maps application errors to their respective HTTP status codes
var errorStatusMap = map[error]int{
	// 401 Unauthorized Errors
	ErrAuthorizationHeader:  fiber.StatusUnauthorized,
	ErrBearerHeader:         fiber.StatusUnauthorized,
	ErrAccessTokenMissing:   fiber.StatusUnauthorized,
	ErrInvalidToken:         fiber.StatusUnauthorized,
	ErrTokenIsExpired:       fiber.StatusUnauthorized,
	ErrUnexpectedSignMethod: fiber.StatusUnauthorized,

	// 403 Forbidden Errors
	ErrForbidden: fiber.StatusForbidden,

	// 404 Not Found Errors
	ErrUserNotFound: fiber.StatusNotFound,

	// 400 Bad Request Errors
	ErrDuplicateValue: fiber.StatusBadRequest,
	ErrInvalidUserID:  fiber.StatusBadRequest,
	ErrBadRequest:     fiber.StatusBadRequest,

	// 500 Internal Server Errors
	ErrInternalServerError: fiber.StatusInternalServerError,
}

// GetHTTPStatus retrieves the HTTP status code for a given error.
func GetHTTPStatus(err error) (int, bool) {
	statusCode, exists := errorStatusMap[err]
	return statusCode, exists
}
