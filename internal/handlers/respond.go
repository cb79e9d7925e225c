package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vidverse/vidverse_backend/internal/apperrors"
	"github.com/vidverse/vidverse_backend/internal/middleware"
)

// APIResponse is the success envelope every endpoint responds with.
// StatusCode mirrors the application-level code, which is not always the
// HTTP status (registration answers HTTP 201 with statusCode 200).
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func newAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	}
}

// APIErrorResponse is the error envelope. Errors carries field-level
// detail when binding produced any.
type APIErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors,omitempty"`
}

// respondError translates an error into the JSON error envelope. Tagged
// APIErrors keep their status and message; anything else is a 500 with
// a generic message, logged with the real cause.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()))
		}
		c.JSON(apiErr.Status, APIErrorResponse{
			StatusCode: apiErr.Status,
			Message:    apiErr.Message,
			Success:    false,
		})
		return
	}

	logger.Error("Unhandled error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, APIErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
		Success:    false,
	})
}

// respondBindingError answers 400 for malformed request bodies, with
// validator field errors unwrapped into the detail list.
func respondBindingError(c *gin.Context, err error) {
	var details []string
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			details = append(details, fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()))
		}
	}
	c.JSON(http.StatusBadRequest, APIErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body",
		Success:    false,
		Errors:     details,
	})
}
