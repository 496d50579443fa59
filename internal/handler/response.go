package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eagleinfoservice/directory-api/internal/entity"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// BusinessList is the payload for lookups that may match multiple records.
type BusinessList struct {
	Count      int               `json:"count"`
	Businesses []entity.Business `json:"businesses"`
}

// NewBusinessList wraps lookup results, rendering no matches as an empty
// array rather than null.
func NewBusinessList(businesses []entity.Business) BusinessList {
	if businesses == nil {
		businesses = []entity.Business{}
	}
	return BusinessList{Count: len(businesses), Businesses: businesses}
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}
