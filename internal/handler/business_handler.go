package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eagleinfoservice/directory-api/internal/dto"
	"github.com/eagleinfoservice/directory-api/internal/repository"
	"github.com/eagleinfoservice/directory-api/internal/service"
)

// BusinessHandler exposes business directory lookup endpoints.
type BusinessHandler struct {
	service *service.BusinessesService
}

// NewBusinessHandler creates a new handler instance.
func NewBusinessHandler(service *service.BusinessesService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// ByDomain handles GET /business/by-domain requests.
func (h *BusinessHandler) ByDomain(c echo.Context) error {
	domain := strings.TrimSpace(c.QueryParam("domain"))
	if domain == "" {
		return Error(c, http.StatusBadRequest, "domain query parameter is required")
	}

	businesses, err := h.service.LookupByDomain(c.Request().Context(), domain)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to lookup businesses by domain")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

// ByLinkedIn handles GET /business/by-linkedin requests.
func (h *BusinessHandler) ByLinkedIn(c echo.Context) error {
	link := strings.TrimSpace(c.QueryParam("linkedin"))
	if link == "" {
		return Error(c, http.StatusBadRequest, "linkedin query parameter is required")
	}

	businesses, err := h.service.LookupByLinkedIn(c.Request().Context(), link)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to lookup businesses by linkedin")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

// ByPlaceID handles GET /business/by-place-id requests.
func (h *BusinessHandler) ByPlaceID(c echo.Context) error {
	placeID := strings.TrimSpace(c.QueryParam("place_id"))
	if placeID == "" {
		return Error(c, http.StatusBadRequest, "place_id query parameter is required")
	}

	business, err := h.service.LookupByPlaceID(c.Request().Context(), placeID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return Error(c, http.StatusNotFound, "business not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to lookup business by place id")
	}

	return Success(c, http.StatusOK, "business retrieved", business)
}

// ByEmail handles GET /business/by-email requests.
func (h *BusinessHandler) ByEmail(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return Error(c, http.StatusBadRequest, "email query parameter is required")
	}

	businesses, err := h.service.LookupByEmail(c.Request().Context(), email)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to lookup businesses by email")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

// ByEmailBatch handles POST /business/by-email/batch requests.
func (h *BusinessHandler) ByEmailBatch(c echo.Context) error {
	var payload dto.BatchEmailRequest
	if err := c.Bind(&payload); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	businesses, err := h.service.LookupByEmailBatch(c.Request().Context(), payload.Emails)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to lookup businesses by email batch")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

// ByGoogleID handles GET /business/by-google-id requests.
func (h *BusinessHandler) ByGoogleID(c echo.Context) error {
	googleID := strings.TrimSpace(c.QueryParam("google_id"))
	if googleID == "" {
		return Error(c, http.StatusBadRequest, "google_id query parameter is required")
	}

	businesses, err := h.service.LookupByGoogleID(c.Request().Context(), googleID)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to lookup businesses by google id")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

// ByPhone handles GET /business/by-phone requests.
func (h *BusinessHandler) ByPhone(c echo.Context) error {
	phone := strings.TrimSpace(c.QueryParam("phone"))
	if phone == "" {
		return Error(c, http.StatusBadRequest, "phone query parameter is required")
	}

	businesses, err := h.service.LookupByPhone(c.Request().Context(), phone)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to lookup businesses by phone")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

// EnrichedContacts handles GET /business/contacts/enriched requests.
func (h *BusinessHandler) EnrichedContacts(c echo.Context) error {
	limit := parseIntDefault(c.QueryParam("limit"), 100)
	offset := parseIntDefault(c.QueryParam("offset"), 0)

	businesses, err := h.service.ListEnrichedContacts(c.Request().Context(), limit, offset)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list enriched contacts")
	}

	return Success(c, http.StatusOK, "businesses retrieved", NewBusinessList(businesses))
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
