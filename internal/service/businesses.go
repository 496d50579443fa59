package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eagleinfoservice/directory-api/internal/entity"
	"github.com/eagleinfoservice/directory-api/internal/metrics"
	"github.com/eagleinfoservice/directory-api/internal/normalize"
	"github.com/eagleinfoservice/directory-api/internal/repository"
)

const (
	maxBatchEmails     = 100
	defaultPageSize    = 100
	maxPageSize        = 1000
	defaultPhoneRegion = "US"
)

// Outcome labels reported per lookup.
const (
	outcomeOK       = "ok"
	outcomeEmpty    = "empty"
	outcomeInvalid  = "invalid_key"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// ValidationError indicates a request the caller must correct.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// BusinessesService normalizes raw lookup keys and dispatches them to the
// repository. Keys that fail normalization never reach storage: multi-row
// lookups come back empty, the place-ID lookup reports not found.
type BusinessesService struct {
	repo        repository.BusinessesRepository
	phoneRegion string
	metrics     *metrics.Metrics
}

// NewBusinessesService creates a new instance of BusinessesService. The
// region is used for phone numbers written without a country prefix; m may
// be nil to disable instrumentation.
func NewBusinessesService(repo repository.BusinessesRepository, phoneRegion string, m *metrics.Metrics) *BusinessesService {
	region := strings.ToUpper(strings.TrimSpace(phoneRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &BusinessesService{repo: repo, phoneRegion: region, metrics: m}
}

// LookupByDomain returns businesses whose stored site matches the domain.
func (s *BusinessesService) LookupByDomain(ctx context.Context, rawDomain string) ([]entity.Business, error) {
	start := time.Now()
	domain, ok := normalize.Domain(rawDomain)
	if !ok {
		s.metrics.ObserveLookup("domain", outcomeInvalid, time.Since(start))
		return nil, nil
	}
	businesses, err := s.repo.FindByDomain(ctx, domain)
	s.metrics.ObserveLookup("domain", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

// LookupByLinkedIn returns businesses whose LinkedIn profile matches.
func (s *BusinessesService) LookupByLinkedIn(ctx context.Context, rawURL string) ([]entity.Business, error) {
	start := time.Now()
	link, ok := normalize.LinkedIn(rawURL)
	if !ok {
		s.metrics.ObserveLookup("linkedin", outcomeInvalid, time.Since(start))
		return nil, nil
	}
	businesses, err := s.repo.FindByLinkedIn(ctx, link)
	s.metrics.ObserveLookup("linkedin", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

// LookupByPlaceID returns the single business carrying the Google place ID.
// An unusable key is reported the same way as a missing row.
func (s *BusinessesService) LookupByPlaceID(ctx context.Context, rawPlaceID string) (*entity.Business, error) {
	start := time.Now()
	placeID, ok := normalize.PlaceID(rawPlaceID)
	if !ok {
		s.metrics.ObserveLookup("place_id", outcomeInvalid, time.Since(start))
		return nil, repository.ErrBusinessNotFound
	}
	business, err := s.repo.FindByPlaceID(ctx, placeID)
	switch {
	case errors.Is(err, repository.ErrBusinessNotFound):
		s.metrics.ObserveLookup("place_id", outcomeNotFound, time.Since(start))
	case err != nil:
		s.metrics.ObserveLookup("place_id", outcomeError, time.Since(start))
	default:
		s.metrics.ObserveLookup("place_id", outcomeOK, time.Since(start))
	}
	return business, err
}

// LookupByEmail returns businesses holding the email in any contact slot.
func (s *BusinessesService) LookupByEmail(ctx context.Context, rawEmail string) ([]entity.Business, error) {
	start := time.Now()
	email, ok := normalize.Email(rawEmail)
	if !ok {
		s.metrics.ObserveLookup("email", outcomeInvalid, time.Since(start))
		return nil, nil
	}
	businesses, err := s.repo.FindByEmail(ctx, email)
	s.metrics.ObserveLookup("email", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

// LookupByEmailBatch resolves up to maxBatchEmails addresses in one storage
// round trip. Entries that fail normalization are dropped; if none survive,
// the result is empty and storage is never queried.
func (s *BusinessesService) LookupByEmailBatch(ctx context.Context, rawEmails []string) ([]entity.Business, error) {
	start := time.Now()
	if len(rawEmails) == 0 {
		s.metrics.ObserveLookup("email_batch", outcomeInvalid, time.Since(start))
		return nil, ValidationError{Message: "emails must contain at least 1 entry"}
	}
	if len(rawEmails) > maxBatchEmails {
		s.metrics.ObserveLookup("email_batch", outcomeInvalid, time.Since(start))
		return nil, ValidationError{Message: fmt.Sprintf("emails must contain at most %d entries", maxBatchEmails)}
	}

	emails := make([]string, 0, len(rawEmails))
	for _, raw := range rawEmails {
		if email, ok := normalize.Email(raw); ok {
			emails = append(emails, email)
		}
	}
	if len(emails) == 0 {
		s.metrics.ObserveLookup("email_batch", outcomeInvalid, time.Since(start))
		return nil, nil
	}

	businesses, err := s.repo.FindByEmails(ctx, emails)
	s.metrics.ObserveLookup("email_batch", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

// LookupByGoogleID returns businesses matching a Google identifier against
// the google_id, cid and kgmid columns.
func (s *BusinessesService) LookupByGoogleID(ctx context.Context, rawGoogleID string) ([]entity.Business, error) {
	start := time.Now()
	googleID, ok := normalize.GoogleID(rawGoogleID)
	if !ok {
		s.metrics.ObserveLookup("google_id", outcomeInvalid, time.Since(start))
		return nil, nil
	}
	businesses, err := s.repo.FindByGoogleID(ctx, googleID)
	s.metrics.ObserveLookup("google_id", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

// LookupByPhone returns businesses whose phone columns hold the number in E.164.
func (s *BusinessesService) LookupByPhone(ctx context.Context, rawPhone string) ([]entity.Business, error) {
	start := time.Now()
	phone, ok := normalize.Phone(rawPhone, s.phoneRegion)
	if !ok {
		s.metrics.ObserveLookup("phone", outcomeInvalid, time.Since(start))
		return nil, nil
	}
	businesses, err := s.repo.FindByPhone(ctx, phone)
	s.metrics.ObserveLookup("phone", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

// ListEnrichedContacts pages through businesses that carry contact emails,
// clamping the page bounds rather than rejecting them.
func (s *BusinessesService) ListEnrichedContacts(ctx context.Context, limit, offset int) ([]entity.Business, error) {
	start := time.Now()
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	businesses, err := s.repo.ListEnrichedContacts(ctx, limit, offset)
	s.metrics.ObserveLookup("enriched_contacts", listOutcome(businesses, err), time.Since(start))
	return businesses, err
}

func listOutcome(businesses []entity.Business, err error) string {
	switch {
	case err != nil:
		return outcomeError
	case len(businesses) == 0:
		return outcomeEmpty
	default:
		return outcomeOK
	}
}
