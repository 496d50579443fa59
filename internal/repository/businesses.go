package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eagleinfoservice/directory-api/internal/entity"
)

var (
	// ErrBusinessNotFound indicates the queried business does not exist.
	ErrBusinessNotFound = errors.New("business not found")
)

// pgxPool is the subset of *pgxpool.Pool the repository uses. pgxmock's
// pool implements it too, which keeps the SQL paths testable.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// businessColumns is the full projection of the businesses table, in the
// order businessScanDests expects. CheckSchema verifies it against the
// live table at startup.
var businessColumns = []string{
	"id", "query", "name", "name_for_emails", "site", "subtypes", "category", "type",
	"phone", "phone_1", "phone_2", "phone_3",
	"full_address", "borough", "street", "city", "postal_code", "state", "us_state",
	"country", "country_code", "latitude", "longitude", "h3", "time_zone", "plus_code",
	"area_service",
	"rating", "reviews", "reviews_link", "reviews_tags", "reviews_per_score",
	"reviews_per_score_1", "reviews_per_score_2", "reviews_per_score_3",
	"reviews_per_score_4", "reviews_per_score_5", "reviews_id",
	"photos_count", "photo", "street_view", "logo", "located_in",
	"working_hours", "working_hours_csv_compatible", "working_hours_old_format",
	"other_hours", "popular_times",
	"business_status", "about", "range", "prices", "posts", "description",
	"typical_time_spent", "verified",
	"owner_id", "owner_title", "owner_link",
	"reservation_links", "booking_appointment_link", "menu_link", "order_links",
	"location_link", "location_reviews_link",
	"place_id", "google_id", "cid", "kgmid", "located_google_id",
	"email_1", "email_1_full_name", "email_1_first_name", "email_1_last_name",
	"email_1_title", "email_1_phone",
	"email_2", "email_2_full_name", "email_2_first_name", "email_2_last_name",
	"email_2_title", "email_2_phone",
	"email_3", "email_3_full_name", "email_3_first_name", "email_3_last_name",
	"email_3_title", "email_3_phone",
	"facebook", "instagram", "linkedin", "tiktok", "medium", "reddit", "skype",
	"snapchat", "telegram", "whatsapp", "twitter", "vimeo", "youtube", "github",
	"crunchbase",
	"website_title", "website_generator", "website_description", "website_keywords",
	"website_has_fb_pixel", "website_has_google_tag",
	"source_file", "import_date",
}

var baseSelectSQL = "SELECT " + strings.Join(businessColumns, ", ") + " FROM businesses"

// Lookup statements. database.Connect prepares each of these on every new
// pooled connection under its own text as the statement name, so the
// strings below execute against already-parsed plans.
var (
	findByDomainSQL   = baseSelectSQL + " WHERE site ILIKE $1 OR site ILIKE $2 LIMIT 100"
	findByLinkedInSQL = baseSelectSQL + " WHERE linkedin ILIKE $1 LIMIT 100"
	findByPlaceIDSQL  = baseSelectSQL + " WHERE place_id = $1 LIMIT 1"
	findByEmailSQL    = baseSelectSQL + " WHERE email_1 = $1 OR email_2 = $1 OR email_3 = $1 LIMIT 100"
	findByGoogleIDSQL = baseSelectSQL + " WHERE google_id = $1 OR cid = $1 OR kgmid = $1 LIMIT 100"
	findByEmailsSQL   = baseSelectSQL + " WHERE email_1 = ANY($1::text[]) OR email_2 = ANY($1::text[]) OR email_3 = ANY($1::text[]) LIMIT 1000"
	findByPhoneSQL    = baseSelectSQL + " WHERE phone = $1 OR phone_1 = $1 OR phone_2 = $1 OR phone_3 = $1 LIMIT 100"
	enrichedSQL       = baseSelectSQL + " WHERE email_1 IS NOT NULL ORDER BY id LIMIT $1 OFFSET $2"
)

const schemaColumnsSQL = "SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = 'businesses'"

// PreparedStatements lists every lookup statement for connection warm-up.
func PreparedStatements() []string {
	return []string{
		findByDomainSQL,
		findByLinkedInSQL,
		findByPlaceIDSQL,
		findByEmailSQL,
		findByGoogleIDSQL,
		findByEmailsSQL,
		findByPhoneSQL,
		enrichedSQL,
	}
}

// BusinessesRepository defines read operations over the businesses table.
// All inputs are expected to be canonical already; no normalization happens
// at this layer.
type BusinessesRepository interface {
	FindByDomain(ctx context.Context, domain string) ([]entity.Business, error)
	FindByLinkedIn(ctx context.Context, linkedin string) ([]entity.Business, error)
	FindByPlaceID(ctx context.Context, placeID string) (*entity.Business, error)
	FindByEmail(ctx context.Context, email string) ([]entity.Business, error)
	FindByEmails(ctx context.Context, emails []string) ([]entity.Business, error)
	FindByGoogleID(ctx context.Context, googleID string) ([]entity.Business, error)
	FindByPhone(ctx context.Context, phone string) ([]entity.Business, error)
	ListEnrichedContacts(ctx context.Context, limit, offset int) ([]entity.Business, error)
}

// PGXBusinessesRepository is a pgx-backed implementation of BusinessesRepository.
type PGXBusinessesRepository struct {
	pool pgxPool
}

// NewPGXBusinessesRepository constructs the repository on top of a pgx pool.
func NewPGXBusinessesRepository(pool *pgxpool.Pool) *PGXBusinessesRepository {
	return &PGXBusinessesRepository{pool: pool}
}

// FindByDomain matches the site column against the domain, either behind a
// scheme separator or anywhere in the stored URL.
func (r *PGXBusinessesRepository) FindByDomain(ctx context.Context, domain string) ([]entity.Business, error) {
	prefixed := "%//" + domain + "%"
	anywhere := "%" + domain + "%"
	rows, err := r.pool.Query(ctx, findByDomainSQL, prefixed, anywhere)
	if err != nil {
		return nil, fmt.Errorf("query businesses by domain: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// FindByLinkedIn matches the linkedin column against the canonical profile path.
func (r *PGXBusinessesRepository) FindByLinkedIn(ctx context.Context, linkedin string) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, findByLinkedInSQL, "%"+linkedin+"%")
	if err != nil {
		return nil, fmt.Errorf("query businesses by linkedin: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// FindByPlaceID returns the single business carrying the Google place ID,
// or ErrBusinessNotFound.
func (r *PGXBusinessesRepository) FindByPlaceID(ctx context.Context, placeID string) (*entity.Business, error) {
	row := r.pool.QueryRow(ctx, findByPlaceIDSQL, placeID)
	var b entity.Business
	if err := row.Scan(businessScanDests(&b)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("query business by place id: %w", err)
	}
	return &b, nil
}

// FindByEmail matches any of the three enriched contact email columns exactly.
func (r *PGXBusinessesRepository) FindByEmail(ctx context.Context, email string) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, findByEmailSQL, email)
	if err != nil {
		return nil, fmt.Errorf("query businesses by email: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// FindByEmails resolves a batch of canonical emails in one round trip.
func (r *PGXBusinessesRepository) FindByEmails(ctx context.Context, emails []string) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, findByEmailsSQL, emails)
	if err != nil {
		return nil, fmt.Errorf("query businesses by email batch: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// FindByGoogleID matches the google_id, cid and kgmid columns exactly.
func (r *PGXBusinessesRepository) FindByGoogleID(ctx context.Context, googleID string) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, findByGoogleIDSQL, googleID)
	if err != nil {
		return nil, fmt.Errorf("query businesses by google id: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// FindByPhone matches an E.164 number against all four phone columns.
func (r *PGXBusinessesRepository) FindByPhone(ctx context.Context, phone string) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, findByPhoneSQL, phone)
	if err != nil {
		return nil, fmt.Errorf("query businesses by phone: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// ListEnrichedContacts pages through businesses that carry at least one
// enriched contact email, ordered by id for stable pagination.
func (r *PGXBusinessesRepository) ListEnrichedContacts(ctx context.Context, limit, offset int) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, enrichedSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query enriched contacts: %w", err)
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

// CheckSchema confirms every projected column exists on the businesses
// table so drift surfaces at startup instead of on the first lookup.
func (r *PGXBusinessesRepository) CheckSchema(ctx context.Context) error {
	rows, err := r.pool.Query(ctx, schemaColumnsSQL)
	if err != nil {
		return fmt.Errorf("inspect businesses schema: %w", err)
	}
	defer rows.Close()

	present := make(map[string]struct{}, len(businessColumns))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan schema column: %w", err)
		}
		present[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate schema columns: %w", err)
	}

	var missing []string
	for _, col := range businessColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("businesses table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func scanBusinesses(rows pgx.Rows) ([]entity.Business, error) {
	var businesses []entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(businessScanDests(&b)...); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}
	return businesses, nil
}

// businessScanDests returns scan targets aligned with businessColumns.
func businessScanDests(b *entity.Business) []any {
	return []any{
		&b.ID, &b.Query, &b.Name, &b.NameForEmails, &b.Site, &b.Subtypes, &b.Category, &b.Type,
		&b.Phone, &b.Phone1, &b.Phone2, &b.Phone3,
		&b.FullAddress, &b.Borough, &b.Street, &b.City, &b.PostalCode, &b.State, &b.USState,
		&b.Country, &b.CountryCode, &b.Latitude, &b.Longitude, &b.H3, &b.TimeZone, &b.PlusCode,
		&b.AreaService,
		&b.Rating, &b.Reviews, &b.ReviewsLink, &b.ReviewsTags, &b.ReviewsPerScore,
		&b.ReviewsPerScore1, &b.ReviewsPerScore2, &b.ReviewsPerScore3,
		&b.ReviewsPerScore4, &b.ReviewsPerScore5, &b.ReviewsID,
		&b.PhotosCount, &b.Photo, &b.StreetView, &b.Logo, &b.LocatedIn,
		&b.WorkingHours, &b.WorkingHoursCSVCompatible, &b.WorkingHoursOldFormat,
		&b.OtherHours, &b.PopularTimes,
		&b.BusinessStatus, &b.About, &b.Range, &b.Prices, &b.Posts, &b.Description,
		&b.TypicalTimeSpent, &b.Verified,
		&b.OwnerID, &b.OwnerTitle, &b.OwnerLink,
		&b.ReservationLinks, &b.BookingAppointmentLink, &b.MenuLink, &b.OrderLinks,
		&b.LocationLink, &b.LocationReviewsLink,
		&b.PlaceID, &b.GoogleID, &b.CID, &b.KGMID, &b.LocatedGoogleID,
		&b.Email1, &b.Email1FullName, &b.Email1FirstName, &b.Email1LastName,
		&b.Email1Title, &b.Email1Phone,
		&b.Email2, &b.Email2FullName, &b.Email2FirstName, &b.Email2LastName,
		&b.Email2Title, &b.Email2Phone,
		&b.Email3, &b.Email3FullName, &b.Email3FirstName, &b.Email3LastName,
		&b.Email3Title, &b.Email3Phone,
		&b.Facebook, &b.Instagram, &b.LinkedIn, &b.TikTok, &b.Medium, &b.Reddit, &b.Skype,
		&b.Snapchat, &b.Telegram, &b.WhatsApp, &b.Twitter, &b.Vimeo, &b.YouTube, &b.GitHub,
		&b.Crunchbase,
		&b.WebsiteTitle, &b.WebsiteGenerator, &b.WebsiteDescription, &b.WebsiteKeywords,
		&b.WebsiteHasFBPixel, &b.WebsiteHasGoogleTag,
		&b.SourceFile, &b.ImportDate,
	}
}
