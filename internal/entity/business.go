package entity

import "time"

// Business models a row of the businesses table. Every attribute except the
// primary key is nullable in storage, so optional fields are pointers.
type Business struct {
	ID int64 `json:"id"`

	// Listing basics.
	Query         *string `json:"query,omitempty"`
	Name          *string `json:"name,omitempty"`
	NameForEmails *string `json:"name_for_emails,omitempty"`
	Site          *string `json:"site,omitempty"`
	Subtypes      *string `json:"subtypes,omitempty"`
	Category      *string `json:"category,omitempty"`
	Type          *string `json:"type,omitempty"`

	// Phone numbers.
	Phone  *string `json:"phone,omitempty"`
	Phone1 *string `json:"phone_1,omitempty"`
	Phone2 *string `json:"phone_2,omitempty"`
	Phone3 *string `json:"phone_3,omitempty"`

	// Location.
	FullAddress *string  `json:"full_address,omitempty"`
	Borough     *string  `json:"borough,omitempty"`
	Street      *string  `json:"street,omitempty"`
	City        *string  `json:"city,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	State       *string  `json:"state,omitempty"`
	USState     *string  `json:"us_state,omitempty"`
	Country     *string  `json:"country,omitempty"`
	CountryCode *string  `json:"country_code,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	H3          *string  `json:"h3,omitempty"`
	TimeZone    *string  `json:"time_zone,omitempty"`
	PlusCode    *string  `json:"plus_code,omitempty"`
	AreaService *string  `json:"area_service,omitempty"`

	// Ratings and reviews.
	Rating           *float64 `json:"rating,omitempty"`
	Reviews          *int     `json:"reviews,omitempty"`
	ReviewsLink      *string  `json:"reviews_link,omitempty"`
	ReviewsTags      *string  `json:"reviews_tags,omitempty"`
	ReviewsPerScore  *string  `json:"reviews_per_score,omitempty"`
	ReviewsPerScore1 *int     `json:"reviews_per_score_1,omitempty"`
	ReviewsPerScore2 *int     `json:"reviews_per_score_2,omitempty"`
	ReviewsPerScore3 *int     `json:"reviews_per_score_3,omitempty"`
	ReviewsPerScore4 *int     `json:"reviews_per_score_4,omitempty"`
	ReviewsPerScore5 *int     `json:"reviews_per_score_5,omitempty"`
	ReviewsID        *string  `json:"reviews_id,omitempty"`

	// Media.
	PhotosCount *int    `json:"photos_count,omitempty"`
	Photo       *string `json:"photo,omitempty"`
	StreetView  *string `json:"street_view,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	LocatedIn   *string `json:"located_in,omitempty"`

	// Opening hours.
	WorkingHours              *string `json:"working_hours,omitempty"`
	WorkingHoursCSVCompatible *string `json:"working_hours_csv_compatible,omitempty"`
	WorkingHoursOldFormat     *string `json:"working_hours_old_format,omitempty"`
	OtherHours                *string `json:"other_hours,omitempty"`
	PopularTimes              *string `json:"popular_times,omitempty"`

	// Status and descriptive attributes.
	BusinessStatus   *string `json:"business_status,omitempty"`
	About            *string `json:"about,omitempty"`
	Range            *string `json:"range,omitempty"`
	Prices           *string `json:"prices,omitempty"`
	Posts            *string `json:"posts,omitempty"`
	Description      *string `json:"description,omitempty"`
	TypicalTimeSpent *string `json:"typical_time_spent,omitempty"`
	Verified         *bool   `json:"verified,omitempty"`

	// Ownership.
	OwnerID    *string `json:"owner_id,omitempty"`
	OwnerTitle *string `json:"owner_title,omitempty"`
	OwnerLink  *string `json:"owner_link,omitempty"`

	// Action links.
	ReservationLinks       *string `json:"reservation_links,omitempty"`
	BookingAppointmentLink *string `json:"booking_appointment_link,omitempty"`
	MenuLink               *string `json:"menu_link,omitempty"`
	OrderLinks             *string `json:"order_links,omitempty"`
	LocationLink           *string `json:"location_link,omitempty"`
	LocationReviewsLink    *string `json:"location_reviews_link,omitempty"`

	// Google identifiers.
	PlaceID         *string `json:"place_id,omitempty"`
	GoogleID        *string `json:"google_id,omitempty"`
	CID             *string `json:"cid,omitempty"`
	KGMID           *string `json:"kgmid,omitempty"`
	LocatedGoogleID *string `json:"located_google_id,omitempty"`

	// Enriched contacts.
	Email1          *string `json:"email_1,omitempty"`
	Email1FullName  *string `json:"email_1_full_name,omitempty"`
	Email1FirstName *string `json:"email_1_first_name,omitempty"`
	Email1LastName  *string `json:"email_1_last_name,omitempty"`
	Email1Title     *string `json:"email_1_title,omitempty"`
	Email1Phone     *string `json:"email_1_phone,omitempty"`
	Email2          *string `json:"email_2,omitempty"`
	Email2FullName  *string `json:"email_2_full_name,omitempty"`
	Email2FirstName *string `json:"email_2_first_name,omitempty"`
	Email2LastName  *string `json:"email_2_last_name,omitempty"`
	Email2Title     *string `json:"email_2_title,omitempty"`
	Email2Phone     *string `json:"email_2_phone,omitempty"`
	Email3          *string `json:"email_3,omitempty"`
	Email3FullName  *string `json:"email_3_full_name,omitempty"`
	Email3FirstName *string `json:"email_3_first_name,omitempty"`
	Email3LastName  *string `json:"email_3_last_name,omitempty"`
	Email3Title     *string `json:"email_3_title,omitempty"`
	Email3Phone     *string `json:"email_3_phone,omitempty"`

	// Social profiles.
	Facebook   *string `json:"facebook,omitempty"`
	Instagram  *string `json:"instagram,omitempty"`
	LinkedIn   *string `json:"linkedin,omitempty"`
	TikTok     *string `json:"tiktok,omitempty"`
	Medium     *string `json:"medium,omitempty"`
	Reddit     *string `json:"reddit,omitempty"`
	Skype      *string `json:"skype,omitempty"`
	Snapchat   *string `json:"snapchat,omitempty"`
	Telegram   *string `json:"telegram,omitempty"`
	WhatsApp   *string `json:"whatsapp,omitempty"`
	Twitter    *string `json:"twitter,omitempty"`
	Vimeo      *string `json:"vimeo,omitempty"`
	YouTube    *string `json:"youtube,omitempty"`
	GitHub     *string `json:"github,omitempty"`
	Crunchbase *string `json:"crunchbase,omitempty"`

	// Website metadata.
	WebsiteTitle        *string `json:"website_title,omitempty"`
	WebsiteGenerator    *string `json:"website_generator,omitempty"`
	WebsiteDescription  *string `json:"website_description,omitempty"`
	WebsiteKeywords     *string `json:"website_keywords,omitempty"`
	WebsiteHasFBPixel   *bool   `json:"website_has_fb_pixel,omitempty"`
	WebsiteHasGoogleTag *bool   `json:"website_has_google_tag,omitempty"`

	// Ingest provenance.
	SourceFile *string    `json:"source_file,omitempty"`
	ImportDate *time.Time `json:"import_date,omitempty"`
}
