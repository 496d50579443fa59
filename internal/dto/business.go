package dto

// BatchEmailRequest is the JSON payload for batch email lookups.
type BatchEmailRequest struct {
	Emails []string `json:"emails"`
}
