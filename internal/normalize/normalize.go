// Package normalize canonicalizes raw lookup keys before they reach storage.
// Each function returns the canonical form together with an ok flag; feeding
// a canonical value back in returns it unchanged.
package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	domainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?)*$`)
	emailPattern  = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile   = idna.Lookup
)

// Domain reduces a raw website reference to a bare lowercase hostname.
// Scheme, userinfo, port, path, a single leading "www." and trailing dots
// are all stripped; non-ASCII hostnames are converted to punycode. The
// result must contain at least one dot and satisfy DNS label rules.
// Subdomains are preserved.
func Domain(raw string) (string, bool) {
	domain := strings.TrimSpace(raw)
	if domain == "" {
		return "", false
	}

	if strings.Contains(domain, "://") {
		u, err := url.Parse(domain)
		if err != nil {
			return "", false
		}
		if u.Host != "" {
			domain = u.Hostname()
		} else {
			domain = u.Path
		}
	}
	if i := strings.IndexByte(domain, ':'); i >= 0 {
		domain = domain[:i]
	}
	if i := strings.IndexByte(domain, '/'); i >= 0 {
		domain = domain[:i]
	}

	domain = stripWWW(domain)
	domain = strings.TrimRight(domain, ".")
	if !strings.Contains(domain, ".") {
		return "", false
	}
	domain = strings.ToLower(domain)

	if !isASCII(domain) {
		ascii, err := idnaProfile.ToASCII(domain)
		if err != nil || ascii == "" {
			return "", false
		}
		domain = ascii
	}
	if !domainPattern.MatchString(domain) {
		return "", false
	}
	return domain, true
}

// LinkedIn canonicalizes a LinkedIn URL to lowercase host plus path without
// scheme, userinfo, leading "www." or trailing slashes. Anything whose host
// is not linkedin.com is rejected.
func LinkedIn(raw string) (string, bool) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return "", false
	}

	if strings.Contains(link, "://") {
		u, err := url.Parse(link)
		if err != nil {
			return "", false
		}
		link = u.Host + u.Path
	}

	link = stripWWW(link)
	if !strings.HasPrefix(strings.ToLower(link), "linkedin.com") {
		return "", false
	}
	link = strings.TrimRight(link, "/")
	return strings.ToLower(link), true
}

// Email lowercases and validates an email address.
func Email(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return "", false
	}
	return email, true
}

// PlaceID trims surrounding whitespace. Google place IDs are opaque and
// case-sensitive, so nothing else is folded.
func PlaceID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	return id, id != ""
}

// GoogleID trims surrounding whitespace. The value is matched verbatim
// against the google_id, cid and kgmid columns.
func GoogleID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	return id, id != ""
}

// Phone parses a phone number and renders it in E.164. The region is used
// for numbers written without a country prefix.
func Phone(raw, region string) (string, bool) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", false
	}
	number, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", false
	}
	return phonenumbers.Format(number, phonenumbers.E164), true
}

// DomainFromEmail extracts the domain part of a valid email address.
func DomainFromEmail(raw string) (string, bool) {
	email, ok := Email(raw)
	if !ok {
		return "", false
	}
	_, domain, _ := strings.Cut(email, "@")
	return domain, true
}

func stripWWW(s string) string {
	if len(s) >= 4 && strings.EqualFold(s[:4], "www.") {
		return s[4:]
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
