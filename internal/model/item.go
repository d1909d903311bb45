package model

import (
	"net/url"
	"strings"
	"time"
)

// DefaultTitle is used when an item carries no title in the source export.
const DefaultTitle = "Untitled"

// Item represents a normalized vault item extracted from a 1pux archive.
// It is the intermediate representation between the export payload and the
// output formats.
type Item struct {
	// ID is the item's uuid from the export, or a generated one when the
	// source omits it.
	ID string

	// Category indicates what kind of item this is. Only CategoryLogin
	// items are eligible for CSV output.
	Category ItemCategory

	// Title is the display name. Never empty: defaults to DefaultTitle.
	Title string

	// URLs are the associated website URLs in source order. The primary
	// URL comes first.
	URLs []string

	// Username for login items.
	Username string

	// Password for login items.
	Password string

	// Notes contains the item's free-text notes.
	Notes string

	// OTP contains one-time-password configuration if the item has one.
	OTP *OTPData

	// Account is the name of the 1Password account the item belongs to.
	Account string

	// Vault is the name of the vault the item belongs to.
	Vault string

	// Created is when the item was first created.
	Created time.Time

	// Updated is when the item was last modified.
	Updated time.Time
}

// PrimaryURL returns the first associated URL, or "" if the item has none.
func (it *Item) PrimaryURL() string {
	if len(it.URLs) == 0 {
		return ""
	}
	return it.URLs[0]
}

// IsEmpty returns true if the item has no meaningful data.
func (it *Item) IsEmpty() bool {
	if it == nil {
		return true
	}
	if it.Title != "" && it.Title != DefaultTitle {
		return false
	}
	if it.Username != "" || it.Password != "" || it.Notes != "" {
		return false
	}
	if len(it.URLs) > 0 {
		return false
	}
	if it.OTP != nil && it.OTP.Secret != "" {
		return false
	}
	return true
}

// Sanitize removes leading/trailing whitespace from identity and
// metadata fields. Secret-bearing fields (Password, Notes, the OTP
// secret) are never touched: they must round-trip into the output
// byte-exact.
func (it *Item) Sanitize() {
	if it == nil {
		return
	}

	it.ID = strings.TrimSpace(it.ID)
	it.Title = strings.TrimSpace(it.Title)
	it.Username = strings.TrimSpace(it.Username)
	it.Account = strings.TrimSpace(it.Account)
	it.Vault = strings.TrimSpace(it.Vault)

	for i, u := range it.URLs {
		it.URLs[i] = strings.TrimSpace(u)
	}

	if it.OTP != nil {
		it.OTP.Issuer = strings.TrimSpace(it.OTP.Issuer)
		it.OTP.AccountName = strings.TrimSpace(it.OTP.AccountName)
	}
}

// OTPData contains one-time-password configuration for an item.
type OTPData struct {
	// Secret is the base32 TOTP secret, or a complete otpauth:// URI when
	// the source stored one.
	Secret string

	// Issuer is the service that issued the TOTP.
	Issuer string

	// AccountName is the account identifier for the TOTP.
	AccountName string
}

// NewOTPData creates an OTPData from a raw stored value.
func NewOTPData(value string) *OTPData {
	return &OTPData{Secret: value}
}

// URI renders the OTP configuration as an otpauth:// URI.
// If Secret is already a full otpauth:// URI it is returned verbatim.
// Returns "" when no secret is present.
func (o *OTPData) URI() string {
	if o == nil || o.Secret == "" {
		return ""
	}

	if strings.HasPrefix(o.Secret, "otpauth://") {
		return o.Secret
	}

	// Label is "Issuer:Account", omitting whichever part is absent.
	label := o.AccountName
	if o.Issuer != "" {
		if label != "" {
			label = o.Issuer + ":" + label
		} else {
			label = o.Issuer
		}
	}

	query := url.Values{}
	query.Set("secret", o.Secret)
	if o.Issuer != "" {
		query.Set("issuer", o.Issuer)
	}

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + label,
		RawQuery: query.Encode(),
	}
	return u.String()
}
