// Package model defines the normalized item data model shared by the
// archive reader and the output exporters.
package model

// ItemCategory represents the 1Password category of a vault item.
type ItemCategory int

const (
	// CategoryLogin is a website login (username/password pair).
	CategoryLogin ItemCategory = iota
	// CategoryCreditCard is a payment card entry.
	CategoryCreditCard
	// CategorySecureNote is a free-text secure note.
	CategorySecureNote
	// CategoryIdentity is a personal identity entry.
	CategoryIdentity
	// CategoryPassword is a standalone password entry without a username.
	CategoryPassword
	// CategoryDocument is a stored document entry.
	CategoryDocument
	// CategoryOther covers any category this tool does not model explicitly.
	CategoryOther
)

// Category UUIDs as they appear in the 1pux export format.
const (
	categoryUUIDLogin      = "001"
	categoryUUIDCreditCard = "002"
	categoryUUIDSecureNote = "003"
	categoryUUIDIdentity   = "004"
	categoryUUIDPassword   = "005"
	categoryUUIDDocument   = "006"
)

// String returns the string representation of the ItemCategory.
func (c ItemCategory) String() string {
	switch c {
	case CategoryLogin:
		return "login"
	case CategoryCreditCard:
		return "credit-card"
	case CategorySecureNote:
		return "secure-note"
	case CategoryIdentity:
		return "identity"
	case CategoryPassword:
		return "password"
	case CategoryDocument:
		return "document"
	default:
		return "other"
	}
}

// ParseCategoryUUID maps a 1pux categoryUuid to an ItemCategory.
// Unknown UUIDs map to CategoryOther rather than failing; the export format
// grows categories over time and this tool only needs to single out logins.
func ParseCategoryUUID(uuid string) ItemCategory {
	switch uuid {
	case categoryUUIDLogin:
		return CategoryLogin
	case categoryUUIDCreditCard:
		return CategoryCreditCard
	case categoryUUIDSecureNote:
		return CategorySecureNote
	case categoryUUIDIdentity:
		return CategoryIdentity
	case categoryUUIDPassword:
		return CategoryPassword
	case categoryUUIDDocument:
		return CategoryDocument
	default:
		return CategoryOther
	}
}
