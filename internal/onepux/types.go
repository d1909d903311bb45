package onepux

// Types mirroring the 1pux export JSON. Only the fields this tool consumes
// are declared; everything else in the payload is ignored so that newer
// exports keep parsing.

// Export represents the top-level structure of export.data.
type Export struct {
	Accounts []Account `json:"accounts"`
}

// Account represents one 1Password account in the export.
type Account struct {
	Attrs  AccountAttrs `json:"attrs"`
	Vaults []Vault      `json:"vaults"`
}

// AccountAttrs holds account metadata.
type AccountAttrs struct {
	AccountName string `json:"accountName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Domain      string `json:"domain"`
	UUID        string `json:"uuid"`
}

// Vault represents a vault within an account.
type Vault struct {
	Attrs VaultAttrs `json:"attrs"`
	Items []Item     `json:"items"`
}

// VaultAttrs holds vault metadata.
type VaultAttrs struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Desc string `json:"desc"`
	Type string `json:"type"`
}

// Item represents a single vault item.
type Item struct {
	UUID         string   `json:"uuid"`
	CategoryUUID string   `json:"categoryUuid"`
	State        string   `json:"state"`
	CreatedAt    int64    `json:"createdAt"`
	UpdatedAt    int64    `json:"updatedAt"`
	Overview     Overview `json:"overview"`
	Details      Details  `json:"details"`
}

// Overview holds the item's non-secret summary block.
type Overview struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	URL      string     `json:"url"`
	URLs     []URLEntry `json:"urls"`
	Tags     []string   `json:"tags"`
}

// URLEntry is one entry of an item's URL list.
type URLEntry struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Details holds the item's secret payload block.
type Details struct {
	LoginFields []LoginField `json:"loginFields"`
	NotesPlain  string       `json:"notesPlain"`
	Sections    []Section    `json:"sections"`
}

// LoginField is a typed field of a login item.
type LoginField struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	FieldType   string `json:"fieldType"`
	Designation string `json:"designation"`
}

// Section groups additional fields of an item.
type Section struct {
	Title  string         `json:"title"`
	Name   string         `json:"name"`
	Fields []SectionField `json:"fields"`
}

// SectionField is one field within a section.
type SectionField struct {
	Title string     `json:"title"`
	ID    string     `json:"id"`
	Value FieldValue `json:"value"`
}

// FieldValue is the tagged union the export uses for section field values.
// Exactly one member is set per field.
type FieldValue struct {
	TOTP      *string `json:"totp,omitempty"`
	String    *string `json:"string,omitempty"`
	Concealed *string `json:"concealed,omitempty"`
	URL       *string `json:"url,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Attributes represents export.attributes, the archive's format metadata.
type Attributes struct {
	Version int `json:"version"`
}

// Field designations used by login items.
const (
	designationUsername = "username"
	designationPassword = "password"
	designationTOTP     = "totp"
)
