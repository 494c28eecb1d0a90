package entry

// Entry is a single wiki page
type Entry struct {
	Title   string `json:"title" yaml:"title" example:"Python"`
	Content string `json:"content" yaml:"content" example:"# Python\n\nPython is a programming language."`
}

// Event types carried over messaging
const (
	EventCreate = "create"
	EventEdit   = "edit"
	EventSaved  = "entry.saved"
)

// Saved is the data of an EventSaved event
type Saved struct {
	Title string `json:"title"`
}

// SearchRequest is the search form
type SearchRequest struct {
	Query string `form:"search" validate:"required"`
}

// NewEntryRequest is the create form
type NewEntryRequest struct {
	Title   string `form:"title" json:"title" validate:"required,max=255,excludes=/"`
	Content string `form:"content" json:"content" validate:"notblank"`
}

// EditEntryRequest is the edit form, the title travels as a hidden field
type EditEntryRequest struct {
	Title   string `form:"title" json:"title" validate:"required,max=255,excludes=/"`
	Content string `form:"content" json:"content" validate:"notblank"`
}

// SearchResult is what a search resolves to: either a redirect to an exact match, or a listing
type SearchResult struct {
	Redirect  string   `json:"redirect,omitempty" example:"Python"`
	Matches   []string `json:"matches"`
	NoResults bool     `json:"noResults"`
}
