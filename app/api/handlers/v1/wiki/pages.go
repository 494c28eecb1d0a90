package wiki

import (
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"html/template"
)

// Page is embedded by every page, the layout reads it
type Page struct {
	// Search prefills the sidebar search box
	Search string
}

type IndexPage struct {
	Page
	Entries []string
}

type EntryPage struct {
	Page
	Entry string
	HTML  template.HTML
}

type SearchPage struct {
	Page
	Query     string
	Searched  bool
	Entries   []string
	NoResults bool
	Errors    entry.ValidationErrors
}

type NewPage struct {
	Page
	Form   entry.NewEntryRequest
	Errors entry.ValidationErrors
}

type EditPage struct {
	Page
	Form   entry.EditEntryRequest
	Errors entry.ValidationErrors
}

type ErrorPage struct {
	Page
	Message string
}
