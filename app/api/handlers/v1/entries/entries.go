package entries

import "github.com/ribgsilva/encyclopedia/business/v1/entry"

// API serves entries as json
type API struct {
	Entries entry.Store
}

// Entry is an entry with its rendered html
type Entry struct {
	entry.Entry
	HTML string `json:"html" example:"<h1 id=\"python\">Python</h1>"`
}
