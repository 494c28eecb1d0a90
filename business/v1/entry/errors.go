package entry

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound       = errors.New("entry not found")
	ErrDuplicateTitle = errors.New("entry with same title already exists")
	ErrNoEntries      = errors.New("no entries yet")
)

// ValidationErrors maps a form field to the message shown next to it
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(v[f])
	}
	return b.String()
}
