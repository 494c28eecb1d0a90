package entry

import (
	"context"
	"strings"
)

// Resolve decides what a search for query over titles yields. An exact, case-sensitive
// match is a redirect; otherwise every title containing query is listed, in titles order.
// An empty query matches nothing.
func Resolve(query string, titles []string) SearchResult {
	if query == "" {
		return SearchResult{Matches: []string{}, NoResults: true}
	}

	for _, t := range titles {
		if t == query {
			return SearchResult{Redirect: t}
		}
	}

	matches := make([]string, 0)
	for _, t := range titles {
		if strings.Contains(t, query) {
			matches = append(matches, t)
		}
	}
	return SearchResult{Matches: matches, NoResults: len(matches) == 0}
}

// Search resolves query against the current titles of store
func Search(ctx context.Context, store Store, query string) (SearchResult, error) {
	titles, err := store.List(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	return Resolve(query, titles), nil
}
