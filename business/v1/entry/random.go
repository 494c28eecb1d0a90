package entry

import (
	"context"
	"math/rand"
)

// Rand is the source Pick draws from
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRand is safe for concurrent use
func DefaultRand() Rand { return globalRand{} }

// Pick returns a uniformly random title, and false when titles is empty
func Pick(titles []string, rnd Rand) (string, bool) {
	if len(titles) == 0 {
		return "", false
	}
	return titles[rnd.Intn(len(titles))], true
}

// Random picks a random title of store, ErrNoEntries when the store is empty
func Random(ctx context.Context, store Store, rnd Rand) (string, error) {
	titles, err := store.List(ctx)
	if err != nil {
		return "", err
	}
	title, ok := Pick(titles, rnd)
	if !ok {
		return "", ErrNoEntries
	}
	return title, nil
}
