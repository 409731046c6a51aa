// Package slugify derives URL-safe article identifiers from titles.
package slugify

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gosimple/slug"
)

const (
	suffixLen      = 6
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Make returns a lowercase, hyphenated ASCII transliteration of title with
// a fixed-length random base36 suffix. The suffix space (36^6) makes
// collisions negligible without a uniqueness round-trip; the database
// unique index on slug is the final arbiter, and an insert hitting it is
// surfaced as a conflict.
func Make(title string) string {
	return slug.Make(title) + "-" + suffix()
}

func suffix() string {
	var b strings.Builder
	b.Grow(suffixLen)
	rngMu.Lock()
	defer rngMu.Unlock()
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(base36Alphabet[rng.Intn(len(base36Alphabet))])
	}
	return b.String()
}
