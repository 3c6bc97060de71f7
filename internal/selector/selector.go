// Package selector picks one path uniformly at random from a result set.
package selector

import (
	"math/rand/v2"
	"sync"
)

// Selector draws uniformly from result sets. The randomness is not
// cryptographically secure. A Selector is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Selector backed by src. A nil src uses the runtime's
// auto-seeded generator.
func New(src rand.Source) *Selector {
	if src == nil {
		return &Selector{}
	}
	return &Selector{rng: rand.New(src)}
}

// Select returns one element of results, each with probability 1/len(results).
// It reports false when results is empty.
func (s *Selector) Select(results []string) (string, bool) {
	if len(results) == 0 {
		return "", false
	}
	return results[s.intN(len(results))], true
}

func (s *Selector) intN(n int) int {
	if s == nil || s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Select picks from results using the default generator.
func Select(results []string) (string, bool) {
	var s *Selector
	return s.Select(results)
}
