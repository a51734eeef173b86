// Package namegen produces readable random names such as "BraveOtter" for
// configurations the user did not name.
package namegen

import (
	"math/rand/v2"
	"strings"
	"time"
)

var adjectives = []string{
	"amber", "bold", "brave", "bright", "calm", "clever", "cosmic", "crisp",
	"daring", "eager", "fancy", "fierce", "gentle", "golden", "happy", "hidden",
	"jolly", "keen", "lively", "lucky", "mellow", "mighty", "nimble", "noble",
	"quiet", "rapid", "rustic", "silent", "silver", "sleepy", "snappy", "swift",
	"tidy", "vivid", "wild", "witty",
}

var nouns = []string{
	"badger", "beacon", "comet", "condor", "falcon", "ferret", "forest", "fox",
	"galaxy", "glacier", "harbor", "heron", "island", "lantern", "lynx", "meadow",
	"meteor", "orbit", "otter", "panda", "pebble", "phoenix", "pine", "raven",
	"river", "rocket", "sparrow", "summit", "thunder", "tiger", "valley", "walrus",
	"willow", "wolf", "yak", "zephyr",
}

// Generator draws names from its own random source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded from the clock.
func New() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewSeeded(seed, seed>>32)
}

// NewSeeded returns a deterministic generator.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Name returns a capitalized adjective followed by a capitalized noun.
func (g *Generator) Name() string {
	adj := adjectives[g.rng.IntN(len(adjectives))]
	noun := nouns[g.rng.IntN(len(nouns))]
	return capitalize(adj) + capitalize(noun)
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
