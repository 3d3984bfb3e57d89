package testutil

import (
	"math/rand"
	"strconv"

	"github.com/hupe1980/flatstore/record"
)

// RNG encapsulates a seeded random number generator so test data is
// reproducible across runs.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random int in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

var firstNames = []string{
	"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi",
}

// GenerateRecords generates num flat records with name/age fields.
func (r *RNG) GenerateRecords(num int) []record.Record {
	recs := make([]record.Record, num)
	for i := range recs {
		recs[i] = record.Record{
			"name": firstNames[r.rand.Intn(len(firstNames))],
			"age":  strconv.Itoa(r.rand.Intn(80) + 18),
		}
	}
	return recs
}
