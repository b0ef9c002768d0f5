package sim

import (
	"hash/fnv"
	"math/rand"
)

// Stream names one independent random sequence used by the process generator.
type Stream int

const (
	StreamArrivals Stream = iota // seeded with the generator seed itself
	StreamBursts
)

var streamNames = [...]string{"arrivals", "bursts"}

func (s Stream) String() string { return streamNames[s] }

// SeededStreams derives one *rand.Rand per Stream from a single seed. Draws on
// one stream never shift another, so widening the burst range keeps arrivals.
// Not safe for concurrent use.
type SeededStreams struct {
	seed int64
	rngs [len(streamNames)]*rand.Rand
}

// NewSeededStreams creates the streams for seed. Each is built on first use.
func NewSeededStreams(seed int64) *SeededStreams {
	return &SeededStreams{seed: seed}
}

// Seed returns the generator seed.
func (s *SeededStreams) Seed() int64 { return s.seed }

// Rand returns the stream's generator, the same instance on every call.
func (s *SeededStreams) Rand(stream Stream) *rand.Rand {
	if s.rngs[stream] == nil {
		s.rngs[stream] = rand.New(rand.NewSource(streamSeed(s.seed, stream)))
	}
	return s.rngs[stream]
}

// streamSeed is seed for StreamArrivals and seed XOR fnv1a64(name) otherwise.
func streamSeed(seed int64, stream Stream) int64 {
	if stream == StreamArrivals {
		return seed
	}
	h := fnv.New64a()
	h.Write([]byte(stream.String()))
	return seed ^ int64(h.Sum64())
}
