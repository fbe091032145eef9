package genart

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
)

// Stream is a deterministic source of pseudo-random values. Two streams
// created with the same seed produce the same sequence on every platform.
//
// A Stream is not safe for concurrent use. Generators that need
// independent randomness for sub-processes should derive child streams
// with Fork rather than sharing one stream across interleaved consumers.
type Stream struct {
	rng  *rand.Rand
	seed int64
}

// NewStream creates a stream seeded with the given value.
func NewStream(seed int64) *Stream {
	return &Stream{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// FloatInRange returns the next value in [min, max).
// If max <= min it returns min.
func (s *Stream) FloatInRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// IntInRange returns the next integer in [min, max).
// If max <= min it returns min.
func (s *Stream) IntInRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// Angle returns the next angle in radians, in [0, 2π).
func (s *Stream) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Coin returns true with probability p. Values of p at or below 0 never
// return true; values at or above 1 always do.
func (s *Stream) Coin(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// Fork derives an independent child stream from this stream's seed and a
// label. The child's sequence depends only on the parent seed and the
// label, never on how much of the parent sequence has been consumed, so
// sub-processes stay reproducible when their interleaving changes.
func (s *Stream) Fork(label string) *Stream {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(s.seed))
	h.Write(buf[:])
	h.Write([]byte(label))
	return NewStream(int64(h.Sum64()))
}
