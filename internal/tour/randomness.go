// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package tour

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// varietyStream separates the ordering generator from the selection one.
const varietyStream uint64 = 1

// Randomness holds the two generators of one request. Neither is safe for
// concurrent use.
type Randomness struct {
	// Seed is the caller's seed, nil for an unseeded request.
	Seed *int64

	// Reproducible drives artwork selection.
	Reproducible *rand.Rand

	// Variety drives tour ordering.
	Variety *rand.Rand
}

// NewRandomness builds the generators for a request.
func NewRandomness(seed *int64) Randomness {
	if seed != nil {
		s := *seed
		return Randomness{
			Seed:         &s,
			Reproducible: rand.New(rand.NewSource(s)),                            //nolint:gosec // tour variety, not security
			Variety:      rand.New(rand.NewSource(deriveSeed(s, varietyStream))), //nolint:gosec // tour variety, not security
		}
	}
	return Randomness{
		Reproducible: rand.New(rand.NewSource(entropySeed())), //nolint:gosec // tour variety, not security
		Variety:      rand.New(rand.NewSource(entropySeed())), //nolint:gosec // tour variety, not security
	}
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
