package schedule

import "math/rand"

// NewRand returns a deterministic generator for one player.
// math/rand.Rand is not goroutine-safe; never share one across players.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveSeed returns the seed of an independent stream under parent, e.g.
// one per player of a multi-player generation.
func DeriveSeed(parent int64, stream uint64) int64 {
	return deriveSeed(parent, stream)
}

// DeriveRand creates an independent generator from base and a stream id.
// base.Int63 is consumed once so repeated derivations differ.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	return NewRand(deriveSeed(base.Int63(), stream))
}

// PickWeighted returns an index chosen with probability proportional to its
// weight, or false when every weight is zero.
func PickWeighted(rng *rand.Rand, weights []int64) (int, bool) {
	var total int64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, false
	}
	r := rng.Int63n(total)
	for i, w := range weights {
		if r < w {
			return i, true
		}
		r -= w
	}
	return len(weights) - 1, true
}
