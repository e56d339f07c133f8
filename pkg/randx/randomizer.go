package randx

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"sync"
)

// Randomizer is a source of uniform draws in [0, 1). Every other draw is
// derived from Float64, so a scripted Float64 fully determines the output.
type Randomizer struct {
	Float64 func() float64
}

// NewRandomizer returns a crypto-backed randomizer, safe for concurrent use.
func NewRandomizer() Randomizer {
	return Randomizer{
		Float64: cryptoFloat64,
	}
}

// NewSeededRandomizer returns a reproducible randomizer. It is safe for
// concurrent use, but the sequence then depends on call interleaving.
func NewSeededRandomizer(seed uint64) Randomizer {
	var mu sync.Mutex

	random := mrand.New(mrand.NewPCG(seed, seed)) //nolint:gosec // reproducible output requested

	return Randomizer{
		Float64: func() float64 {
			mu.Lock()
			defer mu.Unlock()

			return random.Float64()
		},
	}
}

// IntN returns floor(draw * n), a value in [0, n). It panics if n <= 0.
func (r Randomizer) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("randx: invalid argument to IntN: %d", n))
	}

	return min(int(r.Float64()*float64(n)), n-1)
}

// Pick returns a uniformly chosen rune of alphabet. It panics on an empty
// alphabet.
func (r Randomizer) Pick(alphabet string) rune {
	runes := []rune(alphabet)
	if len(runes) == 0 {
		panic("randx: empty alphabet")
	}

	return runes[r.IntN(len(runes))]
}

// String returns n runes drawn from alphabet.
func (r Randomizer) String(n int, alphabet string) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(alphabet)
	if len(runes) == 0 {
		panic("randx: empty alphabet")
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = runes[r.IntN(len(runes))]
	}

	return string(out)
}

func cryptoFloat64() float64 {
	var b [8]byte

	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b[:])

	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}
