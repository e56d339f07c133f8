package tests

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"passmeter/pkg/randx"
)

// printable covers every class the evaluator distinguishes, plus a few
// non-ASCII runes.
const printable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"!@#$%^&*()-_+=[]{};:'\",.<>/?\\|`~ aaaa1111ÄéжΩ🔒"

type Randomizer struct {
	Intn func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Intn: random.Intn,
	}
}

// String returns n runes of mixed classes, with repeats likely.
func (r Randomizer) String(n int) string {
	runes := []rune(printable)
	out := make([]rune, n)

	for i := range out {
		out[i] = runes[r.Intn(len(runes))]
	}

	return string(out)
}

// NewScriptedRandomizer replays values in order and panics once they run
// out, so a test fails loudly when the code under test draws more often than
// expected.
func NewScriptedRandomizer(values ...float64) randx.Randomizer {
	var (
		mu   sync.Mutex
		next int
	)

	return randx.Randomizer{
		Float64: func() float64 {
			mu.Lock()
			defer mu.Unlock()

			if next >= len(values) {
				panic(fmt.Sprintf("scripted randomizer exhausted after %d draws", len(values)))
			}

			v := values[next]
			next++

			return v
		},
	}
}

// NewConstantRandomizer always returns v.
func NewConstantRandomizer(v float64) randx.Randomizer {
	return randx.Randomizer{
		Float64: func() float64 { return v },
	}
}
