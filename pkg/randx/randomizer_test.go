package randx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"passmeter/pkg/randx"
	"passmeter/pkg/tests"
)

func TestRandomizerIntN(t *testing.T) {
	rq := require.New(t)

	random := tests.NewScriptedRandomizer(0, 0.25, 0.5, 0.999999)

	rq.Equal(0, random.IntN(4))
	rq.Equal(1, random.IntN(4))
	rq.Equal(2, random.IntN(4))
	rq.Equal(3, random.IntN(4))

	rq.Panics(func() { random.IntN(0) })
}

func TestRandomizerPickAndString(t *testing.T) {
	rq := require.New(t)

	random := tests.NewScriptedRandomizer(0.1, 0.5, 0.9, 0.0)

	rq.Equal('a', random.Pick("abc"))
	rq.Equal("bc", random.String(2, "abc"))
	rq.Equal("я", random.String(1, "яz"))
	rq.Equal("", random.String(0, "abc"))

	rq.Panics(func() { random.Pick("") })
	rq.Panics(func() { random.String(3, "") })
}

func TestNewRandomizer(t *testing.T) {
	rq := require.New(t)

	for _, random := range []randx.Randomizer{
		randx.NewRandomizer(),
		randx.NewSeededRandomizer(42),
	} {
		for range 1000 {
			v := random.Float64()
			rq.GreaterOrEqual(v, 0.0)
			rq.Less(v, 1.0)
		}

		rq.Len([]rune(random.String(32, "xyz")), 32)
	}
}

func TestNewSeededRandomizerIsReproducible(t *testing.T) {
	rq := require.New(t)

	first := randx.NewSeededRandomizer(7)
	second := randx.NewSeededRandomizer(7)

	rq.Equal(first.String(16, "abcdef0123456789"), second.String(16, "abcdef0123456789"))
}
