package strength

import (
	"math"

	"github.com/samber/lo"
)

// Pool sizes are a fixed approximation, the symbol pool is not the real
// printable-symbol count.
const (
	lowerPool  = 26
	upperPool  = 26
	numberPool = 10
	symbolPool = 32
)

// charClasses mirrors the ASCII classes [a-z], [A-Z], [0-9] and
// [^A-Za-z0-9]; any other rune, including non-ASCII letters, is a symbol.
type charClasses struct {
	lower  bool
	upper  bool
	number bool
	symbol bool
}

func detectClasses(runes []rune) charClasses {
	var c charClasses

	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.number = true
		default:
			c.symbol = true
		}
	}

	return c
}

func (c charClasses) count() int {
	return lo.Count([]bool{c.lower, c.upper, c.number, c.symbol}, true)
}

func (c charClasses) poolSize() int {
	pool := 0

	if c.lower {
		pool += lowerPool
	}

	if c.upper {
		pool += upperPool
	}

	if c.number {
		pool += numberPool
	}

	if c.symbol {
		pool += symbolPool
	}

	return pool
}

func entropyBits(length int, c charClasses) int {
	if length == 0 {
		return 0
	}

	// log2(0) guard, unreachable for non-empty input.
	pool := max(c.poolSize(), 1)

	return int(math.Round(float64(length) * math.Log2(float64(pool))))
}
