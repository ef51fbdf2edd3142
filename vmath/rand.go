package vmath

import "time"

// Source yields uniform values in [0, 1)
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, cheap enough to call per particle
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator; zero seed is remapped since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits for a uniform [0, 1) mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Rand draws decorative jitter; reproducibility is only needed in tests
type Rand struct {
	src Source
}

// NewRand seeds from the given value, or from wall time when seed is 0
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{src: NewFastRand(seed)}
}

// NewRandFromSource wraps an arbitrary source
func NewRandFromSource(src Source) *Rand {
	return &Rand{src: src}
}

// Range returns a uniform value in [min, max)
func (r *Rand) Range(min, max float64) float64 {
	return r.src.Float64()*(max-min) + min
}

// Intn returns an index in [0, n), 0 for n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
