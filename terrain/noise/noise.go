// Package noise implements the deterministic lattice noise underlying all
// terrain synthesis. Every function is a pure function of its arguments;
// there is no running generator state shared between calls.
package noise

import "math"

const (
	// One step of the MINSTD linear congruential generator turns the folded
	// coordinate hash into a well-distributed sample.
	lcgMultiplier = 16807
	lcgModulus    = 1<<31 - 1

	// octaveSeedStride decorrelates the octave layers of Fractal.
	octaveSeedStride = 1000
)

// At returns a pseudo-random value in [0, 1) for the lattice point (x, y).
// The same (x, y, seed) triple always yields the same value, for negative
// coordinates as much as positive ones.
func At(x, y, seed int64) float64 {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) ^ seed*1274126177
	h ^= h >> 16

	s := h % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	if s == 0 {
		s = 1
	}
	return float64(s*lcgMultiplier%lcgModulus) / float64(lcgModulus)
}

// Smooth samples value noise at a continuous coordinate by blending the four
// surrounding lattice points with a smoothstep S-curve. At integer
// coordinates it coincides with At.
func Smooth(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	ix, iz := int64(x0), int64(z0)
	fx, fz := smoothstep(x-x0), smoothstep(z-z0)

	n00 := At(ix, iz, seed)
	n10 := At(ix+1, iz, seed)
	n01 := At(ix, iz+1, seed)
	n11 := At(ix+1, iz+1, seed)

	return lerp(lerp(n00, n10, fx), lerp(n01, n11, fx), fz)
}

// Fractal sums octave layers of Smooth noise, doubling the frequency and
// halving the amplitude per layer. The sum is normalised by the total
// amplitude so the result stays within [0, 1) regardless of octave count.
func Fractal(x, z float64, seed int64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var (
		sum       float64
		total     float64
		amplitude = 1.0
		frequency = 1.0
	)
	for i := 0; i < octaves; i++ {
		sum += Smooth(x*frequency, z*frequency, seed+int64(i)*octaveSeedStride) * amplitude
		total += amplitude
		amplitude /= 2
		frequency *= 2
	}
	return sum / total
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
