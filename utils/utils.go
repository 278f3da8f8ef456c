package utils

import "math/rand"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// DistEntry is a single row in a cumulative distribution
type DistEntry struct {
	Limit float64
	Value string
}

// Distribution is a cumulative distribution over string outcomes ;
// entries must be sorted by ascending Limit with the last Limit == 1.0
type Distribution []DistEntry

// SampleDist takes a random sample of a Distribution
func SampleDist(rng *rand.Rand, d Distribution) string {
	s := rng.Float64()
	for _, e := range d {
		if s < e.Limit {
			return e.Value
		}
	}
	return d[len(d)-1].Value
}

// UniformInRange draws uniformly from [min, max)
func UniformInRange(rng *rand.Rand, min float64, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// IntInRange draws uniformly from [min, max] inclusive
func IntInRange(rng *rand.Rand, min int, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// NormalClamped draws from N(mean, stddev) and clamps the result
// to be no lower than floor
func NormalClamped(rng *rand.Rand, mean float64, stddev float64, floor float64) float64 {
	v := rng.NormFloat64()*stddev + mean
	if v < floor {
		return floor
	}
	return v
}
