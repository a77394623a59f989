package spline

import "fmt"

// Sample evaluates the spline at n uniformly spaced parameters across
// [from, to], inclusive of both ends, and returns the samples with the
// number of active components. The first evaluation builds any coefficient
// cache, so a Sample call also serves as the eager precompute barrier before
// read-only fan-out to concurrent workers.
func Sample(s Spline, from, to float64, n int) ([]Vector, int, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("%w: need at least 1 sample, got %d", ErrBadSampleCount, n)
	}
	dst := make([]Vector, n)
	terms, err := SampleInto(s, from, to, dst)
	if err != nil {
		return nil, 0, err
	}
	return dst, terms, nil
}

// SampleInto fills dst like Sample without allocating.
func SampleInto(s Spline, from, to float64, dst []Vector) (int, error) {
	n := len(dst)
	if n == 0 {
		return 0, nil
	}
	if n == 1 {
		v, terms, err := s.Evaluate(from)
		if err != nil {
			return 0, err
		}
		dst[0] = v
		return terms, nil
	}
	step := (to - from) / float64(n-1)
	var terms int
	for i := range dst {
		v, t, err := s.Evaluate(from + float64(i)*step)
		if err != nil {
			return 0, err
		}
		dst[i] = v
		terms = t
	}
	return terms, nil
}
