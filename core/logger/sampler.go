package logger

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// sampler lets num out of every den calls through. A zero ratio lets
// everything through.
type sampler struct {
	ratio atomic.Uint64 // num<<32 | den
	calls atomic.Uint64
}

func newSampler(num, den int) *sampler {
	s := &sampler{}
	s.Set(num, den)
	return s
}

// Set replaces the ratio and restarts the cycle.
func (s *sampler) Set(num, den int) {
	switch {
	case num <= 0 || den <= 0 || den > math.MaxUint32:
		num, den = 0, 0
	case num > den:
		num = den
	}
	s.ratio.Store(uint64(num)<<32 | uint64(den))
	s.calls.Store(0)
}

// Allow reports whether the current call passes.
func (s *sampler) Allow() bool {
	r := s.ratio.Load()
	num, den := r>>32, r&math.MaxUint32
	if den == 0 {
		return true
	}
	return (s.calls.Add(1)-1)%den < num
}

// parseRatio reads "num/den" or a bare "den" meaning 1/den. Anything
// unparsable yields 0/0.
func parseRatio(raw string) (int, int) {
	raw = strings.TrimSpace(raw)
	if a, b, ok := strings.Cut(raw, "/"); ok {
		num, errNum := strconv.Atoi(strings.TrimSpace(a))
		den, errDen := strconv.Atoi(strings.TrimSpace(b))
		if errNum != nil || errDen != nil {
			return 0, 0
		}
		return num, den
	}
	if den, err := strconv.Atoi(raw); err == nil && den > 0 {
		return 1, den
	}
	return 0, 0
}
