package engine

// stubRNG returns scripted values so rolls are fully deterministic in tests.
type stubRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *stubRNG) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *stubRNG) IntN(n int) int {
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}
