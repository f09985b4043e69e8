package linechart

import (
	"math"
)

// Store keeps the series plotted together. The first serie gates the whole
// chart: without points in it, nothing but the baseline is drawn.
type Store struct {
	series [][]float64
}

func (s *Store) AddSerie(values []float64) {
	serie := make([]float64, len(values))
	copy(serie, values)
	s.series = append(s.series, serie)
}

func (s *Store) Clear() {
	s.series = s.series[:0]
}

func (s *Store) Len() int {
	return len(s.series)
}

func (s *Store) HasData() bool {
	return len(s.series) > 0 && len(s.series[0]) > 0
}

func (s *Store) Serie(i int) ([]float64, bool) {
	if i < 0 || i >= len(s.series) {
		return nil, false
	}
	return s.series[i], true
}

// Count gives the number of points of the first serie.
func (s *Store) Count() int {
	if len(s.series) == 0 {
		return 0
	}
	return len(s.series[0])
}

// Max gives the greatest value of all series. It never goes below 1 when
// data is available.
func (s *Store) Max() float64 {
	if !s.HasData() {
		return 0
	}
	max := 1.0
	for _, serie := range s.series {
		_, hi, ok := extent(serie)
		if ok && hi > max {
			max = hi
		}
	}
	return max
}

func (s *Store) Min() float64 {
	if !s.HasData() {
		return 0
	}
	min := math.MaxFloat64
	for _, serie := range s.series {
		lo, _, ok := extent(serie)
		if ok && lo < min {
			min = lo
		}
	}
	if min == math.MaxFloat64 {
		return 0
	}
	return min
}

func (s *Store) Domain() Domain {
	return NewDomain(s.Min(), s.Max())
}

func extent(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
