package linechart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_HasData(t *testing.T) {
	var s Store
	assert.False(t, s.HasData())

	s.AddSerie([]float64{3, 4, 8})
	assert.True(t, s.HasData())

	s.Clear()
	assert.False(t, s.HasData())
	assert.Zero(t, s.Len())
}

func TestStore_FirstSerieGatesData(t *testing.T) {
	var s Store
	s.AddSerie(nil)
	s.AddSerie([]float64{1, 2, 3})
	assert.False(t, s.HasData())
	assert.Equal(t, 2, s.Len())
	assert.Zero(t, s.Min())
	assert.Zero(t, s.Max())

	s.Clear()
	s.AddSerie([]float64{7})
	s.AddSerie(nil)
	assert.True(t, s.HasData())
}

func TestStore_Extent(t *testing.T) {
	var s Store
	s.AddSerie([]float64{3, 4, 8, 11, 13, 15})
	s.AddSerie([]float64{1, 3, 5, 5, 17, 20})
	s.AddSerie([]float64{1, 3, -5, -6, -17, 10, 20, 0})
	s.AddSerie(nil)

	assert.Equal(t, -17.0, s.Min())
	assert.Equal(t, 20.0, s.Max())
	assert.Equal(t, 6, s.Count())
}

func TestStore_MaxFloor(t *testing.T) {
	var s Store
	s.AddSerie([]float64{0.1, 0.5, 0.25})
	assert.Equal(t, 0.1, s.Min())
	assert.Equal(t, 1.0, s.Max())

	s.Clear()
	s.AddSerie([]float64{-3, -2})
	assert.Equal(t, NewDomain(-3, 1), s.Domain())
}

func TestStore_SkipNonFinite(t *testing.T) {
	var s Store
	s.AddSerie([]float64{math.NaN(), 4, math.Inf(1), 2})
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 4.0, s.Max())

	s.Clear()
	s.AddSerie([]float64{math.NaN()})
	assert.True(t, s.HasData())
	assert.Zero(t, s.Min())
	assert.Equal(t, 1.0, s.Max())
}

func TestStore_Serie(t *testing.T) {
	var (
		s      Store
		values = []float64{1, 2}
	)
	s.AddSerie(values)
	values[0] = 100

	got, ok := s.Serie(0)
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2}, got)

	_, ok = s.Serie(1)
	assert.False(t, ok)
	_, ok = s.Serie(-1)
	assert.False(t, ok)
}
