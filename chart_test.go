package linechart

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChart_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultLineWidth, c.LineWidth)
	assert.Equal(t, DefaultGridCount, c.X.Grid.Count)
	assert.Equal(t, DefaultInsets, c.Y.Axis.Insets)
	assert.True(t, c.X.Labels.Visible)
	assert.True(t, c.DotLabels.Visible)
	assert.Equal(t, DefaultPalette, c.Colors)
	assert.True(t, c.NeedsDisplay())
	assert.NoError(t, c.Validate())
}

func TestLineChart_AddClear(t *testing.T) {
	c := NewWithSize(320, 240)
	c.AddLine([]float64{1, 2, 3})
	c.AddLine([]float64{4})
	assert.True(t, c.HasData())
	assert.Equal(t, 2, c.Len())

	c.ClearAll()
	assert.False(t, c.HasData())
	assert.Zero(t, c.Len())
}

func TestLineChart_Resize(t *testing.T) {
	c := NewWithSize(320, 240)
	c.Redraw()
	assert.False(t, c.NeedsDisplay())

	c.Resize(320, 240)
	assert.False(t, c.NeedsDisplay())

	c.Resize(640, 240)
	assert.True(t, c.NeedsDisplay())
	assert.Equal(t, NewBounds(640, 240), c.Bounds())
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.X.Grid.Count = 0
	cfg.Y.Grid.Count = -2
	cfg.LineWidth = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "x grid")
	assert.Contains(t, err.Error(), "y grid")

	c := NewWithSize(300, 300)
	c.Config = cfg
	c.AddLine([]float64{3, 4, 8, 11, 13, 15})
	assert.NotEmpty(t, Filter(c.Redraw(), KindGrid))
}

func TestLineChart_Render(t *testing.T) {
	c := sampleChart([]float64{3, 4, 8, 11, 13, 15}, []float64{1, 3, 5, 5, 17, 20})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	str := buf.String()
	assert.Contains(t, str, "<svg")
	assert.Contains(t, str, "<path")
	assert.Contains(t, str, "Jan")
	assert.Contains(t, str, DefaultPalette[1])
	assert.False(t, c.NeedsDisplay())
}

func TestLineChart_RenderFontWeight(t *testing.T) {
	c := sampleChart([]float64{3, 4, 8, 11, 13, 15})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Contains(t, buf.String(), `font-weight="bold"`)

	c.X.Labels.Font = Font{Size: FontSize}
	c.Y.Labels.Font = Font{Size: FontSize}
	c.DotLabels.Visible = false
	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Contains(t, buf.String(), "Jan")
	assert.NotContains(t, buf.String(), "font-weight")
}

func TestLineChart_RenderEmpty(t *testing.T) {
	c := NewWithSize(300, 300)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	str := buf.String()
	assert.Contains(t, str, "<svg")
	assert.NotContains(t, str, "<path")
	assert.False(t, strings.Contains(str, "<text"))
}

func ExampleLinearScale_Ticks() {
	s := NewLinearScale(NewDomain(3, 15), NewRange(0, 185))
	t := s.Ticks(5)
	fmt.Println(t.Start, t.Stop, t.Step)
	fmt.Println(t.Values())
	// Output:
	// 0 15 5
	// [0 5 10 15]
}

func ExampleComputePlan() {
	var store Store
	store.AddSerie([]float64{3, 4, 8, 11, 13, 15})

	cfg := DefaultConfig()
	cfg.Y.Grid.Count = 5
	cfg.DotLabels.Visible = false

	plan := ComputePlan(State{
		Bounds: NewBounds(300, 300),
		Config: cfg,
		Store:  &store,
	})
	for _, k := range []Kind{KindGrid, KindXLabel, KindYLabel, KindLine, KindDotLabel, KindBaseline} {
		fmt.Println(k, len(Filter(plan, k)))
	}
	// Output:
	// grid 2
	// x-label 6
	// y-label 5
	// line 1
	// dot-label 0
	// baseline 1
}

func BenchmarkComputePlan(b *testing.B) {
	var (
		rnd = rand.New(rand.NewSource(1))
		c   = NewWithSize(800, 600)
	)
	for i := 0; i < 4; i++ {
		serie := make([]float64, 365)
		for j := range serie {
			serie[j] = 1.5 + rnd.Float64()*98.5
		}
		c.AddLine(serie)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Redraw()
	}
}
