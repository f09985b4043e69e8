package linechart

import (
	"io"
)

// LineChart owns its series and its configuration. It is meant to be used from
// a single goroutine: mutations and redraws are never concurrent.
type LineChart struct {
	Config

	store  Store
	bounds Bounds
	plan   []Primitive
	dirty  bool
}

func New() *LineChart {
	return &LineChart{
		Config: DefaultConfig(),
		dirty:  true,
	}
}

func NewWithSize(w, h float64) *LineChart {
	c := New()
	c.Resize(w, h)
	return c
}

// AddLine appends a serie. Series are painted in the order they were added.
func (c *LineChart) AddLine(values []float64) {
	c.store.AddSerie(values)
	c.dirty = true
}

func (c *LineChart) ClearAll() {
	c.store.Clear()
	c.dirty = true
}

func (c *LineChart) HasData() bool {
	return c.store.HasData()
}

func (c *LineChart) Len() int {
	return c.store.Len()
}

func (c *LineChart) Serie(i int) ([]float64, bool) {
	return c.store.Serie(i)
}

func (c *LineChart) Resize(w, h float64) {
	b := NewBounds(w, h)
	if b == c.bounds {
		return
	}
	c.bounds = b
	c.dirty = true
}

func (c *LineChart) Bounds() Bounds {
	return c.bounds
}

// SetNeedsDisplay marks the chart for a redraw, typically after a change of
// its configuration.
func (c *LineChart) SetNeedsDisplay() {
	c.dirty = true
}

func (c *LineChart) NeedsDisplay() bool {
	return c.dirty
}

func (c *LineChart) Geometry() Geometry {
	return ComputeGeometry(c.bounds, &c.store, c.Config)
}

// Redraw discards the previous plan and computes a new one for the current
// bounds.
func (c *LineChart) Redraw() []Primitive {
	c.plan = nil
	c.plan = ComputePlan(c.State())
	c.dirty = false
	return c.plan
}

func (c *LineChart) Plan() []Primitive {
	return c.plan
}

func (c *LineChart) State() State {
	return State{
		Bounds: c.bounds,
		Config: c.Config,
		Store:  &c.store,
	}
}

// Render redraws the chart and writes it as svg.
func (c *LineChart) Render(w io.Writer) error {
	return Render(w, c.bounds, c.Redraw())
}
