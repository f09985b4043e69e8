package linechart

import (
	"github.com/shopspring/decimal"
)

const (
	xLabelMargin = 12
	yLabelMargin = 3
	dotMargin    = 2
)

// State is everything a plan depends on.
type State struct {
	Bounds
	Config
	Store *Store
}

// ComputePlan produces the primitives to paint for the given state, in painting
// order: grid, x labels, y labels, lines, dot labels and the baseline. Without
// data in the first serie only the baseline is produced.
func ComputePlan(state State) []Primitive {
	store := state.Store
	if store == nil {
		store = &Store{}
	}
	var (
		geo  = ComputeGeometry(state.Bounds, store, state.Config)
		plan []Primitive
	)
	if store.HasData() {
		b := builder{
			Geometry: geo,
			Config:   state.Config,
			store:    store,
		}
		plan = b.build()
	}
	return append(plan, drawBaseline(geo, state.Config))
}

type builder struct {
	Geometry
	Config
	store *Store
}

func (b builder) build() []Primitive {
	var plan []Primitive
	plan = append(plan, b.drawXGrid(), b.drawYGrid())
	if b.Config.X.Labels.Visible {
		plan = append(plan, b.drawXLabels()...)
	}
	if b.Config.Y.Labels.Visible {
		plan = append(plan, b.drawYLabels()...)
	}
	for i := 0; i < b.store.Len(); i++ {
		if p, ok := b.drawLine(i); ok {
			plan = append(plan, p)
		}
	}
	if b.DotLabels.Visible {
		for i := 0; i < b.store.Len(); i++ {
			plan = append(plan, b.drawDotLabels(i)...)
		}
	}
	return plan
}

func (b builder) drawXGrid() Primitive {
	grid := GridLines{
		Orientation: OrientVertical,
		Color:       b.Config.X.Grid.Color,
		Width:       1,
	}
	for _, v := range b.XTicks.Values() {
		x := b.Geometry.X.Scale(v) + b.Config.X.Axis.Insets.Left
		grid.Segments = append(grid.Segments, NewSegment(NewPos(x, b.Height), NewPos(x, 0)))
	}
	return grid
}

func (b builder) drawYGrid() Primitive {
	grid := GridLines{
		Orientation: OrientHorizontal,
		Color:       b.Config.Y.Grid.Color,
		Width:       1,
	}
	values := append([]float64{b.store.Min()}, b.YTicks.Values()...)
	for _, v := range values {
		y := b.Bottom(b.Config) - b.Geometry.Y.Scale(v)
		grid.Segments = append(grid.Segments, NewSegment(NewPos(0, y), NewPos(b.Width, y)))
	}
	return grid
}

func (b builder) drawXLabels() []Primitive {
	var (
		count  = b.store.Count()
		labels = b.Config.X.Labels
		step   = b.Geometry.X.Ticks(count).Step
		width  = b.Geometry.X.Scale(step)
		height = labels.Font.LineHeight()
		left   = b.Config.X.Axis.Insets.Left - width/2
		top    = b.Height - height - xLabelMargin
		list   = make([]Primitive, 0, count)
	)
	for i := 0; i < count; i++ {
		list = append(list, Label{
			Type:  KindXLabel,
			Frame: NewRect(left+b.Geometry.X.Scale(float64(i)), top, width, height),
			Text:  labels.Text(i),
			Font:  labels.Font,
			Align: AlignCenter,
			Color: labels.Color,
			Index: i,
		})
	}
	return list
}

func (b builder) drawYLabels() []Primitive {
	var (
		labels = b.Config.Y.Labels
		insets = b.Config.Y.Axis.Insets
		width  = insets.Left - yLabelMargin
		bottom = b.Height - insets.Bottom*1.5
		values = append([]float64{b.store.Min()}, b.YTicks.Values()...)
		list   = make([]Primitive, 0, len(values))
	)
	for i, v := range values {
		list = append(list, Label{
			Type:  KindYLabel,
			Frame: NewRect(0, bottom-b.Geometry.Y.Scale(v), width, insets.Bottom),
			Text:  FormatValue(v, 0),
			Font:  labels.Font,
			Align: AlignRight,
			Color: labels.Color,
			Index: i,
		})
	}
	return list
}

func (b builder) drawLine(serie int) (Primitive, bool) {
	data, ok := b.store.Serie(serie)
	if !ok || len(data) == 0 {
		return nil, false
	}
	line := Polyline{
		Serie:  serie,
		Color:  b.SerieColor(serie),
		Width:  b.LineWidth,
		Points: make([]Pos, 0, len(data)),
	}
	for i, v := range data {
		if !finite(v) {
			continue
		}
		line.Points = append(line.Points, b.Point(b.Config, i, v))
	}
	return line, true
}

// drawDotLabels labels every point of a serie but the first one.
func (b builder) drawDotLabels(serie int) []Primitive {
	data, ok := b.store.Serie(serie)
	if !ok || len(data) == 0 {
		return nil
	}
	var (
		dots   = b.DotLabels
		bottom = b.Bottom(b.Config) - dotMargin
		list   []Primitive
	)
	for i := 1; i < len(data); i++ {
		if !finite(data[i]) {
			continue
		}
		var (
			text   = FormatValue(data[i], dots.Precision)
			width  = dots.Font.TextWidth(text)
			height = dots.Font.LineHeight()
			x      = b.Geometry.X.Scale(float64(i)) + b.Config.X.Axis.Insets.Left - width/2
			y      = bottom - b.Geometry.Y.Scale(data[i]) - height
		)
		list = append(list, Label{
			Type:        KindDotLabel,
			Frame:       NewRect(x, y, width, height),
			Text:        text,
			Font:        dots.Font,
			Align:       AlignCenter,
			Color:       dots.Color,
			Stroke:      dots.StrokeColor,
			StrokeWidth: dots.StrokeWidth,
			Serie:       serie,
			Index:       i,
		})
	}
	return list
}

func drawBaseline(geo Geometry, cfg Config) Primitive {
	return Baseline{
		Segment: NewSegment(NewPos(0, geo.Height), NewPos(geo.Width, geo.Height)),
		Color:   cfg.X.Grid.Color,
		Width:   1,
	}
}

// FormatValue rounds v half away from zero to the given number of decimals.
func FormatValue(v float64, places int32) string {
	if !finite(v) {
		return ""
	}
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(v).Round(places).String()
}
