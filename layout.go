package linechart

type Bounds struct {
	Width  float64
	Height float64
}

func NewBounds(w, h float64) Bounds {
	return Bounds{
		Width:  w,
		Height: h,
	}
}

// Geometry holds the scales derived from the bounds, the insets and the data.
// It is never set by callers: ComputeGeometry builds a new one each time.
type Geometry struct {
	Bounds

	DrawingWidth  float64
	DrawingHeight float64

	X      LinearScale
	Y      LinearScale
	XTicks Ticks
	YTicks Ticks
}

func ComputeGeometry(bounds Bounds, store *Store, cfg Config) Geometry {
	g := Geometry{
		Bounds:        bounds,
		DrawingWidth:  bounds.Width - cfg.X.Axis.Insets.Horizontal(),
		DrawingHeight: bounds.Height - cfg.Y.Axis.Insets.Vertical(),
	}
	g.Y = NewLinearScale(store.Domain(), NewRange(0, g.DrawingHeight))
	g.YTicks = g.Y.Ticks(cfg.Y.Grid.Count)

	var count float64
	if store.HasData() {
		count = float64(store.Count())
	}
	g.X = NewLinearScale(NewDomain(0, count-1), NewRange(0, g.DrawingWidth))
	g.XTicks = g.X.Ticks(cfg.X.Grid.Count)
	return g
}

// Bottom is the vertical position of the domain minimum.
func (g Geometry) Bottom(cfg Config) float64 {
	return g.Height - cfg.Y.Axis.Insets.Bottom
}

// Point gives the position of the value at index i of a serie.
func (g Geometry) Point(cfg Config, i int, value float64) Pos {
	return Pos{
		X: g.X.Scale(float64(i)) + cfg.X.Axis.Insets.Left,
		Y: g.Bottom(cfg) - g.Y.Scale(value),
	}
}
