package linechart

type Kind int

const (
	KindGrid Kind = iota
	KindXLabel
	KindYLabel
	KindLine
	KindDotLabel
	KindBaseline
)

func (k Kind) String() string {
	switch k {
	case KindGrid:
		return "grid"
	case KindXLabel:
		return "x-label"
	case KindYLabel:
		return "y-label"
	case KindLine:
		return "line"
	case KindDotLabel:
		return "dot-label"
	case KindBaseline:
		return "baseline"
	default:
		return "unknown"
	}
}

type Orientation int

const (
	OrientHorizontal Orientation = iota
	OrientVertical
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

type Rect struct {
	Pos
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Pos: NewPos(x, y),
		W:   w,
		H:   h,
	}
}

func (r Rect) Center() Pos {
	return NewPos(r.X+r.W/2, r.Y+r.H/2)
}

type Segment struct {
	From Pos
	To   Pos
}

func NewSegment(from, to Pos) Segment {
	return Segment{
		From: from,
		To:   to,
	}
}

// Primitive is one drawing operation of a plan.
type Primitive interface {
	Kind() Kind
}

// GridLines is a set of parallel lines. Vertical grids follow the x ticks,
// horizontal grids the y ticks.
type GridLines struct {
	Orientation
	Segments []Segment
	Color    string
	Width    float64
}

func (GridLines) Kind() Kind {
	return KindGrid
}

type Label struct {
	Type  Kind
	Frame Rect
	Text  string
	Font  Font
	Align Alignment
	Color string

	// Stroke is the outline color, empty when the text has none.
	Stroke      string
	StrokeWidth float64

	Serie int
	Index int
}

func (l Label) Kind() Kind {
	return l.Type
}

type Polyline struct {
	Serie  int
	Points []Pos
	Color  string
	Width  float64
}

func (Polyline) Kind() Kind {
	return KindLine
}

type Baseline struct {
	Segment
	Color string
	Width float64
}

func (Baseline) Kind() Kind {
	return KindBaseline
}

// Filter keeps the primitives of the given kind.
func Filter(plan []Primitive, kind Kind) []Primitive {
	var list []Primitive
	for _, p := range plan {
		if p.Kind() == kind {
			list = append(list, p)
		}
	}
	return list
}
