package linechart

import (
	"bufio"
	"io"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// Render paints a plan as an svg document of the given size.
func Render(w io.Writer, bounds Bounds, plan []Primitive) error {
	el := svg.NewSVG(svg.WithDimension(bounds.Width, bounds.Height))
	el.OmitProlog = true

	for _, p := range plan {
		if e := renderPrimitive(p); e != nil {
			el.Append(e)
		}
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func renderPrimitive(p Primitive) svg.Element {
	switch p := p.(type) {
	case GridLines:
		return renderGrid(p)
	case Polyline:
		return renderPolyline(p)
	case Label:
		return renderLabel(p)
	case Baseline:
		return renderBaseline(p)
	default:
		return nil
	}
}

func renderGrid(g GridLines) svg.Element {
	if len(g.Segments) == 0 {
		return nil
	}
	class := "grid-x"
	if g.Orientation == OrientHorizontal {
		class = "grid-y"
	}
	var (
		grp = getBaseGroup("", "grid", class)
		pat = getBasePath(g.Color, g.Width)
	)
	for _, s := range g.Segments {
		pat.AbsMoveTo(svg.NewPos(s.From.X, s.From.Y))
		pat.AbsLineTo(svg.NewPos(s.To.X, s.To.Y))
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func renderPolyline(p Polyline) svg.Element {
	if len(p.Points) == 0 {
		return nil
	}
	var (
		grp = getBaseGroup("", "line")
		pat = getBasePath(p.Color, p.Width)
		pos = slices.Fst(p.Points)
	)
	pat.AbsMoveTo(svg.NewPos(pos.X, pos.Y))
	for _, pt := range slices.Rest(p.Points) {
		pat.AbsLineTo(svg.NewPos(pt.X, pt.Y))
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func renderLabel(l Label) svg.Element {
	if l.Text == "" {
		return nil
	}
	grp := getBaseGroup("", l.Type.String())
	if l.Stroke != "" && l.StrokeWidth > 0 {
		outline := getBaseGroup(l.Stroke)
		outline.Stroke = svg.NewStroke(l.Stroke, l.StrokeWidth)
		txt := getLabelText(l)
		outline.Append(txt.AsElement())
		grp.Append(outline.AsElement())
	}
	fill := svg.NewGroup()
	fill.Fill = svg.NewFill(l.Color)
	txt := getLabelText(l)
	fill.Append(txt.AsElement())
	grp.Append(fill.AsElement())
	return grp.AsElement()
}

func renderBaseline(b Baseline) svg.Element {
	li := svg.NewLine(svg.NewPos(b.From.X, b.From.Y), svg.NewPos(b.To.X, b.To.Y))
	li.Stroke = svg.NewStroke(b.Color, b.Width)
	return li.AsElement()
}

func getLabelText(l Label) svg.Text {
	var (
		anchor = "middle"
		pos    = l.Frame.Center()
	)
	switch l.Align {
	case AlignLeft:
		anchor = "start"
		pos.X = l.Frame.X
	case AlignRight:
		anchor = "end"
		pos.X = l.Frame.X + l.Frame.W
	default:
	}
	txt := svg.NewText(l.Text)
	txt.Pos = svg.NewPos(pos.X, pos.Y)
	txt.Font = svg.NewFont(l.Font.Size, l.Font.Families...)
	if l.Font.Bold {
		txt.Font.Weight = "bold"
	}
	txt.Anchor = anchor
	txt.Baseline = "middle"
	return txt
}

func getBasePath(color string, width float64) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color, width)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
