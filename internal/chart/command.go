package chart

import (
	"fmt"
	"image/color"
)

// SegmentOp identifies a path segment.
type SegmentOp int

const (
	MoveTo SegmentOp = iota + 1
	LineTo
	ArcTo
	Close
)

var segmentOpNames = [...]string{
	MoveTo: "MoveTo",
	LineTo: "LineTo",
	ArcTo:  "ArcTo",
	Close:  "Close",
}

func (op SegmentOp) String() string {
	if op > 0 && int(op) < len(segmentOpNames) && segmentOpNames[op] != "" {
		return segmentOpNames[op]
	}
	return "Unknown"
}

// Segment is one element of a Path. MoveTo and LineTo use X/Y. ArcTo
// describes a circular arc centered on CX/CY with radius R, swept from
// angle A0 to A1 (radians, increasing angles turn clockwise on a y-down
// surface). Like cairo, an arc first draws a line from the current point
// to its start.
type Segment struct {
	Op     SegmentOp
	X, Y   float64
	CX, CY float64
	R      float64
	A0, A1 float64
}

func (s Segment) String() string {
	switch s.Op {
	case MoveTo, LineTo:
		return fmt.Sprintf("%s(%g,%g)", s.Op, s.X, s.Y)
	case ArcTo:
		return fmt.Sprintf("ArcTo(c=%g,%g r=%g %g..%g)", s.CX, s.CY, s.R, s.A0, s.A1)
	default:
		return s.Op.String()
	}
}

// Path is an ordered list of segments.
type Path []Segment

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool { return len(p) == 0 }

// Closed reports whether the path ends with a Close segment.
func (p Path) Closed() bool { return len(p) > 0 && p[len(p)-1].Op == Close }

// Points returns the end points of all MoveTo and LineTo segments.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p))
	for _, s := range p {
		if s.Op == MoveTo || s.Op == LineTo {
			pts = append(pts, Point{X: s.X, Y: s.Y})
		}
	}
	return pts
}

// Arcs returns the ArcTo segments of the path.
func (p Path) Arcs() []Segment {
	var arcs []Segment
	for _, s := range p {
		if s.Op == ArcTo {
			arcs = append(arcs, s)
		}
	}
	return arcs
}

// Point is a position in surface coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

// pathBuilder mirrors cairo's implicit move: the first LineTo on an empty
// path becomes a MoveTo.
type pathBuilder struct {
	path Path
}

func (b *pathBuilder) lineTo(x, y float64) {
	op := LineTo
	if len(b.path) == 0 {
		op = MoveTo
	}
	b.path = append(b.path, Segment{Op: op, X: x, Y: y})
}

func (b *pathBuilder) arc(cx, cy, r, a0, a1 float64) {
	b.path = append(b.path, Segment{Op: ArcTo, CX: cx, CY: cy, R: r, A0: a0, A1: a1})
}

func (b *pathBuilder) close() {
	if len(b.path) > 0 {
		b.path = append(b.path, Segment{Op: Close})
	}
}

// Kind identifies what a Command does with its path.
type Kind int

const (
	Fill Kind = iota + 1
	Stroke
	Mask
)

var kindNames = [...]string{
	Fill:   "Fill",
	Stroke: "Stroke",
	Mask:   "Mask",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Operator is the compositing rule a command is drawn with.
type Operator int

const (
	// Over paints source over destination.
	Over Operator = iota
	// DestIn keeps destination only where the source path covers it.
	DestIn
)

// LineJoin and LineCap only affect rendering quality.
type (
	LineJoin int
	LineCap  int
)

const (
	JoinMiter LineJoin = iota
	JoinRound
)

const (
	CapButt LineCap = iota
	CapRound
)

// Style carries the paint parameters of a command.
type Style struct {
	Color     color.NRGBA
	LineWidth float64
	Join      LineJoin
	Cap       LineCap
	Operator  Operator
}

// Command is one drawing operation against a surface.
type Command struct {
	Kind  Kind
	Path  Path
	Style Style
}

// Executor issues commands against a concrete drawing surface.
type Executor interface {
	Execute(cmds []Command)
}
