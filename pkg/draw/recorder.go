package draw

import "image/color"

// OpKind identifies a recorded drawing call
type OpKind int

const (
	OpRect OpKind = iota
	OpGradient
	OpPolygon
	OpPolyline
	OpEllipse
	OpEllipseStroke
)

// Op is one recorded drawing call
type Op struct {
	Kind   OpKind
	Points []Point // Polygon/polyline vertices, or the rect/ellipse origin and extent
	Color  color.RGBA
	Width  float64 // Stroke width
	Glow   Glow    // Glow in effect when the call was made
}

// Recorder is a Surface that remembers every call instead of drawing.
// Headless runs and tests render into it.
type Recorder struct {
	W, H int
	Ops  []Op
	glow Glow
}

// NewRecorder creates a recorder reporting the given frame size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Reset drops the recorded calls, keeping the frame size
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.glow = Glow{}
}

// Count returns how many calls of the given kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of one kind painted with color c
func (r *Recorder) Filter(kind OpKind, c color.RGBA) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind && op.Color == c {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Points: []Point{{x, y}, {w, h}}, Color: c, Glow: r.glow})
}

func (r *Recorder) FillGradient(x, y, w, h float64, g Gradient) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Points: []Point{{x, y}, {w, h}}, Color: g.Top, Glow: r.glow})
}

func (r *Recorder) FillPolygon(pts []Point, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: append([]Point(nil), pts...), Color: c, Glow: r.glow})
}

func (r *Recorder) StrokePolyline(pts []Point, width float64, c color.RGBA, closed bool) {
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: append([]Point(nil), pts...), Color: c, Width: width, Glow: r.glow})
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpEllipse, Points: []Point{{cx, cy}, {rx, ry}}, Color: c, Glow: r.glow})
}

func (r *Recorder) StrokeEllipse(cx, cy, rx, ry, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpEllipseStroke, Points: []Point{{cx, cy}, {rx, ry}}, Color: c, Width: width, Glow: r.glow})
}

func (r *Recorder) SetGlow(g Glow) { r.glow = g }
