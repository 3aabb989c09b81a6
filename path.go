package jraw

import (
	"math"
)

// Tolerance is the maximum deviation in device units when flattening curves and arcs into line segments.
var Tolerance = 0.1

// PathBuilder is the path construction part of the canvas API.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	Rect(x, y, w, h float64)
	Arc(x, y, r, start, end float64, ccw bool)
	Ellipse(x, y, rx, ry, rot, start, end float64, ccw bool)
	ClosePath()
}

// Subpath is a polyline in device space.
type Subpath struct {
	Points []Vector
	Closed bool
}

// Path is a flattened path for software backends. Coordinates are transformed by the path's matrix when they are added, like the canvas context does, so that changing the transformation halfway through a path only affects later segments.
type Path struct {
	m        Matrix
	subpaths []Subpath
}

// NewPath returns an empty path with the identity transformation.
func NewPath() *Path {
	return &Path{m: Identity}
}

// SetMatrix sets the transformation applied to subsequently added coordinates.
func (p *Path) SetMatrix(m Matrix) {
	p.m = m
}

// Reset removes all subpaths.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	for _, sp := range p.subpaths {
		if 1 < len(sp.Points) {
			return false
		}
	}
	return true
}

// Subpaths returns the flattened subpaths.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Bounds returns the bounding box in device space.
func (p *Path) Bounds() (float64, float64, float64, float64) {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, sp := range p.subpaths {
		for _, pt := range sp.Points {
			x0, y0 = math.Min(x0, pt.X), math.Min(y0, pt.Y)
			x1, y1 = math.Max(x1, pt.X), math.Max(y1, pt.Y)
		}
	}
	if math.IsInf(x0, 1) {
		return 0.0, 0.0, 0.0, 0.0
	}
	return x0, y0, x1, y1
}

// current returns the subpath being extended, starting a new one after a close.
func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}
	sp := &p.subpaths[len(p.subpaths)-1]
	if sp.Closed {
		start := sp.Points[0]
		p.subpaths = append(p.subpaths, Subpath{Points: []Vector{start}})
		sp = &p.subpaths[len(p.subpaths)-1]
	}
	return sp
}

func (p *Path) pos() (Vector, bool) {
	if len(p.subpaths) == 0 {
		return Vector{}, false
	}
	sp := p.subpaths[len(p.subpaths)-1]
	if sp.Closed {
		return sp.Points[0], true
	}
	return sp.Points[len(sp.Points)-1], true
}

func (p *Path) moveToDevice(pt Vector) {
	if n := len(p.subpaths); 0 < n && len(p.subpaths[n-1].Points) == 1 {
		p.subpaths[n-1].Points[0] = pt
		p.subpaths[n-1].Closed = false
		return
	}
	p.subpaths = append(p.subpaths, Subpath{Points: []Vector{pt}})
}

func (p *Path) lineToDevice(pt Vector) {
	sp := p.current()
	if sp == nil {
		p.moveToDevice(pt)
		return
	}
	sp.Points = append(sp.Points, pt)
}

func (p *Path) dot(x, y float64) Vector {
	x, y = p.m.Dot(x, y)
	return Vector{x, y}
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.moveToDevice(p.dot(x, y))
}

// LineTo adds a linear segment to (x,y). Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	p.lineToDevice(p.dot(x, y))
}

// QuadraticCurveTo adds a quadratic Bézier to (x,y) with control point (cpx,cpy).
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) {
	start, ok := p.pos()
	if !ok {
		p.MoveTo(cpx, cpy)
		start = p.dot(cpx, cpy)
	}
	cp, end := p.dot(cpx, cpy), p.dot(x, y)
	n := segments(start.Dist(cp) + cp.Dist(end))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1.0 - t
		p.lineToDevice(Vector{
			mt*mt*start.X + 2.0*mt*t*cp.X + t*t*end.X,
			mt*mt*start.Y + 2.0*mt*t*cp.Y + t*t*end.Y,
		})
	}
}

// BezierCurveTo adds a cubic Bézier to (x,y) with control points (cp1x,cp1y) and (cp2x,cp2y).
func (p *Path) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	start, ok := p.pos()
	if !ok {
		p.MoveTo(cp1x, cp1y)
		start = p.dot(cp1x, cp1y)
	}
	cp1, cp2, end := p.dot(cp1x, cp1y), p.dot(cp2x, cp2y), p.dot(x, y)
	n := segments(start.Dist(cp1) + cp1.Dist(cp2) + cp2.Dist(end))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1.0 - t
		a, b, c, d := mt*mt*mt, 3.0*mt*mt*t, 3.0*mt*t*t, t*t*t
		p.lineToDevice(Vector{
			a*start.X + b*cp1.X + c*cp2.X + d*end.X,
			a*start.Y + b*cp1.Y + c*cp2.Y + d*end.Y,
		})
	}
}

// Rect adds a closed rectangular subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Arc adds a circular arc around (x,y), see Ellipse.
func (p *Path) Arc(x, y, r, start, end float64, ccw bool) {
	p.Ellipse(x, y, r, r, 0.0, start, end, ccw)
}

// Ellipse adds an elliptical arc around (x,y) with radii rx and ry, rotated by rot, from angle start to end in radians. A line is added from the current point to the start of the arc.
func (p *Path) Ellipse(x, y, rx, ry, rot, start, end float64, ccw bool) {
	sweep := arcSweep(start, end, ccw)
	sinrot, cosrot := math.Sincos(rot)
	at := func(theta float64) Vector {
		sin, cos := math.Sincos(theta)
		return p.dot(x+rx*cos*cosrot-ry*sin*sinrot, y+rx*cos*sinrot+ry*sin*cosrot)
	}

	p.lineToDevice(at(start))
	n := arcSegments(math.Max(rx, ry)*p.m.Scaling(), sweep)
	for i := 1; i <= n; i++ {
		p.lineToDevice(at(start + sweep*float64(i)/float64(n)))
	}
}

// ClosePath closes the current subpath, the next segment starts at its first point.
func (p *Path) ClosePath() {
	if n := len(p.subpaths); 0 < n {
		p.subpaths[n-1].Closed = true
	}
}

// arcSweep returns the signed angle swept from start to end, following the canvas rules.
func arcSweep(start, end float64, ccw bool) float64 {
	if !ccw {
		if 2.0*math.Pi <= end-start {
			return 2.0 * math.Pi
		}
		return angleNorm(end - start)
	}
	if 2.0*math.Pi <= start-end {
		return -2.0 * math.Pi
	}
	return -angleNorm(start - end)
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

func segments(length float64) int {
	n := int(math.Ceil(math.Sqrt(length / Tolerance)))
	if n < 1 {
		return 1
	} else if 256 < n {
		return 256
	}
	return n
}

func arcSegments(r, sweep float64) int {
	if sweep == 0.0 {
		return 0
	}
	step := math.Pi / 4.0
	if Tolerance < r {
		step = math.Min(step, 2.0*math.Acos(1.0-Tolerance/r))
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	if 1024 < n {
		n = 1024
	}
	return n
}
