package jraw

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type pathParser struct {
	d   []byte
	i   int
	err error
}

func (p *pathParser) num() float64 {
	if p.err != nil {
		return 0.0
	}
	p.i += skipCommaWhitespace(p.d[p.i:])
	f, n := strconv.ParseFloat(p.d[p.i:])
	if n == 0 {
		p.err = fmt.Errorf("bad path: expected number at position %d", p.i)
		return 0.0
	}
	p.i += n
	return f
}

func (p *pathParser) flag() bool {
	if p.err != nil {
		return false
	}
	p.i += skipCommaWhitespace(p.d[p.i:])
	if p.i < len(p.d) && (p.d[p.i] == '0' || p.d[p.i] == '1') {
		p.i++
		return p.d[p.i-1] == '1'
	}
	p.err = fmt.Errorf("bad path: expected flag at position %d", p.i)
	return false
}

// ParseSVGPath parses SVG path data and replays it onto b. Arcs are converted to center parametrization and replayed as ellipses.
func ParseSVGPath(d string, b PathBuilder) error {
	p := &pathParser{d: []byte(d)}

	var cmd, prevCmd byte
	x, y := 0.0, 0.0     // current point
	x0, y0 := 0.0, 0.0   // start of subpath
	cpx, cpy := 0.0, 0.0 // last control point
	for {
		p.i += skipCommaWhitespace(p.d[p.i:])
		if len(p.d) <= p.i {
			break
		}
		if c := p.d[p.i]; 'A' <= c && c <= 'z' {
			cmd = c
			p.i++
		} else if prevCmd == 0 {
			return fmt.Errorf("bad path: must start with a command")
		} else if cmd == 'Z' || cmd == 'z' {
			return fmt.Errorf("bad path: unexpected number after close at position %d", p.i)
		} else if cmd == 'M' {
			cmd = 'L' // subsequent coordinate pairs are implicit lines
		} else if cmd == 'm' {
			cmd = 'l'
		}

		switch cmd {
		case 'M', 'm':
			a, c := p.num(), p.num()
			if cmd == 'm' {
				a += x
				c += y
			}
			b.MoveTo(a, c)
			x, y = a, c
			x0, y0 = a, c
		case 'Z', 'z':
			b.ClosePath()
			x, y = x0, y0
		case 'L', 'l':
			a, c := p.num(), p.num()
			if cmd == 'l' {
				a += x
				c += y
			}
			b.LineTo(a, c)
			x, y = a, c
		case 'H', 'h':
			a := p.num()
			if cmd == 'h' {
				a += x
			}
			b.LineTo(a, y)
			x = a
		case 'V', 'v':
			c := p.num()
			if cmd == 'v' {
				c += y
			}
			b.LineTo(x, c)
			y = c
		case 'C', 'c', 'S', 's':
			var x1, y1 float64
			if cmd == 'C' || cmd == 'c' {
				x1, y1 = p.num(), p.num()
				if cmd == 'c' {
					x1 += x
					y1 += y
				}
			} else if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				x1, y1 = 2*x-cpx, 2*y-cpy
			} else {
				x1, y1 = x, y
			}
			x2, y2, ex, ey := p.num(), p.num(), p.num(), p.num()
			if cmd == 'c' || cmd == 's' {
				x2 += x
				y2 += y
				ex += x
				ey += y
			}
			b.BezierCurveTo(x1, y1, x2, y2, ex, ey)
			cpx, cpy = x2, y2
			x, y = ex, ey
		case 'Q', 'q', 'T', 't':
			var x1, y1 float64
			if cmd == 'Q' || cmd == 'q' {
				x1, y1 = p.num(), p.num()
				if cmd == 'q' {
					x1 += x
					y1 += y
				}
			} else if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				x1, y1 = 2*x-cpx, 2*y-cpy
			} else {
				x1, y1 = x, y
			}
			ex, ey := p.num(), p.num()
			if cmd == 'q' || cmd == 't' {
				ex += x
				ey += y
			}
			b.QuadraticCurveTo(x1, y1, ex, ey)
			cpx, cpy = x1, y1
			x, y = ex, ey
		case 'A', 'a':
			rx, ry, rot := p.num(), p.num(), p.num()
			large, sweep := p.flag(), p.flag()
			ex, ey := p.num(), p.num()
			if cmd == 'a' {
				ex += x
				ey += y
			}
			if p.err != nil {
				break
			}
			if rx == 0.0 || ry == 0.0 {
				b.LineTo(ex, ey)
			} else if x != ex || y != ey {
				phi := rot * math.Pi / 180.0
				cx, cy, rx, ry, theta1, theta2 := arcToCenter(x, y, math.Abs(rx), math.Abs(ry), phi, large, sweep, ex, ey)
				b.Ellipse(cx, cy, rx, ry, phi, theta1, theta2, !sweep)
			}
			x, y = ex, ey
		default:
			return fmt.Errorf("bad path: unknown command %q at position %d", cmd, p.i-1)
		}
		if p.err != nil {
			return p.err
		}
		prevCmd = cmd
	}
	return nil
}

// arcToCenter converts the endpoint parametrization of an elliptical arc to its center parametrization. Radii that are too small are scaled up.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2 + sinphi*(y1-y2)/2
	y1p := -sinphi*(x1-x2)/2 + cosphi*(y1-y2)/2

	// reduce rouding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < radiiCheck {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0 {
		theta = -theta
	}

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0 {
		delta = -delta
	}
	if !sweep && 0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta, theta + delta
}
