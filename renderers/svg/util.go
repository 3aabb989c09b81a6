package svg

import (
	"math"
	"strconv"
	"strings"

	"github.com/jrawgo/jraw"
	"github.com/tdewolff/minify/v2"
)

// Precision is the number of decimals written for coordinates.
var Precision = 3

type dec float64

func (f dec) String() string {
	s := strconv.FormatFloat(float64(f), 'f', Precision, 64)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

// pathData returns the SVG path data of a flattened path.
func pathData(p *jraw.Path) string {
	sb := strings.Builder{}
	for _, sp := range p.Subpaths() {
		if len(sp.Points) < 2 {
			continue
		}
		for i, pt := range sp.Points {
			if i == 0 {
				sb.WriteByte('M')
			} else {
				sb.WriteByte('L')
			}
			sb.WriteString(dec(pt.X).String())
			sb.WriteByte(' ')
			sb.WriteString(dec(pt.Y).String())
		}
		if sp.Closed {
			sb.WriteByte('z')
		}
	}
	return sb.String()
}
