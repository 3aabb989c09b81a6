package eps

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/jrawgo/jraw"
	"github.com/tdewolff/test"
)

func TestEPS(t *testing.T) {
	rec := jraw.NewRecorder(100, 100)
	jraw.New(rec).NoStroke().Fill(jraw.Red).Rect(10, 20, 30, 40)

	buf := &bytes.Buffer{}
	test.Error(t, Writer(buf, rec))
	s := buf.String()
	test.That(t, strings.HasPrefix(s, "%!PS-Adobe-3.0 EPSF-3.0\n%%BoundingBox: 0 0 100 100\n"), s)
	test.That(t, strings.Contains(s, "setrgbcolor newpath 10 80 moveto 40 80 lineto 40 40 lineto 10 40 lineto closepath fill"), s)
	test.That(t, strings.HasSuffix(s, "showpage\n%%EOF\n"), s)
}

func TestEPSStroke(t *testing.T) {
	buf := &bytes.Buffer{}
	eps := New(buf, 100, 100)
	jraw.New(eps).NoFill().StrokeWeight(2).LineCap(jraw.RoundCap).LineJoin(jraw.BevelJoin).Line(10, 10, 20, 10)
	test.Error(t, eps.Close())
	test.That(t, strings.Contains(buf.String(), " 2 setlinewidth 1 setlinecap 2 setlinejoin newpath 10 90 moveto 20 90 lineto stroke"), buf.String())

	// the color is only written when it changes
	test.That(t, !strings.Contains(buf.String(), "setrgbcolor"), buf.String())
}

func TestEPSText(t *testing.T) {
	buf := &bytes.Buffer{}
	eps := New(buf, 100, 100)
	jraw.New(eps).NoStroke().Fill(jraw.Red).Text("jraw", 10, 50)
	test.Error(t, eps.Close())
	s := buf.String()
	test.That(t, strings.Contains(s, "1 0 0 setrgbcolor newpath "), s)
	test.T(t, strings.Count(s, " fill"), 1)
	test.That(t, strings.Contains(s, "closepath"), s)
}

func TestEPSImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, jraw.Red)
	img.SetRGBA(1, 0, jraw.Blue)

	buf := &bytes.Buffer{}
	eps := New(buf, 100, 100)
	jraw.New(eps).ImageRect(img, 0, 0, 10, 10)
	test.Error(t, eps.Close())
	s := buf.String()
	test.That(t, strings.Contains(s, " gsave [10 0 0 -10 0 100] concat /picstr 6 string def 2 1 8 [2 0 0 1 0 0] {currentfile picstr readhexstring pop} false 3 colorimage\nff00000000ff\n grestore"), s)
}
