package jraw

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TextAlign is the horizontal alignment of text relative to its anchor point.
type TextAlign int

// see TextAlign
const (
	StartAlign TextAlign = iota
	EndAlign
	LeftAlign
	RightAlign
	CenterAlign
)

var textAligns = []string{"start", "end", "left", "right", "center"}

func (a TextAlign) String() string {
	if 0 <= a && int(a) < len(textAligns) {
		return textAligns[a]
	}
	return "start"
}

// ParseTextAlign parses a canvas textAlign keyword.
func ParseTextAlign(s string) (TextAlign, error) {
	for i, name := range textAligns {
		if strings.EqualFold(s, name) {
			return TextAlign(i), nil
		}
	}
	return StartAlign, fmt.Errorf("unknown text align: %s", s)
}

// TextBaseline is the vertical alignment of text relative to its anchor point.
type TextBaseline int

// see TextBaseline
const (
	AlphabeticBaseline TextBaseline = iota
	TopBaseline
	HangingBaseline
	MiddleBaseline
	IdeographicBaseline
	BottomBaseline
)

var textBaselines = []string{"alphabetic", "top", "hanging", "middle", "ideographic", "bottom"}

func (b TextBaseline) String() string {
	if 0 <= b && int(b) < len(textBaselines) {
		return textBaselines[b]
	}
	return "alphabetic"
}

// ParseTextBaseline parses a canvas textBaseline keyword.
func ParseTextBaseline(s string) (TextBaseline, error) {
	for i, name := range textBaselines {
		if strings.EqualFold(s, name) {
			return TextBaseline(i), nil
		}
	}
	return AlphabeticBaseline, fmt.Errorf("unknown text baseline: %s", s)
}

// Font is a font as set by the canvas font property.
type Font struct {
	Size   float64 // in pixels
	Bold   bool
	Italic bool
	Family string
}

// DefaultFont is the initial font of a canvas context.
var DefaultFont = Font{Size: 10.0, Family: "sans-serif"}

// ParseFont parses a CSS font shorthand such as "italic bold 16px serif". Only pixel, point, and em sizes are supported, an em is taken to be the default font size.
func ParseFont(s string) (Font, error) {
	f := Font{}
	fields := strings.Fields(s)
	for i, field := range fields {
		switch strings.ToLower(field) {
		case "normal", "small-caps":
			continue
		case "italic", "oblique":
			f.Italic = true
			continue
		case "bold", "bolder", "600", "700", "800", "900":
			f.Bold = true
			continue
		}

		size, ok := parseFontSize(field)
		if !ok {
			return Font{}, fmt.Errorf("bad font: %s", s)
		}
		family := strings.Join(fields[i+1:], " ")
		if family == "" {
			return Font{}, fmt.Errorf("bad font: missing family in %s", s)
		}
		f.Size = size
		f.Family = family
		return f, nil
	}
	return Font{}, fmt.Errorf("bad font: missing size in %s", s)
}

func parseFontSize(s string) (float64, bool) {
	if i := strings.IndexByte(s, '/'); i != -1 {
		s = s[:i] // line height
	}
	scale := 1.0
	if strings.HasSuffix(s, "px") {
		s = s[:len(s)-2]
	} else if strings.HasSuffix(s, "pt") {
		s, scale = s[:len(s)-2], 4.0/3.0
	} else if strings.HasSuffix(s, "rem") {
		s, scale = s[:len(s)-3], DefaultFont.Size
	} else if strings.HasSuffix(s, "em") {
		s, scale = s[:len(s)-2], DefaultFont.Size
	} else {
		return 0.0, false
	}
	size, err := strconv.ParseFloat(s, 64)
	if err != nil || size <= 0.0 {
		return 0.0, false
	}
	return size * scale, true
}

func (f Font) String() string {
	sb := strings.Builder{}
	if f.Italic {
		sb.WriteString("italic ")
	}
	if f.Bold {
		sb.WriteString("bold ")
	}
	sb.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	sb.WriteString("px ")
	sb.WriteString(f.Family)
	return sb.String()
}

// Monospace returns true if the family asks for a fixed-width font.
func (f Font) Monospace() bool {
	family := strings.ToLower(f.Family)
	return strings.Contains(family, "mono") || strings.Contains(family, "courier")
}

var (
	fontsOnce sync.Once
	fonts     map[string]*sfnt.Font
)

// face returns the Go font that stands in for the font family.
func (f Font) face() *sfnt.Font {
	fontsOnce.Do(func() {
		fonts = map[string]*sfnt.Font{}
		for name, ttf := range map[string][]byte{
			"regular":        goregular.TTF,
			"bold":           gobold.TTF,
			"italic":         goitalic.TTF,
			"bolditalic":     gobolditalic.TTF,
			"mono":           gomono.TTF,
			"monobold":       gomonobold.TTF,
			"monoitalic":     gomonoitalic.TTF,
			"monobolditalic": gomonobolditalic.TTF,
		} {
			sf, err := sfnt.Parse(ttf)
			if err != nil {
				panic("jraw: bad embedded font " + name + ": " + err.Error())
			}
			fonts[name] = sf
		}
	})

	name := ""
	if f.Monospace() {
		name = "mono"
	}
	if f.Bold {
		name += "bold"
	}
	if f.Italic {
		name += "italic"
	}
	if name == "" {
		name = "regular"
	}
	return fonts[name]
}

func (f Font) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.Size*64.0 + 0.5)
}

func fromI26_6(f fixed.Int26_6) float64 {
	return float64(f) / 64.0
}

// MeasureText returns the advance width of text set in f, including kerning.
func MeasureText(text string, f Font) float64 {
	sf := f.face()
	buf := &sfnt.Buffer{}
	return fromI26_6(advance(sf, buf, text, f.ppem()))
}

func advance(sf *sfnt.Font, buf *sfnt.Buffer, text string, ppem fixed.Int26_6) fixed.Int26_6 {
	w := fixed.Int26_6(0)
	prev := sfnt.GlyphIndex(0)
	for i, r := range text {
		idx, err := sf.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		if 0 < i {
			if kern, err := sf.Kern(buf, prev, idx, ppem, font.HintingNone); err == nil {
				w += kern
			}
		}
		if adv, err := sf.GlyphAdvance(buf, idx, ppem, font.HintingNone); err == nil {
			w += adv
		}
		prev = idx
	}
	return w
}

// TextOutline adds the glyph outlines of text set in f to b, anchored at (x,y) according to align and baseline. Text is laid out left to right, so start aligns like left.
func TextOutline(b PathBuilder, text string, x, y float64, f Font, align TextAlign, baseline TextBaseline) error {
	sf := f.face()
	buf := &sfnt.Buffer{}
	ppem := f.ppem()

	switch align {
	case CenterAlign:
		x -= fromI26_6(advance(sf, buf, text, ppem)) / 2.0
	case EndAlign, RightAlign:
		x -= fromI26_6(advance(sf, buf, text, ppem))
	}

	if baseline != AlphabeticBaseline {
		metrics, err := sf.Metrics(buf, ppem, font.HintingNone)
		if err != nil {
			return err
		}
		ascent, descent := fromI26_6(metrics.Ascent), fromI26_6(metrics.Descent)
		switch baseline {
		case TopBaseline, HangingBaseline:
			y += ascent
		case MiddleBaseline:
			y += (ascent - descent) / 2.0
		case IdeographicBaseline, BottomBaseline:
			y -= descent
		}
	}

	dot := fixed.Int26_6(0)
	prev := sfnt.GlyphIndex(0)
	for i, r := range text {
		idx, err := sf.GlyphIndex(buf, r)
		if err != nil {
			return err
		}
		if 0 < i {
			if kern, err := sf.Kern(buf, prev, idx, ppem, font.HintingNone); err == nil {
				dot += kern
			}
		}
		segments, err := sf.LoadGlyph(buf, idx, ppem, nil)
		if err != nil {
			return err
		}
		ox := x + fromI26_6(dot)
		open := false
		for _, seg := range segments {
			a := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					b.ClosePath()
				}
				b.MoveTo(ox+fromI26_6(a[0].X), y+fromI26_6(a[0].Y))
				open = true
			case sfnt.SegmentOpLineTo:
				b.LineTo(ox+fromI26_6(a[0].X), y+fromI26_6(a[0].Y))
			case sfnt.SegmentOpQuadTo:
				b.QuadraticCurveTo(ox+fromI26_6(a[0].X), y+fromI26_6(a[0].Y), ox+fromI26_6(a[1].X), y+fromI26_6(a[1].Y))
			case sfnt.SegmentOpCubeTo:
				b.BezierCurveTo(ox+fromI26_6(a[0].X), y+fromI26_6(a[0].Y), ox+fromI26_6(a[1].X), y+fromI26_6(a[1].Y), ox+fromI26_6(a[2].X), y+fromI26_6(a[2].Y))
			}
		}
		if open {
			b.ClosePath()
		}

		adv, err := sf.GlyphAdvance(buf, idx, ppem, font.HintingNone)
		if err != nil {
			return err
		}
		dot += adv
		prev = idx
	}
	return nil
}
