package jraw

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// Transparent when used as a fill or stroke color will draw nothing.
var Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}

var (
	Black   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Gray    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	Red     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green   = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Blue    = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Yellow  = color.RGBA{0xff, 0xff, 0x00, 0xff}
	Magenta = color.RGBA{0xff, 0x00, 0xff, 0xff}
	Cyan    = color.RGBA{0x00, 0xff, 0xff, 0xff}
)

// RGB returns a color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

// RGBA returns a color given by red, green, and blue ∈ [0,255] (non alpha premultiplied) and alpha ∈ [0,1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	if a < 0.0 {
		a = 0.0
	} else if 1.0 < a {
		a = 1.0
	}
	return color.RGBA{
		uint8(a*float64(r) + 0.5),
		uint8(a*float64(g) + 0.5),
		uint8(a*float64(b) + 0.5),
		uint8(a*255.0 + 0.5),
	}
}

// Hex parses a CSS hexadecimal color such as e.g. #ff0000 or F00. Invalid input returns black.
func Hex(s string) color.RGBA {
	col, ok := parseHex(s)
	if !ok {
		return Black
	}
	return col
}

func parseHex(s string) (color.RGBA, bool) {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range s {
		if '0' <= c && c <= '9' {
			h[i] = uint8(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + uint8(c-'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + uint8(c-'A')
		} else {
			return Black, false
		}
	}
	switch len(s) {
	case 3:
		return RGB(h[0]*17, h[1]*17, h[2]*17), true
	case 4:
		return RGBA(h[0]*17, h[1]*17, h[2]*17, float64(h[3]*17)/255.0), true
	case 6:
		return RGB(h[0]*16+h[1], h[2]*16+h[3], h[4]*16+h[5]), true
	case 8:
		return RGBA(h[0]*16+h[1], h[2]*16+h[3], h[4]*16+h[5], float64(h[6]*16+h[7])/255.0), true
	}
	return Black, false
}

// ParseColor parses a CSS color: hexadecimal notation, the rgb() and rgba() functions, or a color keyword.
func ParseColor(s string) (color.RGBA, error) {
	l := css.NewLexer(parse.NewInputString(strings.TrimSpace(s)))
	tt, data := l.Next()
	var col color.RGBA
	switch tt {
	case css.HashToken:
		var ok bool
		if col, ok = parseHex(string(data)); !ok {
			return Black, fmt.Errorf("bad hexadecimal color: %s", s)
		}
	case css.IdentToken:
		name := strings.ToLower(string(data))
		if name == "transparent" {
			col = Transparent
		} else if named, ok := colornames.Map[name]; ok {
			col = named
		} else {
			return Black, fmt.Errorf("unknown color name: %s", s)
		}
	case css.FunctionToken:
		name := strings.ToLower(string(data[:len(data)-1]))
		if name != "rgb" && name != "rgba" {
			return Black, fmt.Errorf("unknown color function: %s", s)
		}
		var err error
		if col, err = parseColorFunction(l); err != nil {
			return Black, fmt.Errorf("bad %s function: %w", name, err)
		}
	default:
		return Black, fmt.Errorf("bad color: %q", s)
	}
	if tt, _ = l.Next(); tt != css.ErrorToken || l.Err() != io.EOF {
		return Black, fmt.Errorf("bad color: trailing data in %q", s)
	}
	return col, nil
}

func parseColorFunction(l *css.Lexer) (color.RGBA, error) {
	comps := []float64{}
	for {
		tt, data := l.Next()
		switch tt {
		case css.WhitespaceToken, css.CommaToken:
			continue
		case css.DelimToken:
			if string(data) != "/" {
				return Black, fmt.Errorf("unexpected %s", data)
			}
			continue
		case css.NumberToken, css.PercentageToken:
			percentage := tt == css.PercentageToken
			if percentage {
				data = data[:len(data)-1]
			}
			f, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return Black, err
			}
			if len(comps) < 3 && percentage {
				f *= 2.55
			} else if len(comps) == 3 && percentage {
				f /= 100.0
			}
			comps = append(comps, f)
			continue
		case css.RightParenthesisToken:
		default:
			return Black, fmt.Errorf("unexpected %s", data)
		}
		break
	}
	if len(comps) != 3 && len(comps) != 4 {
		return Black, fmt.Errorf("expected 3 or 4 components, got %d", len(comps))
	}
	alpha := 1.0
	if len(comps) == 4 {
		alpha = comps[3]
	}
	return RGBA(clampByte(comps[0]), clampByte(comps[1]), clampByte(comps[2]), alpha), nil
}

func clampByte(f float64) uint8 {
	if f < 0.0 {
		return 0
	} else if 255.0 < f {
		return 255
	}
	return uint8(f + 0.5)
}

// CSSColor returns the CSS notation of a color, #rrggbb for opaque colors and rgba() otherwise.
func CSSColor(c color.Color) string {
	col := color.NRGBAModel.Convert(c).(color.NRGBA)
	if col.A == 0xff {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{col.R, col.G, col.B})
		return string(buf)
	}
	buf := make([]byte, 0, 24)
	buf = append(buf, "rgba("...)
	buf = strconv.AppendInt(buf, int64(col.R), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(col.G), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(col.B), 10)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, float64(col.A)/255.0, 'g', 4, 64)
	buf = append(buf, ')')
	return string(buf)
}

// Visible returns false when the color would not draw anything.
func Visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}
