// Package scene reads drawings described in YAML and draws them with jraw.
//
// A scene file sets the canvas size, an optional background color, and an ordered list of commands. Commands without arguments are written as a plain string, all others as a mapping from the command name to its arguments:
//
//	width: 200
//	height: 100
//	background: white
//	commands:
//	  - fill: "#f00"
//	  - nostroke
//	  - rect: [10, 10, 80, 40]
//	  - push
//	  - translate: [100, 50]
//	  - rotate: 0.5
//	  - path: M0 0L20 0L10 20z
//	  - pop
//	  - font: bold 16px sans-serif
//	  - align: center
//	  - text: [100, 90, hello]
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/jrawgo/jraw"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCommand is returned for commands that do not exist.
var ErrUnknownCommand = errors.New("unknown command")

// ErrArity is returned for commands with the wrong number or kind of arguments.
var ErrArity = errors.New("wrong number of arguments")

type argKind int

const (
	numbers argKind = iota
	colorArg
	textArg
	labelArg // numbers followed by a string
)

type signature struct {
	kind     argKind
	min, max int // number of numeric arguments, max -1 is unbounded
	even     bool
}

var commands = map[string]signature{
	"fill":       {kind: colorArg},
	"nofill":     {},
	"stroke":     {kind: colorArg},
	"nostroke":   {},
	"weight":     {min: 1, max: 1},
	"rect":       {min: 4, max: 4},
	"square":     {min: 3, max: 3},
	"circle":     {min: 3, max: 3},
	"ellipse":    {min: 4, max: 4},
	"arc":        {min: 5, max: 5},
	"line":       {min: 4, max: 4},
	"point":      {min: 2, max: 2},
	"triangle":   {min: 6, max: 6},
	"polygon":    {min: 4, max: -1, even: true},
	"path":       {kind: textArg},
	"font":       {kind: textArg},
	"align":      {kind: textArg},
	"baseline":   {kind: textArg},
	"text":       {kind: labelArg, min: 2, max: 2},
	"translate":  {min: 2, max: 2},
	"rotate":     {min: 1, max: 1},
	"scale":      {min: 1, max: 2},
	"push":       {},
	"pop":        {},
	"background": {kind: colorArg},
	"clear":      {},
}

// Command is a single drawing command.
type Command struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color

	line int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Command) UnmarshalYAML(n *yaml.Node) error {
	c.line = n.Line
	switch n.Kind {
	case yaml.ScalarNode:
		c.Name = n.Value
		return nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("line %d: command must have exactly one name", n.Line)
		}
		c.Name = n.Content[0].Value
		v := n.Content[1]
		switch v.Kind {
		case yaml.ScalarNode:
			if v.Tag == "!!null" {
				return nil
			} else if v.Tag == "!!int" || v.Tag == "!!float" {
				f, err := strconv.ParseFloat(v.Value, 64)
				if err != nil {
					return fmt.Errorf("line %d: %w", v.Line, err)
				}
				c.Args = []float64{f}
			} else {
				c.Text = v.Value
			}
			return nil
		case yaml.SequenceNode:
			n := len(v.Content)
			if n == 0 || v.Content[n-1].Tag != "!!str" {
				return v.Decode(&c.Args)
			}
			c.Text = v.Content[n-1].Value
			c.Args = make([]float64, n-1)
			for i, item := range v.Content[:n-1] {
				if err := item.Decode(&c.Args[i]); err != nil {
					return fmt.Errorf("line %d: %w", item.Line, err)
				}
			}
			return nil
		}
	}
	return fmt.Errorf("line %d: bad command", n.Line)
}

func (c *Command) validate() error {
	sig, ok := commands[c.Name]
	if !ok {
		return fmt.Errorf("line %d: %w: %s", c.line, ErrUnknownCommand, c.Name)
	}
	switch sig.kind {
	case colorArg:
		if c.Text == "" || c.Args != nil {
			return fmt.Errorf("line %d: %w: %s takes a color", c.line, ErrArity, c.Name)
		}
		col, err := jraw.ParseColor(c.Text)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", c.line, c.Name, err)
		}
		c.Color = col
	case textArg:
		if c.Text == "" || c.Args != nil {
			return fmt.Errorf("line %d: %w: %s takes a string", c.line, ErrArity, c.Name)
		}
		var err error
		switch c.Name {
		case "font":
			_, err = jraw.ParseFont(c.Text)
		case "align":
			_, err = jraw.ParseTextAlign(c.Text)
		case "baseline":
			_, err = jraw.ParseTextBaseline(c.Text)
		}
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", c.line, c.Name, err)
		}
	case labelArg:
		if c.Text == "" || len(c.Args) != sig.min {
			return fmt.Errorf("line %d: %w: %s takes %s and a string", c.line, ErrArity, c.Name, sig)
		}
	default:
		n := len(c.Args)
		if c.Text != "" || n < sig.min || sig.max != -1 && sig.max < n || sig.even && n%2 != 0 {
			return fmt.Errorf("line %d: %w: %s takes %s", c.line, ErrArity, c.Name, sig)
		}
	}
	return nil
}

func (sig signature) String() string {
	if sig.max == -1 {
		if sig.even {
			return fmt.Sprintf("an even number of at least %d numbers", sig.min)
		}
		return fmt.Sprintf("at least %d numbers", sig.min)
	} else if sig.min != sig.max {
		return fmt.Sprintf("%d to %d numbers", sig.min, sig.max)
	} else if sig.min == 0 {
		return "no arguments"
	}
	return fmt.Sprintf("%d numbers", sig.min)
}

// Scene is a drawing read from a scene file.
type Scene struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Background string    `yaml:"background,omitempty"`
	Commands   []Command `yaml:"commands"`

	background color.Color
}

// Parse reads and validates a scene.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseFile reads and validates a scene file.
func ParseFile(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

func (s *Scene) validate() error {
	if s.Width <= 0.0 || s.Height <= 0.0 {
		return fmt.Errorf("size must be positive, got %gx%g", s.Width, s.Height)
	}
	if s.Background != "" {
		col, err := jraw.ParseColor(s.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		s.background = col
	}
	for i := range s.Commands {
		if err := s.Commands[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// Recorder draws the scene into a new recorder of the scene's size.
func (s *Scene) Recorder() (*jraw.Recorder, error) {
	rec := jraw.NewRecorder(s.Width, s.Height)
	if err := s.Draw(jraw.New(rec)); err != nil {
		return nil, err
	}
	return rec, nil
}

// Draw draws the scene with j. It returns the first error of j, which is set by unparsable path data or fonts.
func (s *Scene) Draw(j *jraw.Jraw) error {
	if s.background != nil {
		j.Background(s.background)
	}
	for _, c := range s.Commands {
		a := c.Args
		switch c.Name {
		case "fill":
			j.Fill(c.Color)
		case "nofill":
			j.NoFill()
		case "stroke":
			j.Stroke(c.Color)
		case "nostroke":
			j.NoStroke()
		case "weight":
			j.StrokeWeight(a[0])
		case "rect":
			j.Rect(a[0], a[1], a[2], a[3])
		case "square":
			j.Square(a[0], a[1], a[2])
		case "circle":
			j.Circle(a[0], a[1], a[2])
		case "ellipse":
			j.Ellipse(a[0], a[1], a[2], a[3])
		case "arc":
			j.Arc(a[0], a[1], a[2], a[3], a[4])
		case "line":
			j.Line(a[0], a[1], a[2], a[3])
		case "point":
			j.Point(a[0], a[1])
		case "triangle":
			j.Triangle(a[0], a[1], a[2], a[3], a[4], a[5])
		case "polygon":
			points := make([]*jraw.Vector, 0, len(a)/2)
			for i := 0; i+1 < len(a); i += 2 {
				points = append(points, jraw.NewVector(a[i], a[i+1]))
			}
			j.Polygon(points...)
		case "path":
			j.Path(c.Text)
		case "font":
			j.Font(c.Text)
		case "align":
			align, _ := jraw.ParseTextAlign(c.Text)
			j.TextAlign(align)
		case "baseline":
			baseline, _ := jraw.ParseTextBaseline(c.Text)
			j.TextBaseline(baseline)
		case "text":
			j.Text(c.Text, a[0], a[1])
		case "translate":
			j.Translate(a[0], a[1])
		case "rotate":
			j.Rotate(a[0])
		case "scale":
			if len(a) == 1 {
				j.Scale(a[0], a[0])
			} else {
				j.Scale(a[0], a[1])
			}
		case "push":
			j.PushMatrix()
		case "pop":
			j.PopMatrix()
		case "background":
			j.Background(c.Color)
		case "clear":
			j.Clear()
		default:
			return fmt.Errorf("line %d: %w: %s", c.line, ErrUnknownCommand, c.Name)
		}
	}
	return j.Err()
}
