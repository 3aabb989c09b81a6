package jraw

import (
	"image"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestJrawShapes(t *testing.T) {
	var tts = []struct {
		name  string
		draw  func(j *Jraw)
		names []string
	}{
		{"rect", func(j *Jraw) { j.Rect(1, 2, 3, 4) }, []string{"beginPath", "rect", "fill", "stroke"}},
		{"square", func(j *Jraw) { j.Square(1, 2, 3) }, []string{"beginPath", "rect", "fill", "stroke"}},
		{"circle", func(j *Jraw) { j.Circle(1, 2, 3) }, []string{"beginPath", "arc", "fill", "stroke"}},
		{"ellipse", func(j *Jraw) { j.Ellipse(1, 2, 3, 4) }, []string{"beginPath", "ellipse", "fill", "stroke"}},
		{"arc", func(j *Jraw) { j.Arc(1, 2, 3, 0, 1) }, []string{"beginPath", "arc", "fill", "stroke"}},
		{"triangle", func(j *Jraw) { j.Triangle(0, 0, 1, 0, 0, 1) }, []string{"beginPath", "moveTo", "lineTo", "lineTo", "closePath", "fill", "stroke"}},
		{"polygon", func(j *Jraw) { j.Polygon(NewVector(0, 0), NewVector(1, 0), NewVector(1, 1)) }, []string{"beginPath", "moveTo", "lineTo", "lineTo", "closePath", "fill", "stroke"}},
		{"polygon one point", func(j *Jraw) { j.Polygon(NewVector(0, 0)) }, []string{}},
		{"line", func(j *Jraw) { j.Line(0, 0, 1, 1) }, []string{"beginPath", "moveTo", "lineTo", "stroke"}},
		{"line without stroke", func(j *Jraw) { j.NoStroke().Line(0, 0, 1, 1) }, []string{}},
		{"point", func(j *Jraw) { j.Point(1, 1) }, []string{"save", "fillStyle", "beginPath", "arc", "fill", "restore"}},
		{"nofill", func(j *Jraw) { j.NoFill().Rect(1, 2, 3, 4) }, []string{"beginPath", "rect", "stroke"}},
		{"nostroke", func(j *Jraw) { j.NoStroke().Rect(1, 2, 3, 4) }, []string{"beginPath", "rect", "fill"}},
		{"nothing", func(j *Jraw) { j.NoFill().NoStroke().Rect(1, 2, 3, 4) }, []string{"beginPath", "rect"}},
		{"path", func(j *Jraw) { j.Path("M0 0L10 0L10 10z") }, []string{"beginPath", "moveTo", "lineTo", "lineTo", "closePath", "fill", "stroke"}},
		{"bad path", func(j *Jraw) { j.Path("M0 0L") }, []string{}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder(100, 100)
			tt.draw(New(rec))
			test.T(t, rec.Names(), tt.names)
		})
	}
}

func TestJrawIsolation(t *testing.T) {
	rec := NewRecorder(100, 100)
	New(rec, WithIsolation(true)).Rect(1, 2, 3, 4).Line(0, 0, 1, 1)
	test.T(t, rec.Names(), []string{"save", "beginPath", "rect", "fill", "stroke", "restore", "save", "beginPath", "moveTo", "lineTo", "stroke", "restore"})
}

func TestJrawPoint(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec).Stroke(Red).StrokeWeight(6)
	rec.Reset()
	j.Point(10, 20)
	test.T(t, rec.Ops[1].Color, Red)
	test.T(t, rec.Ops[3].Args, []float64{10, 20, 3, 0, 2 * math.Pi})

	rec.Reset()
	j.NoStroke().Point(10, 20)
	test.T(t, len(rec.Ops), 0)
}

func TestJrawStyle(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec)
	c, ok := j.FillColor()
	test.T(t, c, Black)
	test.That(t, ok)
	c, ok = j.StrokeColor()
	test.T(t, c, Black)
	test.That(t, ok)

	j.NoFill().Fill(Red).Stroke(Blue).StrokeWeight(2).LineCap(RoundCap).LineJoin(BevelJoin)
	c, ok = j.FillColor()
	test.T(t, c, Red)
	test.That(t, ok)
	test.String(t, rec.String(), "fillStyle(#ff0000);strokeStyle(#0000ff);lineWidth(2);lineCap(1);lineJoin(2)")
}

func TestJrawBackground(t *testing.T) {
	rec := NewRecorder(640, 480)
	j := New(rec).Translate(10, 10).Background(White)
	test.String(t, rec.String(), "translate(10,10);save();resetTransform();fillStyle(#ffffff);fillRect(0,0,640,480);restore()")
	test.T(t, j.Translation(), Vector{10, 10})

	rec.Reset()
	j.Clear()
	test.String(t, rec.String(), "save();resetTransform();clearRect(0,0,640,480);restore()")

	test.Float(t, j.Width(), 640)
	test.Float(t, j.Height(), 480)
	test.That(t, j.Context() == Context2D(rec))
}

func TestJrawTransform(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec)
	j.Translate(10, 20).Translate(5, 5).Rotate(1).Rotate(0.5).Scale(2, 3).Scale(2, 1)
	test.T(t, j.Translation(), Vector{15, 25})
	test.Float(t, j.Rotation(), 1.5)
	test.T(t, j.ScaleFactor(), Vector{4, 3})

	j.ResetMatrix()
	test.T(t, j.Transform(), IdentityTransform)
	test.T(t, rec.Names()[len(rec.Ops)-1], "resetTransform")
}

func TestJrawMatrixStack(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec)
	j.Translate(10, 20).PushMatrix()
	test.T(t, j.Depth(), 1)

	j.Translate(5, 5).Rotate(1).Scale(2, 2)
	rec.Reset()
	j.PopMatrix()
	test.T(t, j.Depth(), 0)
	test.T(t, j.Translation(), Vector{10, 20})
	test.Float(t, j.Rotation(), 0)
	test.T(t, j.ScaleFactor(), Vector{1, 1})
	test.String(t, rec.String(), "resetTransform();translate(10,20);rotate(0);scale(1,1)")
}

func TestJrawPopMatrixOrder(t *testing.T) {
	// a non-uniform scale with a rotation only matches when reapplied as translate, rotate, scale
	ctx := &pathContext{NewState()}
	j := New(ctx).Translate(10, 20).Rotate(0.5).Scale(2, 3)
	j.PushMatrix().Translate(5, 5).PopMatrix()
	test.That(t, ctx.View.Equals(j.Transform().Matrix()), ctx.View, j.Transform().Matrix())

	wrong := Identity.Translate(10, 20).Scale(2, 3).Rotate(0.5)
	test.That(t, !ctx.View.Equals(wrong))
}

func TestJrawPopEmpty(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := NewRecorder(100, 100)
	j := New(rec, WithLogger(zap.New(core)))
	j.Translate(3, 4).Rotate(0.5)
	before := j.Transform()

	rec.Reset()
	j.PopMatrix()
	test.T(t, j.Depth(), 0)
	test.That(t, j.Transform().Equals(before))
	test.String(t, rec.String(), "resetTransform();translate(3,4);rotate(0.5);scale(1,1)")
	test.T(t, logs.FilterMessage("pop on empty matrix stack").Len(), 1)
}

func TestJrawIsolate(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec).Translate(1, 1)
	j.Isolate(func(j *Jraw) {
		j.NoStroke().Fill(Red).Translate(10, 10).Rect(0, 0, 1, 1)
		test.T(t, j.Translation(), Vector{11, 11})
		test.T(t, j.Depth(), 1)
	})
	test.T(t, j.Translation(), Vector{1, 1})
	test.T(t, j.Depth(), 0)
	c, fill := j.FillColor()
	test.T(t, c, Black)
	test.That(t, fill)
	_, stroke := j.StrokeColor()
	test.That(t, stroke)

	names := rec.Names()
	test.T(t, names[1], "save")
	test.T(t, names[len(names)-1], "restore")
}

func TestJrawIsolateUnbalanced(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec)
	j.Isolate(func(j *Jraw) {
		j.PushMatrix().PushMatrix().Translate(5, 5)
	})
	test.T(t, j.Depth(), 0)
	test.T(t, j.Transform(), IdentityTransform)

	j.Isolate(func(j *Jraw) {
		j.Translate(5, 5).PopMatrix().PopMatrix()
	})
	test.T(t, j.Depth(), 0)
	test.T(t, j.Transform(), IdentityTransform)
}

func TestJrawIsolateKeepsOuterStack(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec)
	j.Translate(10, 0).PushMatrix().Translate(0, 20).PushMatrix()
	outer := j.Transform()

	j.Isolate(func(j *Jraw) {
		j.PopMatrix().PopMatrix().PopMatrix().PopMatrix()
	})
	test.T(t, j.Depth(), 2)
	test.T(t, j.Transform(), outer)

	j.PopMatrix()
	test.T(t, j.Transform(), outer)
	j.PopMatrix()
	test.T(t, j.Translation(), Vector{10, 0})
}

func TestJrawErr(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec)
	test.Error(t, j.Err())

	j.Path("M0 0L")
	err := j.Err()
	test.That(t, err != nil)

	// the first error is kept
	j.Path("X")
	test.T(t, j.Err(), err)
	test.T(t, len(rec.Ops), 0)
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{Translation: Vector{10, 0}, Scale: Vector{2, 2}, Rotation: math.Pi / 2}
	x, y := tr.Matrix().Dot(1, 0)
	test.Float(t, x, 10)
	test.Float(t, y, 2)
	test.That(t, IdentityTransform.Matrix().Equals(Identity))
	test.String(t, IdentityTransform.String(), "translate(0,0) rotate(0) scale(1,1)")
}

func TestJrawText(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec).Font("bold 20px monospace").TextAlign(CenterAlign).TextBaseline(TopBaseline)
	test.String(t, rec.String(), `font("bold 20px monospace");textAlign(4);textBaseline(1)`)
	test.T(t, j.CurrentFont(), Font{Size: 20, Bold: true, Family: "monospace"})
	test.That(t, 0 < j.TextWidth("jraw"))

	rec.Reset()
	j.Text("jraw", 10, 20)
	test.String(t, rec.String(), `fillText("jraw",10,20);strokeText("jraw",10,20)`)

	rec.Reset()
	j.NoStroke().Text("jraw", 10, 20)
	test.T(t, rec.Names(), []string{"fillText"})

	rec.Reset()
	New(rec, WithIsolation(true)).NoFill().Text("jraw", 0, 0)
	test.T(t, rec.Names(), []string{"save", "strokeText", "restore"})
}

func TestJrawFontErr(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec).Font("serif")
	test.That(t, j.Err() != nil)
	test.T(t, j.CurrentFont(), DefaultFont)
	test.T(t, len(rec.Ops), 0)
}

func TestJrawImage(t *testing.T) {
	rec := NewRecorder(100, 100)
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	New(rec).Image(img, 1, 2).ImageRect(img, 0, 0, 8, 8)
	test.String(t, rec.String(), "drawImage(4x2,1,2,4,2);drawImage(4x2,0,0,8,8)")
	test.That(t, rec.Ops[0].Image == image.Image(img))
}

func TestJrawResizeCanvas(t *testing.T) {
	rec := NewRecorder(100, 100)
	j := New(rec).Fill(Red).Stroke(Blue).StrokeWeight(3).Font("12px serif")
	j.Translate(10, 10).PushMatrix()
	rec.Reset()

	j.ResizeCanvas(200, 50)
	test.String(t, rec.String(), `resize(200,50);fillStyle(#ff0000);strokeStyle(#0000ff);lineWidth(3);font("12px serif")`)
	test.T(t, j.Transform(), IdentityTransform)
	test.T(t, j.Depth(), 1)
	test.Float(t, j.Width(), 200)
	test.Float(t, j.Height(), 50)
}

func TestJrawResizeUnsupported(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := struct{ Context2D }{NewRecorder(100, 100)}
	j := New(ctx, WithLogger(zap.New(core))).Translate(5, 5)
	j.ResizeCanvas(200, 50)
	test.T(t, j.Translation(), Vector{5, 5})
	test.T(t, logs.FilterMessage("context cannot be resized").Len(), 1)
}
