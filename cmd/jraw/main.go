package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jrawgo/jraw"
	"github.com/jrawgo/jraw/renderers"
	"github.com/jrawgo/jraw/renderers/ebiten"
	"github.com/jrawgo/jraw/renderers/svg"
	"github.com/jrawgo/jraw/scene"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Main struct{}

type Render struct {
	Minify  bool   `short:"m" desc:"Minify SVG output"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Output  string `short:"o" desc:"Output file, the extension selects the format (png, jpg, gif, tif, svg, svgz, eps)"`
	Input   string `index:"0" desc:"Scene file"`
}

type Serve struct {
	Port    int    `short:"p" default:"8080" desc:"Port to listen on"`
	NoOpen  bool   `desc:"Do not open the browser"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Dir     string `index:"0" default:"." desc:"Directory to serve"`
}

type Window struct {
	Scale   int     `short:"s" default:"1" desc:"Window pixels per canvas pixel"`
	Spin    float64 `desc:"Rotate the scene around its center, in radians per second"`
	Verbose bool    `short:"v" desc:"Verbose logging"`
	Input   string  `index:"0" desc:"Scene file"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Draw scenes with jraw")
	root.AddCmd(&Render{}, "render", "Render a scene file to an image or SVG document")
	root.AddCmd(&Serve{}, "serve", "Serve a directory, such as the WebAssembly demo, and open it in the browser")
	root.AddCmd(&Window{}, "window", "Show a scene in a window")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
	}
	config.DisableCaller = true
	config.OutputPaths = []string{"stderr"}
	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	jraw.SetLogger(log)
	return log, nil
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	log, err := newLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := scene.ParseFile(cmd.Input)
	if err != nil {
		return err
	}
	rec, err := s.Recorder()
	if err != nil {
		return err
	}

	var opts []interface{}
	if ext := strings.ToLower(filepath.Ext(cmd.Output)); ext == ".svg" || ext == ".svgz" {
		opts = append(opts, &svg.Options{Minify: cmd.Minify})
	}
	if err := renderers.Write(cmd.Output, rec, opts...); err != nil {
		return err
	}
	log.Info("rendered scene", zap.String("input", cmd.Input), zap.String("output", cmd.Output), zap.Int("ops", len(rec.Ops)))
	return nil
}

func (cmd *Serve) Run() error {
	log, err := newLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", cmd.Port))
	if err != nil {
		return err
	}
	url := "http://" + ln.Addr().String()
	srv := &http.Server{
		Handler: http.FileServer(http.Dir(cmd.Dir)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving", zap.String("dir", cmd.Dir), zap.String("url", url))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if !cmd.NoOpen {
		g.Go(func() error {
			if err := browser.OpenURL(url); err != nil {
				log.Warn("could not open browser", zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}

func (cmd *Window) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	log, err := newLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := scene.ParseFile(cmd.Input)
	if err != nil {
		return err
	}

	opts := ebiten.DefaultOptions
	opts.Title = filepath.Base(cmd.Input)
	opts.Scale = cmd.Scale
	w := ebiten.New(int(s.Width+0.5), int(s.Height+0.5), &opts)

	j := w.Jraw()
	if err := s.Draw(j); err != nil {
		return err
	}
	if cmd.Spin != 0.0 {
		anim := w.Animator()
		anim.Loop(func(f jraw.Frame) {
			j.ResetMatrix().Clear()
			j.Translate(s.Width/2.0, s.Height/2.0)
			j.Rotate(cmd.Spin * f.Time.Seconds())
			j.Translate(-s.Width/2.0, -s.Height/2.0)
			if err := s.Draw(j); err != nil {
				log.Error("drawing failed", zap.Error(err))
				anim.Stop()
			}
		}).Start()
	}
	return w.Run()
}
