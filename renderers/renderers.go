package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrawgo/jraw"
	"github.com/jrawgo/jraw/renderers/eps"
	"github.com/jrawgo/jraw/renderers/rasterizer"
	"github.com/jrawgo/jraw/renderers/svg"
	"golang.org/x/image/tiff"
)

type Options struct {
	JPG  *jpeg.Options
	GIF  *gif.Options
	TIFF *tiff.Options
	SVG  *svg.Options
}

// Write replays a recorded drawing into filename, choosing the output format by file extension. Supported extensions are .png, .jpg, .jpeg, .gif, .tif, .tiff, .svg, .svgz, and .eps. Options may be *jpeg.Options, *gif.Options, *tiff.Options, or *svg.Options.
func Write(filename string, rec *jraw.Recorder, opts ...interface{}) error {
	w, err := writer(filepath.Ext(filename), opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := w(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo is like Write but writes to w, using ext to choose the output format.
func WriteTo(w io.Writer, ext string, rec *jraw.Recorder, opts ...interface{}) error {
	wr, err := writer(ext, opts...)
	if err != nil {
		return err
	}
	return wr(w, rec)
}

func writer(ext string, opts ...interface{}) (rasterizer.Writer, error) {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		default:
			return nil, fmt.Errorf("unknown option: %T(%v)", opt, opt)
		}
	}

	switch ext = strings.ToLower(ext); ext {
	case ".png":
		return rasterizer.PNGWriter, nil
	case ".jpg", ".jpeg":
		return rasterizer.JPGWriter(options.JPG), nil
	case ".gif":
		return rasterizer.GIFWriter(options.GIF), nil
	case ".tif", ".tiff":
		return rasterizer.TIFFWriter(options.TIFF), nil
	case ".svg", ".svgz":
		svgOptions := svg.DefaultOptions
		if options.SVG != nil {
			svgOptions = *options.SVG
		}
		if ext == ".svgz" && svgOptions.Compression == 0 {
			svgOptions.Compression = -1
		}
		return func(w io.Writer, rec *jraw.Recorder) error {
			svg := svg.New(w, rec.W, rec.H, &svgOptions)
			rec.Replay(svg)
			return svg.Close()
		}, nil
	case ".eps":
		return eps.Writer, nil
	}
	return nil, fmt.Errorf("unknown file extension: %v", ext)
}
