// Command kinectdump decodes a single raw Kinect colour or depth frame and
// writes it as a PNG or BMP image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	pionlogging "github.com/pion/logging"
	"golang.org/x/image/bmp"

	"github.com/pion/kinectframe"
	"github.com/pion/kinectframe/internal/logging"
	"github.com/pion/kinectframe/pkg/frame"
	"github.com/pion/kinectframe/pkg/io/video"
	"github.com/pion/kinectframe/pkg/notify"
)

var logger = logging.NewLogger("kinectframe/kinectdump")

type options struct {
	kind       string
	format     frame.Format
	width      int
	height     int
	in         string
	out        string
	scaleWidth int
}

func main() {
	var (
		kind       = flag.String("kind", "color", "frame kind: color or depth")
		format     = flag.String("format", string(frame.FormatUYVY), "colour pixel format: BGR32 or UYVY")
		width      = flag.Int("width", 640, "frame width in pixels")
		height     = flag.Int("height", 480, "frame height in pixels")
		in         = flag.String("in", "", "raw frame file (depth frames are little-endian Z16)")
		out        = flag.String("out", "frame.png", "output image, .png or .bmp")
		scaleWidth = flag.Int("scale", 0, "output width in pixels, 0 keeps the native size")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logging.SetLevel(pionlogging.LogLevelDebug)
	}

	err := run(options{
		kind:       *kind,
		format:     frame.Format(strings.ToUpper(*format)),
		width:      *width,
		height:     *height,
		in:         *in,
		out:        *out,
		scaleWidth: *scaleWidth,
	})
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type decoder interface {
	notify.Subject
	Raster() *frame.BGRA
}

func run(opts options) error {
	if opts.in == "" {
		return fmt.Errorf("missing -in")
	}
	data, err := os.ReadFile(opts.in)
	if err != nil {
		return err
	}

	buffer := video.NewFrameBuffer(0)
	var decode func() error
	var dec decoder

	switch opts.kind {
	case "color":
		d := kinectframe.NewColorFrameDecoder()
		dec = d
		decode = func() error {
			return d.Decode(frame.RawColorFrame{
				Width:  opts.width,
				Height: opts.height,
				Format: opts.format,
				Data:   data,
			})
		}
	case "depth":
		depthFrame, err := frame.ParseZ16(data, opts.width, opts.height)
		if err != nil {
			return err
		}
		d := kinectframe.NewDepthFrameDecoder()
		dec = d
		decode = func() error {
			return d.Decode(depthFrame)
		}
	default:
		return fmt.Errorf("unknown frame kind %q", opts.kind)
	}

	dec.Subscribe(func() error {
		buffer.StoreCopy(dec.Raster())
		return nil
	})

	if err := decode(); err != nil {
		return err
	}

	var img image.Image = buffer.Load()
	if opts.scaleWidth > 0 {
		img, err = video.Scale(img, opts.scaleWidth, 0, video.ScalerApproxBiLinear)
		if err != nil {
			return err
		}
	}

	logger.Infof("writing %s (%dx%d)", opts.out, img.Bounds().Dx(), img.Bounds().Dy())
	return writeImage(opts.out, img)
}

func writeImage(path string, img image.Image) error {
	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("unsupported output extension %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
