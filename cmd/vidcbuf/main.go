// Command vidcbuf prints the buffers a video hardware session needs.
//
//	vidcbuf --codec hevc --direction decode --width 3840 --height 2160 --format P010
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pion/logging"
	internallog "github.com/pion/vidcbuf/internal/logging"
	"github.com/pion/vidcbuf/pkg/buffer"
	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/frame"
	"github.com/pion/vidcbuf/pkg/platform"
	"github.com/pion/vidcbuf/pkg/session"
	"github.com/spf13/pflag"
)

type options struct {
	codec          string
	direction      string
	width          uint32
	height         uint32
	format         string
	vppDelay       uint32
	outputMinCount uint32
	platform       string
	features       session.Features
	verbose        bool
}

func main() {
	var opts options
	pflag.StringVar(&opts.codec, "codec", "h264", "codec: h264, hevc or vp9")
	pflag.StringVar(&opts.direction, "direction", "decode", "decode or encode")
	pflag.Uint32Var(&opts.width, "width", 1920, "picture width")
	pflag.Uint32Var(&opts.height, "height", 1080, "picture height")
	pflag.StringVar(&opts.format, "format", "NV12", "pixel format of the raw side")
	pflag.Uint32Var(&opts.vppDelay, "vpp-delay", 0, "decode pipeline delay override, 0 keeps the default")
	pflag.Uint32Var(&opts.outputMinCount, "output-min-count", 0, "output buffer count already negotiated")
	pflag.StringVar(&opts.platform, "platform", "", "platform description file, defaults to the built-in iris2")
	pflag.BoolVar(&opts.features.Interlaced, "interlaced", false, "interlaced content")
	pflag.BoolVar(&opts.features.Downscale, "downscale", false, "encoder downscaling")
	pflag.BoolVar(&opts.features.Rotate, "rotate", false, "encoder rotation")
	pflag.BoolVar(&opts.features.Flip, "flip", false, "encoder flip")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "trace every computed size")
	pflag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vidcbuf: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	if opts.verbose {
		f := logging.NewDefaultLoggerFactory()
		f.DefaultLogLevel = logging.LogLevelTrace
		internallog.SetLoggerFactory(f)
	}

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	if err := buffer.Validate(s); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	for p := session.InputPort; p < session.NumPorts; p++ {
		f := s.Format(p)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t0x%08x\n", p, f.PixelFormat, f.Width, f.Height, f.PixelFormat.Fourcc())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "TYPE\tSIZE\tMIN\tEXTRA\tTOTAL\n")
	for _, r := range buffer.New().Requirements(s) {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", r.Type, r.Size, r.MinCount, r.ExtraCount, r.Total())
	}
	return w.Flush()
}

func newSession(opts options) (*session.Session, error) {
	c, err := codec.Parse(opts.codec)
	if err != nil {
		return nil, err
	}
	dir, err := session.ParseDirection(opts.direction)
	if err != nil {
		return nil, err
	}
	raw, ok := frame.ParseFormat(opts.format)
	if !ok || raw.Compressed() {
		return nil, fmt.Errorf("unsupported raw format %q", opts.format)
	}

	p := platform.Default()
	if opts.platform != "" {
		if p, err = platform.LoadFile(opts.platform); err != nil {
			return nil, err
		}
	}

	s := session.New(c, dir, p.NewCore())
	s.Capabilities = p.InstanceCapabilities()
	s.Features = opts.features
	s.Buffers.Output.MinCount = opts.outputMinCount
	if opts.vppDelay > 0 {
		s.DecodeVPPDelay = session.VPPDelay{Enable: true, Size: opts.vppDelay}
	}

	coded := session.Format{Width: opts.width, Height: opts.height, PixelFormat: c.Format()}
	pictures := session.Format{Width: opts.width, Height: opts.height, PixelFormat: raw}
	if dir == session.Decode {
		s.SetFormat(session.InputPort, coded)
		s.SetFormat(session.OutputPort, pictures)
	} else {
		s.SetFormat(session.InputPort, pictures)
		s.SetFormat(session.OutputPort, coded)
	}
	return s, nil
}
