package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/smueschi/circlemask/internal/imageio"
	"github.com/smueschi/circlemask/internal/mask"
	"github.com/smueschi/circlemask/internal/raster"
)

// Options controls a masking run. The circle geometry is fixed and not part
// of the options.
type Options struct {
	Encoder imageio.EncoderOptions
	Logger  logrus.FieldLogger // optional; stage details are logged at debug level
}

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded PNG
	Format    string // format of the decoded input
	SrcWidth  int
	SrcHeight int
	Width     int // output size after the crop
	Height    int
	Circle    mask.Circle
	Empty     bool // nothing survived the mask; the full transparent canvas was kept
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Run executes the full pipeline on an encoded image: decode → circle mask →
// masked composite → crop → PNG encode.
func Run(data []byte, opts Options) (*Result, error) {
	return run(data, "", opts)
}

func run(data []byte, path string, opts Options) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, newError(KindUnexpected, path, fmt.Errorf("%v", r))
		}
	}()
	log := opts.logger()

	// 1. Decode to RGBA
	decoded, err := imageio.Decode(data)
	if err != nil {
		return nil, newError(KindDecode, path, err)
	}
	log.WithFields(logrus.Fields{
		"format": decoded.Format,
		"width":  decoded.Width,
		"height": decoded.Height,
	}).Debug("decoded input")

	// 2. Circle mask from the image size
	m, circle := mask.New(decoded.Image.Bounds())
	log.WithField("circle", circle.String()).Debug("built mask")

	// 3. Paste through the mask onto a transparent canvas
	canvas := raster.Composite(decoded.Image, m)

	// 4. Crop to visible content
	out, box, ok := raster.Trim(canvas)
	if ok {
		log.WithField("bbox", box.String()).Debug("cropped to content")
	} else {
		log.Debug("no visible content inside mask, keeping full canvas")
	}

	// 5. Encode PNG
	encoded, err := imageio.EncodePNG(out, opts.Encoder)
	if err != nil {
		return nil, newError(KindEncode, path, err)
	}

	b := out.Bounds()
	return &Result{
		Data:      encoded,
		Format:    decoded.Format,
		SrcWidth:  decoded.Width,
		SrcHeight: decoded.Height,
		Width:     b.Dx(),
		Height:    b.Dy(),
		Circle:    circle,
		Empty:     !ok,
	}, nil
}

// ProcessFile reads inputPath, runs the pipeline and writes the PNG to
// outputPath. The output is written atomically and only after every earlier
// stage succeeded, so a failed run never creates or truncates outputPath.
func ProcessFile(inputPath, outputPath string, opts Options) (*Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, newError(KindDecode, inputPath, fmt.Errorf("reading input: %w", err))
	}

	res, err := run(data, inputPath, opts)
	if err != nil {
		return nil, err
	}

	if err := imageio.WriteFileAtomic(outputPath, res.Data, 0644); err != nil {
		return nil, newError(KindWrite, outputPath, fmt.Errorf("writing output: %w", err))
	}
	opts.logger().WithFields(logrus.Fields{
		"path":  outputPath,
		"bytes": len(res.Data),
	}).Debug("wrote output")

	return res, nil
}
