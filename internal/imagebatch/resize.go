package imagebatch

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// MaxDimension bounds each side of the target resolution.
const MaxDimension = math.MaxInt32

// ErrTargetTooLarge is returned when scaling would produce a side that is
// not finite or exceeds MaxDimension.
var ErrTargetTooLarge = errors.New("target resolution too large")

// TargetSize picks the output resolution. Explicit width and height win
// when both are positive and the scale is then ignored; otherwise each
// source dimension is multiplied by scale and rounded, with a floor of 1.
func TargetSize(src image.Point, scale float64, width, height int) (image.Point, error) {
	if width > 0 && height > 0 {
		return image.Pt(width, height), nil
	}
	w, err := scaleDim(src.X, scale)
	if err != nil {
		return image.Point{}, err
	}
	h, err := scaleDim(src.Y, scale)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(w, h), nil
}

func scaleDim(n int, scale float64) (int, error) {
	v := math.Round(float64(n) * scale)
	if math.IsNaN(v) || math.IsInf(v, 0) || v > MaxDimension {
		return 0, fmt.Errorf("%w: %d * %g", ErrTargetTooLarge, n, scale)
	}
	if v < 1 {
		return 1, nil
	}
	return int(v), nil
}

// Device resizes a whole batch in a single call.
type Device interface {
	Name() string
	Resize(b *Batch, size image.Point) *Batch
}

// CPU resizes on the host with a Lanczos filter. Frames are resized
// concurrently, at most GOMAXPROCS at a time, and the imaging library
// splits each frame's rows across goroutines as well.
type CPU struct{}

func (CPU) Name() string { return "cpu" }

func (CPU) Resize(b *Batch, size image.Point) *Batch {
	out := &Batch{Frames: make([]Frame, len(b.Frames))}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range b.Frames {
		g.Go(func() error {
			out.Frames[i] = Frame{
				Name:  f.Name,
				Image: imaging.Resize(f.Image, size.X, size.Y, imaging.Lanczos),
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// SelectDevice returns the device to resize on. No accelerator backend is
// compiled in, so a request for one prints a notice and falls back to CPU.
func SelectDevice(out io.Writer, preferAccelerator bool) Device {
	if preferAccelerator {
		fmt.Fprintln(out, "GPU acceleration not available, falling back to CPU")
	}
	return CPU{}
}
