package imagebatch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mavolk/reviewkit/internal/logger"
)

// Options configures a Run.
type Options struct {
	InputDir  string
	OutputDir string
	// Scale applies when Width and Height are not both set.
	Scale          float64
	Width          int
	Height         int
	UseAccelerator bool
	// Out receives the progress lines.
	Out io.Writer
}

// Summary reports what a Run did and how long each phase took.
type Summary struct {
	Images     int
	Saved      int
	Device     string
	Source     Size
	Target     Size
	LoadTime   time.Duration
	ResizeTime time.Duration
	SaveTime   time.Duration
	TotalTime  time.Duration
	OutputDir  string
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Speedup is a naive estimate of the gain over loading and resizing one
// image at a time: load time times image count over total time.
func (s Summary) Speedup() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return s.LoadTime.Seconds() * float64(s.Images) / s.TotalTime.Seconds()
}

// Run resizes every image in opts.InputDir into opts.OutputDir. An input
// directory without usable images is not an error: Run prints a notice and
// returns a zero Summary without creating the output directory.
func Run(ctx context.Context, opts Options) (Summary, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	paths, err := ListImages(opts.InputDir)
	if err != nil {
		return Summary{}, err
	}
	if len(paths) == 0 {
		fmt.Fprintf(out, "No images found in %s\n", opts.InputDir)
		return Summary{}, nil
	}

	device := SelectDevice(out, opts.UseAccelerator)
	fmt.Fprintf(out, "Found %d images\n", len(paths))
	fmt.Fprintf(out, "Using device: %s\n", device.Name())

	start := time.Now()

	fmt.Fprintf(out, "\nLoading all %d images into batch...\n", len(paths))
	batch := Load(ctx, paths)
	loadTime := time.Since(start)
	if batch.Len() == 0 {
		fmt.Fprintln(out, "No valid images found!")
		return Summary{}, nil
	}

	src := batch.SourceSize()
	target, err := TargetSize(src, opts.Scale, opts.Width, opts.Height)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(out, "Original resolution: %dx%d\n", src.X, src.Y)
	fmt.Fprintf(out, "Target resolution: %dx%d\n", target.X, target.Y)
	fmt.Fprintf(out, "Batch loaded: %d images\n", batch.Len())
	fmt.Fprintf(out, "Load time: %.2fs\n", loadTime.Seconds())
	logger.Info(ctx, "batch loaded", "images", batch.Len(), "skipped", len(paths)-batch.Len())

	fmt.Fprintf(out, "\nResizing entire batch on %s...\n", device.Name())
	resizeStart := time.Now()
	resized := device.Resize(batch, target)
	resizeTime := time.Since(resizeStart)
	fmt.Fprintf(out, "Batch processing time: %.2fs\n", resizeTime.Seconds())

	fmt.Fprintf(out, "\nSaving %d resized images...\n", resized.Len())
	saveStart := time.Now()
	saved, err := Save(ctx, out, resized, opts.OutputDir)
	if err != nil {
		return Summary{}, err
	}
	saveTime := time.Since(saveStart)

	return Summary{
		Images:     batch.Len(),
		Saved:      saved,
		Device:     device.Name(),
		Source:     Size{Width: src.X, Height: src.Y},
		Target:     Size{Width: target.X, Height: target.Y},
		LoadTime:   loadTime,
		ResizeTime: resizeTime,
		SaveTime:   saveTime,
		TotalTime:  time.Since(start),
		OutputDir:  opts.OutputDir,
	}, nil
}
