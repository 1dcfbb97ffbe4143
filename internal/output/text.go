package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mavolk/reviewkit/internal/imagebatch"
)

// WriteSummary writes the human-readable timing report of a resize run.
func WriteSummary(w io.Writer, s imagebatch.Summary) error {
	ew := &errWriter{w: w}

	ew.printf("\n%s\n", strings.Repeat("=", 50))
	ew.println("Summary:")
	ew.printf("  Total images processed: %d\n", s.Images)
	ew.printf("  Load time: %s\n", seconds(s.LoadTime, 2))
	ew.printf("  Resize time (%s): %s\n", s.Device, seconds(s.ResizeTime, 2))
	ew.printf("  Save time: %s\n", seconds(s.SaveTime, 2))
	ew.printf("  Total time: %s\n", seconds(s.TotalTime, 2))
	if s.Images > 0 {
		ew.printf("  Average time per image: %s\n", seconds(s.TotalTime/time.Duration(s.Images), 3))
	}
	ew.printf("  Speedup vs sequential: ~%.1fx\n", s.Speedup())
	ew.printf("  Output saved to: %s\n", s.OutputDir)
	ew.println(strings.Repeat("=", 50))

	return ew.err
}

func seconds(d time.Duration, prec int) string {
	return fmt.Sprintf("%.*fs", prec, d.Seconds())
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
