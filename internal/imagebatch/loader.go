package imagebatch

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/mavolk/reviewkit/internal/logger"
)

// Extensions lists the accepted file extensions, lower-case.
var Extensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// Frame is one decoded image and the filename it was read from.
type Frame struct {
	Name  string
	Image *image.NRGBA
}

// Batch is an ordered set of frames processed together.
type Batch struct {
	Frames []Frame
}

func (b *Batch) Len() int { return len(b.Frames) }

// SourceSize returns the dimensions of the first frame.
func (b *Batch) SourceSize() image.Point {
	if len(b.Frames) == 0 {
		return image.Point{}
	}
	return b.Frames[0].Image.Bounds().Size()
}

// ListImages returns the files directly inside dir whose extension is in
// Extensions, compared case-insensitively, sorted by name. Subdirectories
// are not descended into; symlinks count when they point at a regular file.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !Extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !isRegularFile(path, e) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func isRegularFile(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load decodes every path into a Batch. Files that fail to decode are
// logged and left out.
func Load(ctx context.Context, paths []string) *Batch {
	b := &Batch{Frames: make([]Frame, 0, len(paths))}
	for _, p := range paths {
		img, err := imaging.Open(p)
		if err != nil {
			logger.Warn(ctx, "could not load image, skipping", "file", p, "error", err)
			continue
		}
		b.Frames = append(b.Frames, Frame{Name: filepath.Base(p), Image: toRGB(img)})
	}
	return b
}

// toRGB converts img to a fully opaque NRGBA frame. Colour values are kept
// and the alpha channel is discarded, so every frame has the same three
// colour channels.
func toRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
