package imagebatch

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"

	"github.com/mavolk/reviewkit/internal/logger"
)

// Save writes every frame of b into dir under its original name, creating
// dir if needed. Progress is printed to out every ten images. A frame that
// cannot be written is logged and skipped; only a failure to create dir is
// returned. It reports how many files were written.
func Save(ctx context.Context, out io.Writer, b *Batch, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	saved := 0
	for i, f := range b.Frames {
		if err := writeImage(filepath.Join(dir, f.Name), f.Image); err != nil {
			logger.Error(ctx, "could not save image, skipping", err, "file", f.Name)
			continue
		}
		saved++
		if (i+1)%10 == 0 {
			fmt.Fprintf(out, "  Saved %d/%d images\n", i+1, b.Len())
		}
	}
	return saved, nil
}

// writeImage encodes img in the format implied by the path extension.
func writeImage(path string, img image.Image) error {
	if !strings.EqualFold(filepath.Ext(path), ".webp") {
		return imaging.Save(img, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encoding webp: %w", err)
	}
	return f.Close()
}
