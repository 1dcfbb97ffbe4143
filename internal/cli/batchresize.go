package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mavolk/reviewkit/internal/imagebatch"
	"github.com/mavolk/reviewkit/internal/logger"
	"github.com/mavolk/reviewkit/internal/output"
)

var (
	flagScale         float64
	flagWidth         int
	flagHeight        int
	flagCPU           bool
	flagResizeVerbose bool
)

func newBatchResizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "batchresize <input_dir> <output_dir>",
		Short:        "Resize a directory of same-resolution images in one batch",
		Long:         "Load every image in input_dir into one batch, resize the whole batch to a single target resolution, and write the results to output_dir under their original names.",
		Version:      version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         runBatchResize,
	}

	f := cmd.Flags()
	f.Float64Var(&flagScale, "scale", 0.5, "Scale factor")
	f.IntVar(&flagWidth, "width", 0, "Target width (overrides scale, requires --height)")
	f.IntVar(&flagHeight, "height", 0, "Target height (overrides scale, requires --width)")
	f.BoolVar(&flagCPU, "cpu", false, "Use CPU instead of GPU")
	f.BoolVarP(&flagResizeVerbose, "verbose", "v", false, "Enable info logging")

	return cmd
}

func runBatchResize(cmd *cobra.Command, args []string) error {
	logger.Initialize(cmd.ErrOrStderr(), false, flagResizeVerbose)
	ctx := cmd.Context()

	explicit := flagWidth > 0 && flagHeight > 0
	if !explicit && (flagWidth > 0 || flagHeight > 0) {
		logger.Warn(ctx, "--width and --height must be given together, using --scale", "scale", flagScale)
	}
	if !explicit && (!(flagScale > 0) || math.IsInf(flagScale, 1)) {
		return fmt.Errorf("--scale must be a positive finite number, got %g", flagScale)
	}

	out := cmd.OutOrStdout()
	sum, err := imagebatch.Run(ctx, imagebatch.Options{
		InputDir:       args[0],
		OutputDir:      args[1],
		Scale:          flagScale,
		Width:          flagWidth,
		Height:         flagHeight,
		UseAccelerator: !flagCPU,
		Out:            out,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitCode = ExitError
		return nil
	}

	if sum.Images == 0 {
		return nil
	}
	if sum.Saved < sum.Images {
		logger.Warn(ctx, "some images were not saved", "saved", sum.Saved, "loaded", sum.Images)
	}
	if err := output.WriteSummary(out, sum); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing summary: %v\n", err)
		exitCode = ExitError
	}
	return nil
}
