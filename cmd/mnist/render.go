package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/magneticio/go-common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kunimune0893/ML-examples/internal/mnist"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	var (
		rng rangeFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write a range of records as PNG images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, samples, err := rng.load(v)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(out, 0o750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			for i, s := range samples {
				path := filepath.Join(out, fmt.Sprintf("%05d_%d.png", rng.start+i, s.Label))
				if err := writePNG(path, s, ds.Rows(), ds.Cols()); err != nil {
					return err
				}
				logging.Info("Wrote %v\n", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d images to %s\n", len(samples), out)
			return nil
		},
	}
	rng.register(cmd)
	cmd.Flags().StringVar(&out, "out", "images", "output directory")
	return cmd
}

func writePNG(path string, s mnist.Sample, rows, cols int) error {
	img, err := mnist.Gray(s, rows, cols)
	if err != nil {
		return err
	}

	//nolint:gosec // G304: output path is built from a user-selected directory
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
