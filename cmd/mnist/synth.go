package main

import (
	"fmt"

	"github.com/magneticio/go-common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kunimune0893/ML-examples/internal/mnist"
)

func newSynthCmd(v *viper.Viper) *cobra.Command {
	var (
		out   string
		count int
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic IDX image/label pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			set := mnist.Set(v.GetString(keySet))
			images, labels := mnist.Synthetic(count)
			if err := mnist.WriteSet(out, set, mnist.SyntheticSize, mnist.SyntheticSize, images, labels); err != nil {
				return err
			}
			logging.Info("Wrote synthetic set %v to %v\n", set, out)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", count, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "data", "output directory")
	cmd.Flags().IntVar(&count, "count", 100, "number of records")
	return cmd
}
