package main

import (
	"fmt"

	"github.com/magneticio/go-common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kunimune0893/ML-examples/internal/mnist"
)

// rangeFlags are the record selection flags shared by load and render.
type rangeFlags struct {
	start int
	count int
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.start, "start", 0, "zero-based index of the first record")
	cmd.Flags().IntVar(&r.count, "count", 1, "number of consecutive records")
}

// load opens the configured set once and reads the selected records
// through it, so headers and records come from the same pass.
func (r *rangeFlags) load(v *viper.Viper) (*mnist.Dataset, []mnist.Sample, error) {
	dir := v.GetString(keyDir)
	ds, err := mnist.Open(dir, mnist.DatasetOptions{Options: loadOptions(v)})
	if err != nil {
		return nil, nil, err
	}
	logging.Info("Loading %d records from %d in %v\n", r.count, r.start, dir)
	samples, err := ds.Range(r.start, r.count)
	if err != nil {
		return nil, nil, err
	}
	return ds, samples, nil
}

func newLoadCmd(v *viper.Viper) *cobra.Command {
	var (
		rng   rangeFlags
		ascii bool
	)
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Print the labels of a range of records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, samples, err := rng.load(v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, s := range samples {
				fmt.Fprintf(out, "%d\t%d\n", rng.start+i, s.Label)
				if ascii {
					fmt.Fprint(out, mnist.ASCII(s, ds.Cols()))
				}
			}
			return nil
		},
	}
	rng.register(cmd)
	cmd.Flags().BoolVar(&ascii, "ascii", false, "render each image as text")
	return cmd
}
