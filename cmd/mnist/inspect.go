package main

import (
	"fmt"
	"sort"

	"github.com/magneticio/go-common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kunimune0893/ML-examples/internal/mnist"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the headers of an IDX image/label pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := v.GetString(keyDir)
			logging.Info("Inspecting %v\n", dir)

			ds, err := mnist.Open(dir, mnist.DatasetOptions{Options: loadOptions(v)})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ih, lh := ds.ImageHeader(), ds.LabelHeader()
			fmt.Fprintf(out, "images: magic=0x%08x count=%d rows=%d cols=%d\n", ih.Magic, ih.Count, ih.Rows, ih.Cols)
			fmt.Fprintf(out, "labels: magic=0x%08x count=%d\n", lh.Magic, lh.Count)
			if ih.Count != lh.Count {
				fmt.Fprintf(out, "warning: record counts differ, %d records usable\n", ds.Len())
			}
			if !stats {
				return nil
			}

			samples, err := ds.Range(0, ds.Len())
			if err != nil {
				return err
			}
			st := mnist.Summarize(samples)
			fmt.Fprintf(out, "pixels: min=%.4f max=%.4f mean=%.4f stddev=%.4f\n", st.Min, st.Max, st.Mean, st.StdDev)

			labels := make([]int, 0, len(st.Labels))
			for l := range st.Labels {
				labels = append(labels, int(l))
			}
			sort.Ints(labels)
			for _, l := range labels {
				fmt.Fprintf(out, "label %d: %d\n", l, st.Labels[uint8(l)])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "also summarize every record")
	return cmd
}
