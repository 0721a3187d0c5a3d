package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nda-dev/nda/array"
	"github.com/nda-dev/nda/ndio"
	"github.com/nda-dev/nda/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Summarize the arrays in an .nda file",
	Long: `Print summary statistics for every array in an .nda file: element
count, minimum, maximum, mean and standard deviation.

Matrices additionally get the per-column index of the minimum and a
summary of the standardized values, which is a quick way to spot
columns with no spread.

Example:
  nda stats measurements.nda`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger.Debug("computing stats", zap.String("path", path))

	arrays, err := ndio.Load(path)
	if err != nil {
		return err
	}
	defer func() {
		for _, raw := range arrays {
			raw.Release()
		}
	}()

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	backend := newBackend()
	out := cmd.OutOrStdout()
	for _, name := range names {
		raw := arrays[name]
		fmt.Fprintf(out, "%s  %s  %s\n", name, raw.DType(), formatShape(raw.Shape()))

		x := array.New[float64](backend.Cast(raw, array.Float64), backend)
		fmt.Fprintf(out, "  %s\n", stats.Describe(x))

		if x.NumDims() == 2 && x.NumElements() > 0 {
			fmt.Fprintf(out, "  column argmin: %v\n", stats.ColumnArgMin(x).Data())
			fmt.Fprintf(out, "  standardized: %s\n", stats.Describe(stats.Standardize(x)))
		}
	}
	return nil
}
