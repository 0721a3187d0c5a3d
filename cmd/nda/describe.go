package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nda-dev/nda/ndio"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "List the arrays stored in an .nda file",
	Long: `List every array in an .nda file with its dtype, shape and size,
plus any custom metadata the writer attached.

Example:
  nda describe weights.nda`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger.Debug("describing file", zap.String("path", path))

	reader, err := ndio.NewReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	out := cmd.OutOrStdout()
	header := reader.Header()
	fmt.Fprintf(out, "%s: format v%d, written by nda %s, created %s\n",
		path, header.FormatVersion, header.LibraryVersion,
		header.CreatedAt.UTC().Format(time.RFC3339))

	names := reader.ArrayNames()
	fmt.Fprintf(out, "%d arrays:\n", len(names))
	for _, name := range names {
		meta, err := reader.ArrayInfo(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-16s %-8s %-14s %d bytes\n",
			meta.Name, meta.DType, formatShape(meta.Shape), meta.Size)
	}

	if metadata := reader.Metadata(); len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for key := range metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintln(out, "metadata:")
		for _, key := range keys {
			fmt.Fprintf(out, "  %s: %s\n", key, metadata[key])
		}
	}
	return nil
}
