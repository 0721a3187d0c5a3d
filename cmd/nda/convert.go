package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nda-dev/nda/array"
	"github.com/nda-dev/nda/ndio"
)

var convertName string

var convertCmd = &cobra.Command{
	Use:   "convert INPUT OUTPUT",
	Short: "Convert between .nda and .json array files",
	Long: `Convert an array file between the .nda container format and JSON
nested lists. The direction is picked from the file extensions.

JSON input becomes a single named array (see --name). When converting
an .nda file with several arrays to JSON, --name selects which one.

Examples:
  nda convert points.json points.nda
  nda convert weights.nda weights.json --name embedding`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertName, "name", "data", "array name to write or extract")
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	inExt := strings.ToLower(filepath.Ext(in))
	outExt := strings.ToLower(filepath.Ext(out))

	logger.Debug("converting",
		zap.String("input", in),
		zap.String("output", out))

	switch {
	case inExt == ".json" && outExt == ".nda":
		return convertJSONToNDA(in, out)
	case inExt == ".nda" && outExt == ".json":
		return convertNDAToJSON(in, out)
	default:
		return fmt.Errorf("unsupported conversion %s -> %s: want .json <-> .nda", inExt, outExt)
	}
}

func convertJSONToNDA(in, out string) error {
	//nolint:gosec // G304: the path comes from a CLI argument, which is expected
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	raw, err := ndio.FromJSON(data)
	if err != nil {
		return err
	}
	defer raw.Release()

	return ndio.Save(out, map[string]*array.RawArray{convertName: raw})
}

func convertNDAToJSON(in, out string) error {
	arrays, err := ndio.Load(in)
	if err != nil {
		return err
	}
	defer func() {
		for _, raw := range arrays {
			raw.Release()
		}
	}()

	raw, ok := arrays[convertName]
	if !ok {
		if len(arrays) != 1 {
			return fmt.Errorf("file %s has %d arrays and none named %q: pick one with --name",
				in, len(arrays), convertName)
		}
		for _, only := range arrays {
			raw = only
		}
	}

	data, err := ndio.ToJSON(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o600)
}
