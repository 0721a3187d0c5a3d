package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nda-dev/nda/array"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast SHAPE_A SHAPE_B",
	Short: "Compute the broadcast result of two shapes",
	Long: `Compute the shape that results from broadcasting two shapes together.

Shapes are comma-separated dimension lists, optionally parenthesized.
"()" is a scalar shape. The command prints the result shape on success
and exits non-zero when the shapes are incompatible.

Examples:
  nda broadcast 5,4 1
  nda broadcast "(15,3,5)" "(3,1)"
  nda broadcast 3,4 2,4   # fails: axis 0 clashes (3 vs 2)`,
	Args: cobra.ExactArgs(2),
	RunE: runBroadcast,
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	a, err := parseShape(args[0])
	if err != nil {
		return err
	}
	b, err := parseShape(args[1])
	if err != nil {
		return err
	}

	logger.Debug("broadcasting shapes",
		zap.Ints("a", a),
		zap.Ints("b", b))

	result, err := array.Broadcast(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatShape(result))
	return nil
}
