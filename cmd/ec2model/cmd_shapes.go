package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yairfalse/ec2model/ec2"
	"github.com/yairfalse/ec2model/internal/probe"
	"github.com/yairfalse/ec2model/pkg/shape"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the modeled shapes",
	Args:  cobra.NoArgs,
	RunE:  runShapes,
}

var shapesShowCmd = &cobra.Command{
	Use:     "show <name>",
	Short:   "Show an empty instance of a shape",
	Example: `  ec2model shapes show DescribeVolumesInput`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShapesShow,
}

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the modeled operations and whether they support dry run",
	Args:  cobra.NoArgs,
	RunE:  runOperations,
}

func init() {
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(operationsCmd)
	shapesCmd.AddCommand(shapesShowCmd)
}

func runShapes(cmd *cobra.Command, args []string) error {
	for _, name := range shape.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runShapesShow(cmd *cobra.Command, args []string) error {
	s, ok := shape.New(args[0])
	if !ok {
		return fmt.Errorf("unknown shape %s", args[0])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shape: %s\n", s.ShapeName())
	fmt.Fprintf(out, "value: %s\n", s)
	fmt.Fprintf(out, "hash:  %d\n", s.Hash())
	return nil
}

func runOperations(cmd *cobra.Command, args []string) error {
	dryRun := probe.Operations()
	for _, op := range ec2.Operations() {
		if slices.Contains(dryRun, op) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-32s dry-run\n", op)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), op)
	}
	return nil
}
