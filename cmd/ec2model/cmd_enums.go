package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yairfalse/ec2model/ec2/types"
	"github.com/yairfalse/ec2model/pkg/enum"
)

var enumsCmd = &cobra.Command{
	Use:   "enums [name]",
	Short: "List enums or the values of one enum",
	Example: `  ec2model enums
  ec2model enums VolumeType`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnums,
}

var enumsParseCmd = &cobra.Command{
	Use:   "parse <name> <value>",
	Short: "Check that a wire string is a value of an enum",
	Example: `  ec2model enums parse VolumeType gp3
  ec2model enums parse TransitGatewayRouteType propagated`,
	Args: cobra.ExactArgs(2),
	RunE: runEnumsParse,
}

func init() {
	rootCmd.AddCommand(enumsCmd)
	enumsCmd.AddCommand(enumsParseCmd)
}

func runEnums(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reg := types.Enums()

	if len(args) == 0 {
		for _, name := range reg.Names() {
			l, _ := reg.Get(name)
			fmt.Fprintf(out, "%-40s %d values\n", name, len(l.Strings()))
		}
		return nil
	}

	l, ok := reg.Get(args[0])
	if !ok {
		return &enum.UnknownEnumError{Name: args[0]}
	}
	fmt.Fprintln(out, strings.Join(l.Strings(), "\n"))
	return nil
}

func runEnumsParse(cmd *cobra.Command, args []string) error {
	v, err := types.Enums().Parse(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\n", args[0], v)
	return nil
}
