package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yairfalse/ec2model/internal/store"
)

var (
	historyLimit  int
	historyOutput string
	historyDir    string
)

var historyCmd = &cobra.Command{
	Use:   "history [probe]",
	Short: "Show recorded permission checks",
	Long: `Without arguments, show the latest state of every probe recorded by
watch. With a probe name, show that probe's checks, newest first.`,
	Example: `  ec2model history
  ec2model history delete-scratch --limit 20
  ec2model history --output yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum checks to show (0 for all)")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "table", "Output format: table, yaml")
	historyCmd.Flags().StringVar(&historyDir, "state-dir", "", "State directory (overrides config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyOutput != "table" && historyOutput != "yaml" {
		return fmt.Errorf("unknown output format %q", historyOutput)
	}
	override(&cfg.Watch.StateDir, historyDir)

	st, err := store.Open(cfg.Watch.StateDir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		states := st.States()
		if historyOutput == "yaml" {
			return writeYAML(out, states)
		}
		fmt.Fprintf(out, "%-24s %-28s %-8s %-6s %s\n", "PROBE", "OPERATION", "STATE", "SINCE", "CHECKED")
		for _, s := range states {
			fmt.Fprintf(out, "%-24s %-28s %-8s %-6d %s\n",
				s.Probe, s.Operation, s.Permission, s.SinceRev, s.LastChecked.Format(time.RFC3339))
		}
		return nil
	}

	checks, err := st.History(args[0], historyLimit)
	if err != nil {
		return err
	}
	if len(checks) == 0 {
		return fmt.Errorf("%w: %s", store.ErrNotFound, args[0])
	}
	if historyOutput == "yaml" {
		return writeYAML(out, checks)
	}
	fmt.Fprintf(out, "%-6s %-20s %-8s %s\n", "REV", "CHECKED", "STATE", "ERROR")
	for _, c := range checks {
		fmt.Fprintf(out, "%-6d %-20s %-8s %s\n", c.Revision, c.CheckedAt.Format(time.RFC3339), c.Permission, c.Error)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
