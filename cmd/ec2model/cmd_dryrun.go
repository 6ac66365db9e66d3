package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yairfalse/ec2model/internal/probe"
	"github.com/yairfalse/ec2model/pkg/request"
)

var (
	dryRunSend    bool
	dryRunHeaders []string
	dryRunQuery   []string
	dryRunTimeout time.Duration
)

var dryRunCmd = &cobra.Command{
	Use:   "dry-run <operation> [Key=Value...]",
	Short: "Build a permission-check request, optionally sending it",
	Long: `Build the DryRun request of an EC2 operation from Key=Value parameters.

Scalar members use their name (VolumeId=vol-1). String lists take a
comma-separated value (InstanceIds=i-1,i-2). Tags are Tag.<key>=<value>
and filters Filter.<name>=<v1>,<v2>.

Without --send the request is printed. With --send it is sent and the
result reports whether the credentials are allowed to run the operation.`,
	Example: `  ec2model dry-run DeleteVolume VolumeId=vol-1234
  ec2model dry-run CreateVolume AvailabilityZone=us-east-1a Size=10 Tag.Team=infra
  ec2model dry-run StopInstances InstanceIds=i-1,i-2 --send`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDryRun,
}

func init() {
	rootCmd.AddCommand(dryRunCmd)

	dryRunCmd.Flags().BoolVar(&dryRunSend, "send", false, "Send the request and report the permission")
	dryRunCmd.Flags().StringArrayVar(&dryRunHeaders, "header", nil, "Custom request header Name=Value (repeatable)")
	dryRunCmd.Flags().StringArrayVar(&dryRunQuery, "query", nil, "Custom query parameter Name=Value (repeatable)")
	dryRunCmd.Flags().DurationVar(&dryRunTimeout, "timeout", 30*time.Second, "Request timeout")
}

func runDryRun(cmd *cobra.Command, args []string) error {
	params, err := probe.ParseArgs(args[1:])
	if err != nil {
		return err
	}
	in, err := probe.Build(args[0], params)
	if err != nil {
		return err
	}

	md := in.RequestMetadata()
	md.SetTimeout(dryRunTimeout)
	for _, h := range dryRunHeaders {
		k, v, err := splitPair("header", h)
		if err != nil {
			return err
		}
		md.PutCustomRequestHeader(k, v)
	}
	for _, q := range dryRunQuery {
		k, v, err := splitPair("query", q)
		if err != nil {
			return err
		}
		md.PutCustomQueryParameter(k, v)
	}

	if !dryRunSend {
		wire, err := in.DryRunRequest()
		if err != nil {
			return err
		}
		printWireRequest(cmd.OutOrStdout(), wire)
		return nil
	}

	checker, err := newChecker(cmd.Context())
	if err != nil {
		return err
	}
	perm, err := checker.CheckPermission(cmd.Context(), in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", in.OperationName(), perm)
	return nil
}

func splitPair(kind, s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("invalid %s %q, want Name=Value", kind, s)
	}
	return k, v, nil
}

func printWireRequest(w io.Writer, wire *request.WireRequest) {
	fmt.Fprintf(w, "%s %s\n", wire.Method, wire.Path)
	for _, k := range slices.Sorted(maps.Keys(wire.Headers)) {
		for _, v := range wire.Headers[k] {
			fmt.Fprintf(w, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(w, "\n%s\n", wire.Encode())
}
