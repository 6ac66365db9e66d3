package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yairfalse/ec2model/ec2/client"
	"github.com/yairfalse/ec2model/internal/config"
	"github.com/yairfalse/ec2model/internal/telemetry"
	"github.com/yairfalse/ec2model/internal/watch"
)

var (
	version = "0.1.0"

	cfgFile   string
	logLevel  string
	logFormat string
	region    string
	profile   string
	endpoint  string

	cfg    *config.Config
	logger *telemetry.Logger

	rootCmd = &cobra.Command{
		Use:   "ec2model",
		Short: "EC2 model explorer and permission checker",
		Long: `ec2model - EC2 model explorer and permission checker

Browse the modeled EC2 enums, shapes and operations, build dry-run
requests from Key=Value parameters, and watch whether the current
credentials are still allowed to run a set of operations.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

// newChecker builds the client used by commands that call EC2.
var newChecker = func(ctx context.Context) (watch.Checker, error) {
	return client.New(ctx, client.Config{
		Region:   cfg.AWS.Region,
		Profile:  cfg.AWS.Profile,
		Endpoint: cfg.AWS.Endpoint,
	}, client.WithLogger(logger.Logger))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`ec2model {{.Version}}
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (YAML)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: console, json")
	flags.StringVar(&region, "region", "", "AWS region")
	flags.StringVar(&profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&endpoint, "endpoint", "", "EC2 endpoint override")
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		c = loaded
	}

	override(&c.Log.Level, logLevel)
	override(&c.Log.Format, logFormat)
	override(&c.AWS.Region, region)
	override(&c.AWS.Profile, profile)
	override(&c.AWS.Endpoint, endpoint)
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := telemetry.NewLogger(c.OTEL.ServiceName, c.Log.Level, c.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg = c
	logger = l
	log.Logger = l.Logger
	return nil
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
