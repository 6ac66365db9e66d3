package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yairfalse/ec2model/internal/codegen"
)

var (
	definitionPath string
	outDir         string
	modulePath     string
	checkOnly      bool
	verbose        bool

	rootCmd = &cobra.Command{
		Use:   "ec2gen",
		Short: "Generate the EC2 model packages",
		Long: `ec2gen renders the ec2 and ec2/types packages from a YAML API
definition: enums with parsing, shapes with accessors, equality, hashing
and printing, operation inputs with request metadata and dry-run support,
and the query serializers.`,
		Example: `  ec2gen --definition api/ec2.yaml --out .
  ec2gen --definition api/ec2.yaml --out . --check`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runGenerate,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&definitionPath, "definition", "api/ec2.yaml", "API definition file")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "Module root the packages are written under")
	rootCmd.Flags().StringVar(&modulePath, "module", codegen.DefaultModule, "Import path of the module root")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "Report stale files instead of writing them")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every file")

	cobra.OnInitialize(func() {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	def, err := codegen.Load(definitionPath)
	if err != nil {
		return err
	}

	files, err := codegen.Render(def, modulePath)
	if err != nil {
		return fmt.Errorf("render %s: %w", definitionPath, err)
	}

	if checkOnly {
		stale, err := checkFiles(outDir, files)
		if err != nil {
			return err
		}
		if len(stale) > 0 {
			for _, path := range stale {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return fmt.Errorf("%d generated files are stale, run ec2gen", len(stale))
		}
		log.Info().Int("files", len(files)).Msg("generated files are up to date")
		return nil
	}

	written, err := writeFiles(outDir, files)
	if err != nil {
		return err
	}
	log.Info().
		Str("service", def.Service).
		Int("files", len(files)).
		Int("written", written).
		Msg("generation complete")
	return nil
}
