// Package main provides the flowgraph CLI: compile, validate, and cycle-check
// workflow graph documents.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tcmartin/flowgraph/pkg/compiler"
	"github.com/tcmartin/flowgraph/pkg/config"
	"github.com/tcmartin/flowgraph/pkg/graph"
	"github.com/tcmartin/flowgraph/pkg/loader"
	"github.com/tcmartin/flowgraph/pkg/logging"
	"github.com/tcmartin/flowgraph/pkg/scripting"
)

var (
	// Global flags
	configPath string
	logLevel   string
	pretty     bool

	cfg    *config.Config
	logger logging.Logger

	// One compiler for the whole process, so repeated compiles of an
	// unchanged graph hit the memoized IR when caching is enabled
	graphCompiler compiler.Compiler
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowgraph",
		Short: "Workflow graph compiler",
		Long:  "Compile, validate, and cycle-check workflow graph documents",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Environment files are optional
			_ = godotenv.Load()

			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			logger = logging.NewLogger(cfg.Logging)

			graphCompiler = compiler.CompilerFunc(compiler.Compile)
			if cfg.Compiler.CacheEnabled {
				graphCompiler = compiler.NewCachingCompiler()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	rootCmd.AddCommand(compileCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(checkEdgeCmd())

	return rootCmd
}

func compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a graph document and print the IR as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}

			ir := graphCompiler.Compile(snapshot)

			logger.Info("graph compiled",
				logging.F("nodes", len(ir.Nodes)),
				logging.F("loops", len(ir.Loops)),
				logging.F("parallels", len(ir.Parallels)))

			return printJSON(cmd, ir)
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a graph document's structure and expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			graphLoader := loader.NewGraphLoader()
			warnings, err := graphLoader.Validate(string(content))
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				logger.Warn("validation warning", logging.F("warning", warning))
			}

			snapshot, err := graphLoader.Parse(string(content))
			if err != nil {
				return err
			}

			var problems []error
			if cfg.Compiler.MaxDepth > 0 {
				for id := range snapshot.Nodes {
					if depth := graph.Depth(id, snapshot.Nodes); depth > cfg.Compiler.MaxDepth {
						problems = append(problems, fmt.Errorf("node %s nested %d levels deep (max %d)", id, depth, cfg.Compiler.MaxDepth))
					}
				}
			}

			linter := scripting.NewExpressionLinter()
			ir := graphCompiler.Compile(snapshot)
			for _, loop := range ir.Loops {
				problems = append(problems, linter.LintLoop(loop)...)
			}
			for _, parallel := range ir.Parallels {
				problems = append(problems, linter.LintParallel(parallel)...)
			}

			if len(problems) > 0 {
				for _, problem := range problems {
					logger.Error("validation failed", logging.F("problem", problem.Error()))
				}
				return fmt.Errorf("%d validation problem(s)", len(problems))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

func checkEdgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-edge <file> <source> <target>",
		Short: "Check whether connecting source to target would create a cycle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}

			source, target := args[1], args[2]
			if graph.WouldCreateCycle(snapshot.Edges, source, target) {
				return fmt.Errorf("connecting %s -> %s would create a cycle", source, target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s is safe to connect\n", source, target)
			return nil
		},
	}
}

func loadSnapshot(path string) (*graph.Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return loader.NewGraphLoader().Parse(string(content))
}

func printJSON(cmd *cobra.Command, value any) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
