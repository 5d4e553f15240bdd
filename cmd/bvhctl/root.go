package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joshuapare/bvhkit/bvh"
	"github.com/joshuapare/bvhkit/cmd/bvhctl/logger"
	"github.com/joshuapare/bvhkit/internal/scene"
)

const (
	envPrefix         = "BVHCTL"
	defaultConfigName = ".bvhctl"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noValidate bool
	cfgFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "bvhctl",
	Short: "Build and inspect bounding volume hierarchies over scene files",
	Long: `bvhctl builds a bounding volume hierarchy over the named boxes of a
scene file and lets you inspect its shape, print it, run point and box
queries against it, and check its structural invariants.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&noValidate, "no-validate", false, "Accept non-finite or inverted boxes when building")
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", defaultConfigName))
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "off", "Log level: debug, info, warn, error, off")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig applies the config file and BVHCTL_* environment variables to
// any flag not set on the command line, then initializes the logger.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(defaultConfigName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the default one is optional.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	level, enabled, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Enabled: enabled, Level: level})
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}
	return nil
}

// bindFlags copies viper values into flags the user did not set explicitly.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("config value for --%s: %w", f.Name, err)
		}
	})
	return firstErr
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// buildOptions translates global flags into bvh build options.
func buildOptions() []bvh.Option {
	opts := []bvh.Option{bvh.WithLogger(logger.L)}
	if noValidate {
		opts = append(opts, bvh.WithoutValidation())
	}
	return opts
}

// loadTree loads the scene at path and builds a tree over it in file order.
func loadTree(path string) (*scene.Scene, *bvh.Tree[string], error) {
	printVerbose("Loading scene: %s\n", path)
	sc, err := scene.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load scene: %w", err)
	}
	logger.Debug("scene loaded", "path", path, "objects", sc.Len())

	tree, err := sc.Build(buildOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build tree: %w", err)
	}
	printVerbose("Built tree: %d leaves, %d nodes, depth %d\n", tree.Len(), tree.NodeCount(), tree.Depth())
	return sc, tree, nil
}
