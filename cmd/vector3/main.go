package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oxygene76/vector3/pkg/utils"
)

const (
	appName = "vector3"
	version = "v1.0.0"
)

// app carries the state shared by all commands
type app struct {
	out io.Writer

	cfgFile   string
	output    string
	precision int
	radians   bool
	verbose   bool

	cfg *utils.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "3D vector calculator",
		Long: `vector3 evaluates 3-dimensional vector operations: arithmetic, dot,
cross and triple products, projection, rejection, reflection, rotation,
interpolation and relationship checks.

Vectors are written as "x,y,z", "(x, y, z)" or "Vector3(x=.., y=.., z=..)".
A vector starting with a minus sign must be parenthesised or placed after "--".
JSON output writes NaN and infinities as the strings "NaN", "+Inf" and "-Inf".`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.vector3/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().IntVarP(&a.precision, "precision", "p", -1, "digits after the decimal point, -1 for the shortest exact form")
	rootCmd.PersistentFlags().BoolVar(&a.radians, "radians", false, "read and print angles in radians")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(a.operationCmds()...)
	rootCmd.AddCommand(a.checkCmd(), a.demoCmd())

	return rootCmd
}

// initConfig resolves the configuration and applies command line overrides
func (a *app) initConfig(cmd *cobra.Command, errOut io.Writer) error {
	cfg, used, err := utils.LoadConfig(a.cfgFile)
	if err != nil {
		// init must be able to replace a broken config
		if cmd.Name() != "init" {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		cfg = utils.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if flags.Changed("radians") {
		cfg.Angles.Degrees = !a.radians
	}
	if a.verbose {
		cfg.Log.Level = zerolog.LevelDebugValue
	}

	if err := utils.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := utils.NewLogger(cfg.Log.Level, errOut)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger
	if used != "" {
		a.log.Debug().Str("file", used).Msg("using config file")
	}
	a.log.Debug().
		Str("format", cfg.Output.Format).
		Int("precision", cfg.Output.Precision).
		Str("angles", cfg.AngleUnit()).
		Msg("configuration loaded")

	return nil
}

func (a *app) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = utils.DefaultConfigPath(); err != nil {
					return fmt.Errorf("failed to resolve config path: %w", err)
				}
			}

			if err := utils.SaveConfig(utils.DefaultConfig(), path); err != nil {
				return err
			}

			a.log.Info().Str("file", path).Msg("configuration written")
			fmt.Fprintf(a.out, "Configuration saved to: %s\n", path)
			return nil
		},
	}

	return cmd
}
